package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

type IncidentService interface {
	CreateIncident(input *models.CreateIncidentInput) (*models.Incident, *apiError.Error)
	GetIncident(id uint) (*models.Incident, *apiError.Error)
	GetAllIncidents() ([]models.Incident, *apiError.Error)
	UpdateIncident(input *models.UpdateIncidentInput) (*models.Incident, *apiError.Error)
	DeleteIncident(id uint) *apiError.Error
	IncidentsByPriority() ([]models.NameCount, *apiError.Error)
	AssetWithMostIncidents() (*models.TopIncidentAsset, *apiError.Error)
	TopIncidentResolver() (*models.TopIncidentResolver, *apiError.Error)
	RecentIncidents() ([]models.Incident, *apiError.Error)
}

type incidentService struct {
	incidentRepo db.IncidentRepository
}

func NewIncidentService(incidentRepo db.IncidentRepository) IncidentService {
	return &incidentService{incidentRepo: incidentRepo}
}

func (s *incidentService) CreateIncident(input *models.CreateIncidentInput) (*models.Incident, *apiError.Error) {
	incident := &models.Incident{
		Title:       input.Title,
		Description: input.Description,
		Priority:    models.IncidentPriority(input.Priority),
		Status:      models.IncidentStatusNew,
		ReporterID:  input.ReporterID,
		AssetID:     input.AssetID,
		AssigneeID:  input.AssigneeID,
	}
	created, err := s.incidentRepo.CreateIncident(incident, input.Categories)
	if err != nil {
		log.Printf("error creating incident: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the incident")
	}
	return created, nil
}

func (s *incidentService) GetIncident(id uint) (*models.Incident, *apiError.Error) {
	incident, err := s.incidentRepo.FindIncidentByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the incident")
	}
	return incident, nil
}

func (s *incidentService) GetAllIncidents() ([]models.Incident, *apiError.Error) {
	incidents, err := s.incidentRepo.GetAllIncidents()
	if err != nil {
		log.Printf("error listing incidents: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving incidents")
	}
	return incidents, nil
}

func (s *incidentService) UpdateIncident(input *models.UpdateIncidentInput) (*models.Incident, *apiError.Error) {
	incident := &models.Incident{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    models.IncidentPriority(input.Priority),
		Status:      models.IncidentStatus(input.Status),
		ReporterID:  input.ReporterID,
		AssetID:     input.AssetID,
		AssigneeID:  input.AssigneeID,
		ResolvedAt:  input.ResolvedAt,
	}
	updated, err := s.incidentRepo.UpdateIncident(incident, input.Categories)
	if err != nil {
		log.Printf("error updating incident %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the incident")
	}
	return updated, nil
}

func (s *incidentService) DeleteIncident(id uint) *apiError.Error {
	if err := s.incidentRepo.DeleteIncident(id); err != nil {
		log.Printf("error deleting incident %d: %v", id, err)
		return apiError.FromDB(err, "an error occurred while deleting the incident")
	}
	return nil
}

func (s *incidentService) IncidentsByPriority() ([]models.NameCount, *apiError.Error) {
	rows, err := s.incidentRepo.CountIncidentsByPriority()
	if err != nil {
		log.Printf("error counting incidents by priority: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving incidents by priority")
	}
	return rows, nil
}

func (s *incidentService) AssetWithMostIncidents() (*models.TopIncidentAsset, *apiError.Error) {
	asset, err := s.incidentRepo.GetAssetWithMostIncidents()
	if err != nil {
		log.Printf("error retrieving asset with most incidents: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the asset with the most incidents")
	}
	return asset, nil
}

func (s *incidentService) TopIncidentResolver() (*models.TopIncidentResolver, *apiError.Error) {
	assignee, err := s.incidentRepo.GetTopIncidentResolver()
	if err != nil {
		log.Printf("error retrieving top incident resolver: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the assignee with the most resolved incidents")
	}
	return assignee, nil
}

func (s *incidentService) RecentIncidents() ([]models.Incident, *apiError.Error) {
	incidents, err := s.incidentRepo.GetRecentIncidents(recentLimit)
	if err != nil {
		log.Printf("error retrieving recent incidents: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the recent incidents")
	}
	return incidents, nil
}
