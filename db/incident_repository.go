package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

// incidentPriorityRank orders the text priority column by severity instead
// of alphabetically.
const incidentPriorityRank = "CASE priority WHEN 'CRITICAL' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC"

type IncidentRepository interface {
	CreateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error)
	FindIncidentByID(id uint) (*models.Incident, error)
	GetAllIncidents() ([]models.Incident, error)
	UpdateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error)
	DeleteIncident(id uint) error
	CountIncidentsByPriority() ([]models.NameCount, error)
	GetAssetWithMostIncidents() (*models.TopIncidentAsset, error)
	GetTopIncidentResolver() (*models.TopIncidentResolver, error)
	GetRecentIncidents(limit int) ([]models.Incident, error)
}

type incidentRepo struct {
	DB *gorm.DB
}

func NewIncidentRepo(db *GormDB) IncidentRepository {
	return &incidentRepo{db.DB}
}

func (i *incidentRepo) CreateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error) {
	err := i.DB.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		incident.Categories = cats
		return tx.Create(incident).Error
	})
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func (i *incidentRepo) FindIncidentByID(id uint) (*models.Incident, error) {
	var incident models.Incident
	err := i.DB.
		Preload("Reporter").
		Preload("Assignee").
		Preload("Asset").
		Preload("Categories").
		Preload("Comments.User").
		First(&incident, id).Error
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

func (i *incidentRepo) GetAllIncidents() ([]models.Incident, error) {
	var incidents []models.Incident
	err := i.DB.
		Preload("Reporter").
		Preload("Assignee").
		Preload("Asset").
		Preload("Categories").
		Order("id").
		Find(&incidents).Error
	if err != nil {
		return nil, errors.Wrap(err, "list incidents")
	}
	return incidents, nil
}

func (i *incidentRepo) UpdateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error) {
	err := i.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Incident
		if err := tx.First(&existing, incident.ID).Error; err != nil {
			return err
		}
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		res := tx.Model(&existing).
			Select("Title", "Description", "Priority", "Status", "ReporterID", "AssetID", "AssigneeID", "ResolvedAt").
			Updates(incident)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&existing).Association("Categories").Replace(cats); err != nil {
			return err
		}
		*incident = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// DeleteIncident removes the incident and its comments as one unit.
func (i *incidentRepo) DeleteIncident(id uint) error {
	return i.DB.Transaction(func(tx *gorm.DB) error {
		var incident models.Incident
		if err := tx.First(&incident, id).Error; err != nil {
			return err
		}
		if err := tx.Where("incident_id = ?", id).Delete(&models.IncidentComment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&incident).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&incident).Error
	})
}

func (i *incidentRepo) CountIncidentsByPriority() ([]models.NameCount, error) {
	var rows []models.NameCount
	err := i.DB.Model(&models.Incident{}).
		Select("priority AS name, COUNT(*) AS total").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count incidents by priority")
	}
	return rows, nil
}

func (i *incidentRepo) GetAssetWithMostIncidents() (*models.TopIncidentAsset, error) {
	var grouped struct {
		AssetID uint
		Total   int64
	}
	res := i.DB.Model(&models.Incident{}).
		Select("asset_id, COUNT(*) AS total").
		Where("asset_id IS NOT NULL").
		Group("asset_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var asset models.Asset
	if err := i.DB.First(&asset, grouped.AssetID).Error; err != nil {
		return nil, err
	}
	return &models.TopIncidentAsset{
		ID:             asset.ID,
		Name:           asset.Name,
		TotalIncidents: grouped.Total,
	}, nil
}

func (i *incidentRepo) GetTopIncidentResolver() (*models.TopIncidentResolver, error) {
	var grouped struct {
		AssigneeID uint
		Total      int64
	}
	res := i.DB.Model(&models.Incident{}).
		Select("assignee_id, COUNT(*) AS total").
		Where("status = ? AND assignee_id IS NOT NULL", models.IncidentStatusResolved).
		Group("assignee_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var assignee models.User
	if err := i.DB.First(&assignee, grouped.AssigneeID).Error; err != nil {
		return nil, err
	}
	return &models.TopIncidentResolver{
		ID:                assignee.ID,
		Name:              assignee.Name,
		ResolvedIncidents: grouped.Total,
	}, nil
}

func (i *incidentRepo) GetRecentIncidents(limit int) ([]models.Incident, error) {
	var incidents []models.Incident
	err := i.DB.
		Where("status NOT IN ?", models.IncidentTerminalStatuses).
		Preload("Reporter").
		Preload("Assignee").
		Preload("Asset").
		Preload("Categories").
		Order(incidentPriorityRank).
		Order("updated_at DESC").
		Limit(limit).
		Find(&incidents).Error
	if err != nil {
		return nil, errors.Wrap(err, "recent incidents")
	}
	return incidents, nil
}
