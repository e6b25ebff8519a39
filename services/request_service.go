package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

type RequestService interface {
	CreateRequest(input *models.CreateRequestInput) (*models.Request, *apiError.Error)
	GetRequest(id uint) (*models.Request, *apiError.Error)
	GetAllRequests() ([]models.Request, *apiError.Error)
	UpdateRequest(input *models.UpdateRequestInput) (*models.Request, *apiError.Error)
	DeleteRequest(id uint) *apiError.Error
	RequestsByStatus() ([]models.NameCount, *apiError.Error)
	TopRequestor() (*models.TopRequestor, *apiError.Error)
	TopRequestResolver() (*models.TopRequestResolver, *apiError.Error)
	RecentRequests() ([]models.Request, *apiError.Error)
}

type requestService struct {
	requestRepo db.RequestRepository
}

func NewRequestService(requestRepo db.RequestRepository) RequestService {
	return &requestService{requestRepo: requestRepo}
}

func (s *requestService) CreateRequest(input *models.CreateRequestInput) (*models.Request, *apiError.Error) {
	request := &models.Request{
		Title:          input.Title,
		Description:    input.Description,
		Status:         models.RequestStatusNew,
		RequestorID:    input.RequestorID,
		AssigneeID:     input.AssigneeID,
		PlannedForDate: input.PlannedForDate,
	}
	created, err := s.requestRepo.CreateRequest(request, input.Categories)
	if err != nil {
		log.Printf("error creating request: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while creating the request")
	}
	return created, nil
}

func (s *requestService) GetRequest(id uint) (*models.Request, *apiError.Error) {
	request, err := s.requestRepo.FindRequestByID(id)
	if err != nil {
		return nil, apiError.FromDB(err, "an error occurred while retrieving the request")
	}
	return request, nil
}

func (s *requestService) GetAllRequests() ([]models.Request, *apiError.Error) {
	requests, err := s.requestRepo.GetAllRequests()
	if err != nil {
		log.Printf("error listing requests: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving requests")
	}
	return requests, nil
}

func (s *requestService) UpdateRequest(input *models.UpdateRequestInput) (*models.Request, *apiError.Error) {
	request := &models.Request{
		ID:             input.ID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         models.RequestStatus(input.Status),
		RequestorID:    input.RequestorID,
		AssigneeID:     input.AssigneeID,
		PlannedForDate: input.PlannedForDate,
		ResolvedAt:     input.ResolvedAt,
	}
	updated, err := s.requestRepo.UpdateRequest(request, input.Categories)
	if err != nil {
		log.Printf("error updating request %d: %v", input.ID, err)
		return nil, apiError.FromDB(err, "an error occurred while updating the request")
	}
	return updated, nil
}

func (s *requestService) DeleteRequest(id uint) *apiError.Error {
	if err := s.requestRepo.DeleteRequest(id); err != nil {
		log.Printf("error deleting request %d: %v", id, err)
		return apiError.FromDB(err, "an error occurred while deleting the request")
	}
	return nil
}

func (s *requestService) RequestsByStatus() ([]models.NameCount, *apiError.Error) {
	rows, err := s.requestRepo.CountRequestsByStatus()
	if err != nil {
		log.Printf("error counting requests by status: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving requests by status")
	}
	return rows, nil
}

func (s *requestService) TopRequestor() (*models.TopRequestor, *apiError.Error) {
	requestor, err := s.requestRepo.GetTopRequestor()
	if err != nil {
		log.Printf("error retrieving top requestor: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the requestor with the most requests")
	}
	return requestor, nil
}

func (s *requestService) TopRequestResolver() (*models.TopRequestResolver, *apiError.Error) {
	assignee, err := s.requestRepo.GetTopRequestResolver()
	if err != nil {
		log.Printf("error retrieving top request resolver: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the assignee with the most resolved requests")
	}
	return assignee, nil
}

func (s *requestService) RecentRequests() ([]models.Request, *apiError.Error) {
	requests, err := s.requestRepo.GetRecentRequests(recentLimit)
	if err != nil {
		log.Printf("error retrieving recent requests: %v", err)
		return nil, apiError.FromDB(err, "an error occurred while retrieving the recent requests")
	}
	return requests, nil
}
