package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type RequestRepository interface {
	CreateRequest(request *models.Request, categoryIDs []uint) (*models.Request, error)
	FindRequestByID(id uint) (*models.Request, error)
	GetAllRequests() ([]models.Request, error)
	UpdateRequest(request *models.Request, categoryIDs []uint) (*models.Request, error)
	DeleteRequest(id uint) error
	CountRequestsByStatus() ([]models.NameCount, error)
	GetTopRequestor() (*models.TopRequestor, error)
	GetTopRequestResolver() (*models.TopRequestResolver, error)
	GetRecentRequests(limit int) ([]models.Request, error)
}

type requestRepo struct {
	DB *gorm.DB
}

func NewRequestRepo(db *GormDB) RequestRepository {
	return &requestRepo{db.DB}
}

func (r *requestRepo) CreateRequest(request *models.Request, categoryIDs []uint) (*models.Request, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		request.Categories = cats
		return tx.Create(request).Error
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *requestRepo) FindRequestByID(id uint) (*models.Request, error) {
	var request models.Request
	err := r.DB.
		Preload("Requestor").
		Preload("Assignee").
		Preload("Categories").
		Preload("Approvers").
		Preload("Comments.User").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) GetAllRequests() ([]models.Request, error) {
	var requests []models.Request
	err := r.DB.
		Preload("Requestor").
		Preload("Assignee").
		Preload("Categories").
		Preload("Approvers").
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, errors.Wrap(err, "list requests")
	}
	return requests, nil
}

func (r *requestRepo) UpdateRequest(request *models.Request, categoryIDs []uint) (*models.Request, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Request
		if err := tx.First(&existing, request.ID).Error; err != nil {
			return err
		}
		cats, err := findCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		res := tx.Model(&existing).
			Select("Title", "Description", "Status", "RequestorID", "AssigneeID", "PlannedForDate", "ResolvedAt").
			Updates(request)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&existing).Association("Categories").Replace(cats); err != nil {
			return err
		}
		*request = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// DeleteRequest removes the request and its comments as one unit.
func (r *requestRepo) DeleteRequest(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		if err := tx.Where("request_id = ?", id).Delete(&models.RequestComment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&request).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&request).Association("Approvers").Clear(); err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
}

func (r *requestRepo) CountRequestsByStatus() ([]models.NameCount, error) {
	var rows []models.NameCount
	err := r.DB.Model(&models.Request{}).
		Select("status AS name, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count requests by status")
	}
	return rows, nil
}

func (r *requestRepo) GetTopRequestor() (*models.TopRequestor, error) {
	var grouped struct {
		RequestorID uint
		Total       int64
	}
	res := r.DB.Model(&models.Request{}).
		Select("requestor_id, COUNT(*) AS total").
		Group("requestor_id").
		Order("total DESC").
		Limit(1).
		Scan(&grouped)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyResult
	}

	var requestor models.User
	if err := r.DB.First(&requestor, grouped.RequestorID).Error; err != nil {
		return nil, err
	}
	return &models.TopRequestor{
		ID:            requestor.ID,
		Name:          requestor.Name,
		TotalRequests: grouped.Total,
	}, nil
}

func (r *requestRepo) GetTopRequestResolver() (*models.TopRequestResolver, error) {
	var grouped struct {
		AssigneeID uint
		Total      int64
	}
	res := r.DB.Model(&models.Request{}).
		Select("assignee_id, COUNT(*) AS total").
		Where("status = ? AND assignee_id IS NOT NULL", models.RequestStatusCompleted).
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
	if err := r.DB.First(&assignee, grouped.AssigneeID).Error; err != nil {
		return nil, err
	}
	return &models.TopRequestResolver{
		ID:               assignee.ID,
		Name:             assignee.Name,
		ResolvedRequests: grouped.Total,
	}, nil
}

func (r *requestRepo) GetRecentRequests(limit int) ([]models.Request, error) {
	var requests []models.Request
	err := r.DB.
		Where("status NOT IN ?", models.RequestTerminalStatuses).
		Preload("Requestor").
		Preload("Assignee").
		Preload("Categories").
		Preload("Approvers").
		Order("updated_at DESC").
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, errors.Wrap(err, "recent requests")
	}
	return requests, nil
}
