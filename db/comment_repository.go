package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateIncidentComment(comment *models.IncidentComment) (*models.IncidentComment, error)
	CreateRequestComment(comment *models.RequestComment) (*models.RequestComment, error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (c *commentRepo) CreateIncidentComment(comment *models.IncidentComment) (*models.IncidentComment, error) {
	if err := c.DB.Create(comment).Error; err != nil {
		return nil, errors.Wrap(err, "create incident comment")
	}
	return comment, nil
}

func (c *commentRepo) CreateRequestComment(comment *models.RequestComment) (*models.RequestComment, error) {
	if err := c.DB.Create(comment).Error; err != nil {
		return nil, errors.Wrap(err, "create request comment")
	}
	return comment, nil
}
