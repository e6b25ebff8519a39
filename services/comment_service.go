package services

import (
	"log"

	"github.com/techagentng/itsm-backend/db"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
)

type CommentService interface {
	CreateIncidentComment(input *models.CreateIncidentCommentInput) (*models.IncidentComment, *apiError.Error)
	CreateRequestComment(input *models.CreateRequestCommentInput) (*models.RequestComment, *apiError.Error)
}

type commentService struct {
	commentRepo db.CommentRepository
}

func NewCommentService(commentRepo db.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) CreateIncidentComment(input *models.CreateIncidentCommentInput) (*models.IncidentComment, *apiError.Error) {
	comment := &models.IncidentComment{
		Content:    input.Content,
		UserID:     input.UserID,
		IncidentID: input.IncidentID,
	}
	created, err := s.commentRepo.CreateIncidentComment(comment)
	if err != nil {
		log.Printf("error creating incident comment: %v", err)
		return nil, apiError.FromDB(err, "error creating comment")
	}
	return created, nil
}

func (s *commentService) CreateRequestComment(input *models.CreateRequestCommentInput) (*models.RequestComment, *apiError.Error) {
	comment := &models.RequestComment{
		Content:   input.Content,
		UserID:    input.UserID,
		RequestID: input.RequestID,
	}
	created, err := s.commentRepo.CreateRequestComment(comment)
	if err != nil {
		log.Printf("error creating request comment: %v", err)
		return nil, apiError.FromDB(err, "error creating comment")
	}
	return created, nil
}
