package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleCreateIncidentComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateIncidentCommentInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		comment, svcErr := s.CommentService.CreateIncidentComment(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "comment created", http.StatusCreated, comment, nil)
	}
}

func (s *Server) handleCreateRequestComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateRequestCommentInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		comment, svcErr := s.CommentService.CreateRequestComment(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "comment created", http.StatusCreated, comment, nil)
	}
}
