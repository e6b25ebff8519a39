package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleGetAllCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.CategoryService.GetAllCategories()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, categories, nil)
	}
}

func (s *Server) handleGetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		category, svcErr := s.CategoryService.GetCategory(id)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "", http.StatusOK, category, nil)
	}
}

func (s *Server) handleCreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateCategoryInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		category, svcErr := s.CategoryService.CreateCategory(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "category created", http.StatusCreated, category, nil)
	}
}

func (s *Server) handleUpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateCategoryInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		category, svcErr := s.CategoryService.UpdateCategory(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "category updated", http.StatusOK, category, nil)
	}
}

func (s *Server) handleDeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if svcErr := s.CategoryService.DeleteCategory(id); svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "category deleted successfully", http.StatusOK, nil, nil)
	}
}
