package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleGetAllIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		incidents, err := s.IncidentService.GetAllIncidents()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, incidents, nil)
	}
}

func (s *Server) handleGetIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		incident, svcErr := s.IncidentService.GetIncident(id)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "", http.StatusOK, incident, nil)
	}
}

func (s *Server) handleCreateIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateIncidentInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		incident, svcErr := s.IncidentService.CreateIncident(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "incident created", http.StatusCreated, incident, nil)
	}
}

func (s *Server) handleUpdateIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateIncidentInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		incident, svcErr := s.IncidentService.UpdateIncident(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "incident updated", http.StatusOK, incident, nil)
	}
}

func (s *Server) handleDeleteIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if svcErr := s.IncidentService.DeleteIncident(id); svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "incident deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetIncidentsByPriority() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.IncidentService.IncidentsByPriority()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, rows, nil)
	}
}

func (s *Server) handleGetAssetWithMostIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		asset, err := s.IncidentService.AssetWithMostIncidents()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, asset, nil)
	}
}

func (s *Server) handleGetTopIncidentResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		assignee, err := s.IncidentService.TopIncidentResolver()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, assignee, nil)
	}
}

func (s *Server) handleGetRecentIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		incidents, err := s.IncidentService.RecentIncidents()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, incidents, nil)
	}
}
