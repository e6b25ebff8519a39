package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleGetAllRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := s.RequestService.GetAllRequests()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, requests, nil)
	}
}

func (s *Server) handleGetRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		request, svcErr := s.RequestService.GetRequest(id)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "", http.StatusOK, request, nil)
	}
}

func (s *Server) handleCreateRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateRequestInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		request, svcErr := s.RequestService.CreateRequest(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "request created", http.StatusCreated, request, nil)
	}
}

func (s *Server) handleUpdateRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateRequestInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		request, svcErr := s.RequestService.UpdateRequest(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "request updated", http.StatusOK, request, nil)
	}
}

func (s *Server) handleDeleteRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if svcErr := s.RequestService.DeleteRequest(id); svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "request deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetRequestsByStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.RequestService.RequestsByStatus()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, rows, nil)
	}
}

func (s *Server) handleGetTopRequestor() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestor, err := s.RequestService.TopRequestor()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, requestor, nil)
	}
}

func (s *Server) handleGetTopRequestResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		assignee, err := s.RequestService.TopRequestResolver()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, assignee, nil)
	}
}

func (s *Server) handleGetRecentRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := s.RequestService.RecentRequests()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, requests, nil)
	}
}
