package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		loginResponse, err := s.AuthService.Login(&loginRequest)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		if userID == 0 {
			response.JSON(c, "", errors.ErrUnauthorized.Status, nil, errors.ErrUnauthorized)
			return
		}

		var req models.ChangePasswordRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if err := s.AuthService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "password updated successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}

		var req models.ResetPasswordRequest
		if err := decode(c, &req); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if err := s.AuthService.ResetPassword(userID, req.NewPassword); err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "password updated successfully", http.StatusOK, nil, nil)
	}
}
