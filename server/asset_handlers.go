package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleGetAllAssets() gin.HandlerFunc {
	return func(c *gin.Context) {
		assets, err := s.AssetService.GetAllAssets()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, assets, nil)
	}
}

func (s *Server) handleGetAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		asset, svcErr := s.AssetService.GetAsset(id)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "", http.StatusOK, asset, nil)
	}
}

func (s *Server) handleCreateAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateAssetInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		asset, svcErr := s.AssetService.CreateAsset(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "asset created", http.StatusCreated, asset, nil)
	}
}

func (s *Server) handleUpdateAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateAssetInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		asset, svcErr := s.AssetService.UpdateAsset(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "asset updated", http.StatusOK, asset, nil)
	}
}

func (s *Server) handleDeleteAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if svcErr := s.AssetService.DeleteAsset(id); svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "asset deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetAssetsByType() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.AssetService.AssetsByType()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, rows, nil)
	}
}

func (s *Server) handleGetTopAssetOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := s.AssetService.TopAssetOwner()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, owner, nil)
	}
}

func (s *Server) handleGetRecentAssets() gin.HandlerFunc {
	return func(c *gin.Context) {
		assets, err := s.AssetService.RecentAssets()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, assets, nil)
	}
}
