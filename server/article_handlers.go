package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/server/response"
)

func (s *Server) handleGetAllArticles() gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := s.ArticleService.GetAllArticles()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, articles, nil)
	}
}

func (s *Server) handleGetArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		article, svcErr := s.ArticleService.GetArticle(id)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "", http.StatusOK, article, nil)
	}
}

func (s *Server) handleCreateArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateArticleInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		article, svcErr := s.ArticleService.CreateArticle(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "knowledge article created", http.StatusCreated, article, nil)
	}
}

func (s *Server) handleUpdateArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateArticleInput
		if err := decode(c, &input); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		article, svcErr := s.ArticleService.UpdateArticle(&input)
		if svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "knowledge article updated", http.StatusOK, article, nil)
	}
}

func (s *Server) handleDeleteArticle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		if svcErr := s.ArticleService.DeleteArticle(id); svcErr != nil {
			response.JSON(c, "", svcErr.Status, nil, svcErr)
			return
		}
		response.JSON(c, "knowledge article deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetArticlesByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.ArticleService.ArticlesByCategory()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, rows, nil)
	}
}

func (s *Server) handleGetTopAuthor() gin.HandlerFunc {
	return func(c *gin.Context) {
		author, err := s.ArticleService.TopAuthor()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, author, nil)
	}
}

func (s *Server) handleGetAssetWithMostArticles() gin.HandlerFunc {
	return func(c *gin.Context) {
		asset, err := s.ArticleService.AssetWithMostArticles()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, asset, nil)
	}
}

func (s *Server) handleGetRecentArticles() gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := s.ArticleService.RecentArticles()
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "", http.StatusOK, articles, nil)
	}
}
