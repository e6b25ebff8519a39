package server

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())
	r.Use(RequestID())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	router.GET("/api", s.handleDocs())

	router.POST("/auth/login", limitLoginRate(), s.handleLogin())

	authorized := router.Group("/auth")
	authorized.Use(s.Authorize())
	authorized.PATCH("/change-password", s.handleChangePassword())
	authorized.PATCH("/reset-password/:id", s.handleResetPassword())

	router.GET("/users", s.handleGetAllUsers())
	router.POST("/users", s.handleCreateUser())
	router.PUT("/users", s.handleReplaceUser())
	router.GET("/users/:id", s.handleGetUser())
	router.DELETE("/users/:id", s.handleDeleteUser())

	router.GET("/categories", s.handleGetAllCategories())
	router.POST("/categories", s.handleCreateCategory())
	router.PUT("/categories", s.handleUpdateCategory())
	router.GET("/categories/:id", s.handleGetCategory())
	router.DELETE("/categories/:id", s.handleDeleteCategory())

	router.GET("/assets", s.handleGetAllAssets())
	router.GET("/assets/type", s.handleGetAssetsByType())
	router.GET("/assets/owner", s.handleGetTopAssetOwner())
	router.GET("/assets/recent", s.handleGetRecentAssets())
	router.POST("/assets", s.handleCreateAsset())
	router.PUT("/assets", s.handleUpdateAsset())
	router.GET("/assets/:id", s.handleGetAsset())
	router.DELETE("/assets/:id", s.handleDeleteAsset())

	router.GET("/incidents", s.handleGetAllIncidents())
	router.GET("/incidents/priority", s.handleGetIncidentsByPriority())
	router.GET("/incidents/asset", s.handleGetAssetWithMostIncidents())
	router.GET("/incidents/assignee", s.handleGetTopIncidentResolver())
	router.GET("/incidents/recent", s.handleGetRecentIncidents())
	router.POST("/incidents", s.handleCreateIncident())
	router.PUT("/incidents", s.handleUpdateIncident())
	router.GET("/incidents/:id", s.handleGetIncident())
	router.DELETE("/incidents/:id", s.handleDeleteIncident())

	router.GET("/requests", s.handleGetAllRequests())
	router.GET("/requests/status", s.handleGetRequestsByStatus())
	router.GET("/requests/requestor", s.handleGetTopRequestor())
	router.GET("/requests/assignee", s.handleGetTopRequestResolver())
	router.GET("/requests/recent", s.handleGetRecentRequests())
	router.POST("/requests", s.handleCreateRequest())
	router.PUT("/requests", s.handleUpdateRequest())
	router.GET("/requests/:id", s.handleGetRequest())
	router.DELETE("/requests/:id", s.handleDeleteRequest())

	router.GET("/knowledgearticles", s.handleGetAllArticles())
	router.GET("/knowledgearticles/category", s.handleGetArticlesByCategory())
	router.GET("/knowledgearticles/creator", s.handleGetTopAuthor())
	router.GET("/knowledgearticles/asset", s.handleGetAssetWithMostArticles())
	router.GET("/knowledgearticles/recent", s.handleGetRecentArticles())
	router.POST("/knowledgearticles", s.handleCreateArticle())
	router.PUT("/knowledgearticles", s.handleUpdateArticle())
	router.GET("/knowledgearticles/:id", s.handleGetArticle())
	router.DELETE("/knowledgearticles/:id", s.handleDeleteArticle())

	router.POST("/comments/incidents", s.handleCreateIncidentComment())
	router.POST("/comments/requests", s.handleCreateRequestComment())
}
