package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleDocs serves a static index of the API surface.
func (s *Server) handleDocs() gin.HandlerFunc {
	docs := gin.H{
		"name":    "itsm-backend",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth": []string{
				"POST /auth/login",
				"PATCH /auth/change-password",
				"PATCH /auth/reset-password/:id",
			},
			"users": []string{
				"GET /users",
				"POST /users",
				"PUT /users",
				"GET /users/:id",
				"DELETE /users/:id",
			},
			"categories": []string{
				"GET /categories",
				"POST /categories",
				"PUT /categories",
				"GET /categories/:id",
				"DELETE /categories/:id",
			},
			"assets": []string{
				"GET /assets",
				"GET /assets/type",
				"GET /assets/owner",
				"GET /assets/recent",
				"POST /assets",
				"PUT /assets",
				"GET /assets/:id",
				"DELETE /assets/:id",
			},
			"incidents": []string{
				"GET /incidents",
				"GET /incidents/priority",
				"GET /incidents/asset",
				"GET /incidents/assignee",
				"GET /incidents/recent",
				"POST /incidents",
				"PUT /incidents",
				"GET /incidents/:id",
				"DELETE /incidents/:id",
			},
			"requests": []string{
				"GET /requests",
				"GET /requests/status",
				"GET /requests/requestor",
				"GET /requests/assignee",
				"GET /requests/recent",
				"POST /requests",
				"PUT /requests",
				"GET /requests/:id",
				"DELETE /requests/:id",
			},
			"knowledgearticles": []string{
				"GET /knowledgearticles",
				"GET /knowledgearticles/category",
				"GET /knowledgearticles/creator",
				"GET /knowledgearticles/asset",
				"GET /knowledgearticles/recent",
				"POST /knowledgearticles",
				"PUT /knowledgearticles",
				"GET /knowledgearticles/:id",
				"DELETE /knowledgearticles/:id",
			},
			"comments": []string{
				"POST /comments/incidents",
				"POST /comments/requests",
			},
		},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, docs)
	}
}
