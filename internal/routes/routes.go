package routes

import (
	"net/http"
	"project_showcase/internal/handlers"
	"project_showcase/internal/views"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API under /api and the HTML pages at the
// root. apiMiddleware and pageMiddleware apply to their own group only.
func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, pages *views.Pages, apiMiddleware, pageMiddleware []gin.HandlerFunc) {
	api := router.Group("/api", apiMiddleware...)
	NewProjectRoutes(projectHandler).RegisterRoutes(api)

	// Group middleware only runs on matched routes; preflights need one.
	api.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	site := router.Group("", pageMiddleware...)
	NewPageRoutes(pages).RegisterRoutes(site)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
