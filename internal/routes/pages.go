package routes

import (
	"project_showcase/internal/views"

	"github.com/gin-gonic/gin"
)

type PageRoutes struct {
	pages *views.Pages
}

func NewPageRoutes(pages *views.Pages) *PageRoutes {
	return &PageRoutes{pages: pages}
}

func (r *PageRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.pages.ProjectsPage)
		projects.GET("/:id", r.pages.ProjectPage)
	}
}
