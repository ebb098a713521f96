package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"project_showcase/internal/middlewares"
	"project_showcase/internal/models"
	"project_showcase/internal/responses"
	"project_showcase/internal/services"
	"project_showcase/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.ProjectView, error)
}

type ProjectHandler struct {
	projectService ProjectService
	legacy         bool
}

// NewProjectHandler builds the handler. With legacy set, successful and
// query-failure responses keep the pre-envelope payload shapes and statuses.
func NewProjectHandler(projectService ProjectService, legacy bool) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		legacy:         legacy,
	}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		log.Printf("[%s] ListProjects: %v", middlewares.GetRequestID(c), err)
		h.queryFailed(c, err, "Failed to retrieve projects")
		return
	}

	if h.legacy {
		c.JSON(http.StatusOK, projects)
		return
	}
	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseProjectID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid Project Id")
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Project not found")
			return
		}
		log.Printf("[%s] GetProject %d: %v", middlewares.GetRequestID(c), projectID, err)
		h.queryFailed(c, err, "Failed to retrieve project")
		return
	}

	if h.legacy {
		c.JSON(http.StatusOK, gin.H{
			"status":  responses.StatusSuccess,
			"project": project,
		})
		return
	}
	responses.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

func (h *ProjectHandler) queryFailed(c *gin.Context, err error, message string) {
	if h.legacy {
		c.JSON(http.StatusOK, gin.H{
			"status": responses.StatusError,
			"error":  err.Error(),
		})
		return
	}
	responses.Fail(c, http.StatusInternalServerError, err, message)
}
