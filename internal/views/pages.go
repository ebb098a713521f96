package views

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"project_showcase/internal/middlewares"
	"project_showcase/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Pages struct {
	client APIClient
	tmpl   *template.Template
}

func NewPages(client APIClient) *Pages {
	return &Pages{
		client: client,
		tmpl:   template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

type ListPageData struct {
	Title      string
	Error      string
	RetryURL   string
	Search     string
	CountLabel string
	Projects   []models.Project
}

type DetailPageData struct {
	Title            string
	Error            string
	Notice           string
	Name             string
	Description      string
	Summary          string
	Role             string
	Responsibilities string
	StartDate        string
	EndDate          string
}

// ProjectsPage handles GET /projects
func (p *Pages) ProjectsPage(c *gin.Context) {
	data := ListPageData{
		Title:  "Projects",
		Search: c.Query("q"),
	}

	projects, err := p.client.ListProjects(c.Request.Context())
	if err != nil {
		log.Printf("[%s] ProjectsPage: %v", middlewares.GetRequestID(c), err)
		data.Error = "Failed to fetch projects"
		data.RetryURL = c.Request.URL.RequestURI()
		p.render(c, "projects.html", data)
		return
	}

	data.Projects = FilterProjects(projects, data.Search)
	data.CountLabel = CountLabel(len(data.Projects))
	p.render(c, "projects.html", data)
}

// ProjectPage handles GET /projects/:id
func (p *Pages) ProjectPage(c *gin.Context) {
	project, err := p.client.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[%s] ProjectPage %q: %v", middlewares.GetRequestID(c), c.Param("id"), err)
		msg := "Project not found"
		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			msg = err.Error()
		}
		p.render(c, "project_detail.html", DetailPageData{
			Title: "Project Details",
			Error: msg,
		})
		return
	}

	data := NewDetailPageData(project)
	if c.Query("viewing") != "" && project.Name != "" {
		data.Notice = "Viewing " + project.Name
	}
	p.render(c, "project_detail.html", data)
}

// NewDetailPageData resolves every field of the view to display text.
func NewDetailPageData(project *models.ProjectView) DetailPageData {
	return DetailPageData{
		Title:            "Project Details",
		Name:             textOrPlaceholder(project.Name),
		Description:      textOrPlaceholder(project.Description),
		Summary:          orPlaceholder(project.Summary),
		Role:             orPlaceholder(project.Title),
		Responsibilities: orPlaceholder(project.Responsibilty),
		StartDate:        FormatDate(project.StartDate),
		EndDate:          FormatDate(project.EndDate),
	}
}

func (p *Pages) render(c *gin.Context, name string, data any) {
	c.Render(http.StatusOK, render.HTML{
		Template: p.tmpl,
		Name:     name,
		Data:     data,
	})
}
