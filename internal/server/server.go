package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"project_showcase/internal/config"
	"project_showcase/internal/database"
	"project_showcase/internal/handlers"
	"project_showcase/internal/middlewares"
	"project_showcase/internal/repositories"
	"project_showcase/internal/routes"
	"project_showcase/internal/services"
	"project_showcase/internal/views"
)

type Server struct {
	HTTP *http.Server
	pool *pgxpool.Pool
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	pool, err := database.Connect(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		return nil, err
	}

	if cfg.DBRunMigrations {
		if err := database.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool)
	projectService := services.NewProjectService(projectRepo, cfg.DBQueryTimeout)
	apiClient := views.NewHTTPClient(cfg.APIBaseURL, cfg.APIClientTimeout)

	router := NewRouter(cfg, projectService, apiClient)

	if cfg.LegacyResponses {
		log.Println("Legacy API responses enabled")
	}

	return &Server{
		HTTP: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		pool: pool,
	}, nil
}

// NewRouter wires middleware, the API handlers and the pages onto a gin engine.
func NewRouter(cfg *config.Config, projectService handlers.ProjectService, apiClient views.APIClient) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middlewares.RequestID)

	projectHandler := handlers.NewProjectHandler(projectService, cfg.LegacyResponses)
	pages := views.NewPages(apiClient)

	apiMiddleware := []gin.HandlerFunc{cors.New(corsConfig(cfg.CORSAllowedOrigins))}
	pageMiddleware := []gin.HandlerFunc{secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})}

	routes.RegisterRoutes(router, projectHandler, pages, apiMiddleware, pageMiddleware)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// Shutdown stops the HTTP server and then releases the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)
	database.Close(s.pool)
	return err
}
