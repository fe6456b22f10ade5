package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskedge/internal/storage"
	"taskedge/internal/summary"
)

// Server provides the HTTP handlers for the task and preference gateways.
type Server struct {
	engine     *gin.Engine
	tasks      storage.TaskStore
	prefs      storage.PreferenceStore
	summarizer summary.Summarizer
	logger     *slog.Logger
	staticDir  string
}

// New constructs the HTTP server with routes and middleware configured.
// Stores and the summarizer are injected so tests can substitute fakes.
func New(tasks storage.TaskStore, prefs storage.PreferenceStore, summarizer summary.Summarizer, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:     router,
		tasks:      tasks,
		prefs:      prefs,
		summarizer: summarizer,
		logger:     logger,
		staticDir:  staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.Use(noStore())
	{
		api.GET("/health", s.handleHealth)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.GET(":id", s.handleGetTask)
			tasks.PATCH(":id", s.handleUpdateTask)
			tasks.DELETE(":id", s.handleDeleteTask)
		}

		api.GET("/preferences", s.handleGetPreference)
		api.PUT("/preferences", s.handleSetPreference)
	}

	s.mountStatic()
}

// noStore keeps clients from caching API responses.
func noStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseTaskID validates the path parameter as a UUID with error handling.
func parseTaskID(c *gin.Context) (string, bool) {
	raw := c.Param("id")
	if _, err := uuid.Parse(raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return "", false
	}
	return raw, true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondStoreError maps storage errors to 404 or 500.
func (s *Server) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.respondError(c, http.StatusInternalServerError, err)
}

func getString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
