// Package api serves the studyhub collections as a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/notify"
	"tableflip.dev/studyhub/pkg/store"
)

// Server holds the handlers. Permissions may be nil, in which case the
// notification settings routes answer 503.
type Server struct {
	Service     *app.Service
	Permissions *notify.Stored
	Logger      *log.Logger
}

func (s *Server) log() *log.Logger {
	return logging.OrDiscard(s.Logger)
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(s.requestLog(), s.recovery())

	api := r.Group("/api")

	tasks := api.Group("/tasks")
	tasks.GET("", s.listTasks)
	tasks.POST("", s.createTask)
	tasks.GET("/:id", s.getTask)
	tasks.PUT("/:id", s.updateTask)
	tasks.DELETE("/:id", s.deleteTask)
	tasks.POST("/:id/toggle", s.toggleTask)

	events := api.Group("/events")
	events.GET("", s.listEvents)
	events.POST("", s.createEvent)
	events.GET("/:id", s.getEvent)
	events.PUT("/:id", s.updateEvent)
	events.DELETE("/:id", s.deleteEvent)

	notes := api.Group("/notes")
	notes.GET("", s.listNotes)
	notes.GET("/groups", s.noteGroups)
	notes.POST("", s.createNote)
	notes.GET("/:id", s.getNote)
	notes.PUT("/:id", s.updateNote)
	notes.DELETE("/:id", s.deleteNote)

	api.GET("/dashboard", s.dashboard)
	api.GET("/agenda", s.agenda)

	settings := api.Group("/settings")
	settings.GET("/theme", s.getTheme)
	settings.PUT("/theme", s.putTheme)
	settings.GET("/notifications", s.getNotifications)
	settings.PUT("/notifications", s.putNotifications)

	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log().Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.log().Error("handler panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// status maps service errors onto HTTP status codes.
func status(err error) int {
	switch {
	case errors.Is(err, app.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, app.ErrNoStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		s.log().Error("request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log().Info("serving", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
