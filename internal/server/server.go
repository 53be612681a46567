package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aedwards3305-source/fans-dashboard/internal/api"
	"github.com/aedwards3305-source/fans-dashboard/internal/config"
	"github.com/aedwards3305-source/fans-dashboard/internal/importer"
	"github.com/aedwards3305-source/fans-dashboard/internal/store"
)

//go:embed static
var staticFiles embed.FS

// Server HTTP server for the dashboard
type Server struct {
	router   *gin.Engine
	store    *store.SessionStore
	pipeline *importer.Pipeline
	log      *zap.Logger
}

// NewServer wires the session store, import pipeline, and API handler into
// a gin engine
func NewServer(cfg *config.AppConfig, st *store.SessionStore, log *zap.Logger) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}

	pipeline := importer.NewPipeline(st, log)

	s := &Server{
		router:   gin.New(),
		store:    st,
		pipeline: pipeline,
		log:      log,
	}
	s.router.Use(gin.Recovery())

	s.setupRoutes(devMode)

	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	handler := api.NewHandler(s.store, s.pipeline, s.log)
	group := s.router.Group("/api")
	{
		handler.RegisterRoutes(group)
	}

	if devMode {
		// Dev mode proxies the UI to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	sub, _ := fs.Sub(staticFiles, "static")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	// SPA fallback
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Pipeline the import pipeline, exposed for tests
func (s *Server) Pipeline() *importer.Pipeline {
	return s.pipeline
}

// Run starts the server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
