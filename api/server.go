package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voxtape/transcript-api/api/types"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	server := &Server{
		engine:       engine,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:        address,
			Handler:     engine,
			ReadTimeout: 30 * time.Second,
			// Transcriptions stream through the response only once the
			// whole pipeline finishes, so the write window must outlast
			// the slowest handler
			WriteTimeout:   15 * time.Minute,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}

	return server
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Logger())
	s.engine.Use(CORS())
	s.engine.Use(RequestSizeLimit())
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	close(s.cleanupStop)

	return s.httpServer.Shutdown(ctx)
}
