// Package httpapi exposes the LegalLite HTTP surface: auth, mode selection,
// document processing, history, and exports. Handlers translate domain
// sentinel errors into HTTP statuses; business logic stays in the services
// and domain packages.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/logging"
	"github.com/legalease/legallite/internal/server/config"
	"github.com/legalease/legallite/internal/server/services"
	"github.com/legalease/legallite/internal/server/session"
	"github.com/legalease/legallite/internal/server/storage"
	"github.com/legalease/legallite/internal/summarize"
)

const sessionCookieName = "legallite_session"

// speechSynthesizer is the one capability the audio export needs.
type speechSynthesizer interface {
	Synthesize(text string) ([]byte, error)
}

// riskAnalyzer runs the key-gated clause analysis. In production this is the
// OpenAI backend; tests substitute a stub.
type riskAnalyzer interface {
	AnalyzeRisks(ctx context.Context, req summarize.Request) (*summarize.Result, error)
}

type Server struct {
	config     *config.Config
	logger     logging.Logger
	users      *services.UserService
	history    *services.HistoryService
	sessions   session.Store
	dispatcher *summarize.Dispatcher
	risks      riskAnalyzer
	blobs      storage.Store
	speech     speechSynthesizer
}

func NewServer(
	cfg *config.Config,
	logger logging.Logger,
	users *services.UserService,
	history *services.HistoryService,
	sessions session.Store,
	dispatcher *summarize.Dispatcher,
	risks riskAnalyzer,
	blobs storage.Store,
	speech speechSynthesizer,
) *Server {
	return &Server{
		config:     cfg,
		logger:     logger,
		users:      users,
		history:    history,
		sessions:   sessions,
		dispatcher: dispatcher,
		risks:      risks,
		blobs:      blobs,
		speech:     speech,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/auth/register", s.register)
	router.POST("/api/auth/login", s.login)

	authed := router.Group("/api")
	authed.Use(s.requireSession())

	authed.GET("/auth/me", s.me)
	authed.POST("/auth/logout", s.logout)
	authed.POST("/session/mode", s.chooseMode)
	authed.DELETE("/session/mode", s.resetMode)
	authed.GET("/history", s.listHistory)
	authed.GET("/history/:id/document", s.downloadDocument)

	confirmed := authed.Group("")
	confirmed.Use(s.requireMode())

	confirmed.POST("/documents", s.uploadDocument)
	confirmed.POST("/documents/simplify", s.simplifyDocument)
	confirmed.POST("/documents/risk-analysis", s.riskAnalysis)
	confirmed.POST("/export/pdf", s.exportPDF)
	confirmed.POST("/export/audio", s.exportAudio)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
