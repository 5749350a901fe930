package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/report"
)

type exportPDFRequest struct {
	Summary  string `json:"summary"`
	Filename string `json:"filename"`
}

func (s *Server) exportPDF(c *gin.Context) {
	var req exportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "summary is required"})
		return
	}

	data, err := report.Render(req.Summary, req.Filename, time.Now())
	if err != nil {
		s.logger.Error(c.Request.Context(), "pdf render failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

type exportAudioRequest struct {
	Summary string `json:"summary"`
}

func (s *Server) exportAudio(c *gin.Context) {
	var req exportAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "summary is required"})
		return
	}

	data, err := s.speech.Synthesize(req.Summary)
	if err != nil {
		s.logger.Error(c.Request.Context(), "speech synthesis failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "audio synthesis failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="summary.mp3"`)
	c.Data(http.StatusOK, "audio/mpeg", data)
}
