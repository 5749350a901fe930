package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/extract"
	"github.com/legalease/legallite/internal/risk"
	"github.com/legalease/legallite/internal/server/storage"
	"github.com/legalease/legallite/internal/summarize"
)

// uploadDocument accepts a multipart PDF in the "document" field, extracts
// its text, flags risky terms, and archives the original bytes. Extraction
// happens synchronously so the caller gets the text back in one round trip.
func (s *Server) uploadDocument(c *gin.Context) {
	// belt and suspenders: the reader cap catches oversized bodies before
	// they are buffered, the extract cap catches oversized files precisely
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadBytes+4096)

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document exceeds the size limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"document\" is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	text, err := extract.Text(data, s.config.MaxUploadBytes)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document exceeds the size limit"})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not extract text from document"})
		}
		return
	}

	storageKey := storage.NewStorageKey()
	if err := s.blobs.Save(c.Request.Context(), storageKey, data); err != nil {
		// the archive is best effort; extraction already succeeded
		s.logger.Warn(c.Request.Context(), "upload archive failed", "error", err, "key", storageKey)
		storageKey = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":    header.Filename,
		"text":        text,
		"risky_terms": risk.Scan(text),
		"storage_key": storageKey,
	})
}

type simplifyRequest struct {
	Text       string `json:"text"`
	Filename   string `json:"filename"`
	StorageKey string `json:"storage_key"`
}

// simplifyDocument runs the session's confirmed backend over extracted text
// and appends the result to the user's history.
func (s *Server) simplifyDocument(c *gin.Context) {
	var req simplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	state := s.sessionState(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.config.ProviderTimeout)
	defer cancel()

	result, err := s.dispatcher.Summarize(ctx, state.Mode, summarize.Request{
		Text:     req.Text,
		Filename: req.Filename,
		APIKey:   state.APIKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrModeNotChosen):
			c.JSON(http.StatusForbidden, gin.H{"error": "choose a summarization mode first"})
		case errors.Is(err, common.ErrAPIKeyRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "api key is required for this mode"})
		case errors.Is(err, summarize.ErrModelLoading):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summarization model is still loading, try again shortly"})
		default:
			s.logger.Error(c.Request.Context(), "summarization failed", "mode", state.Mode.String(), "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "summarization failed"})
		}
		return
	}

	if _, err := s.history.Append(c.Request.Context(), state.UserEmail, req.Filename, result.Summary, req.StorageKey); err != nil {
		s.logger.Error(c.Request.Context(), "history append failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   result.Summary,
		"truncated": result.Truncated,
	})
}

type riskAnalysisRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// riskAnalysis runs the clause-level analysis. Unlike the keyword scan it
// needs a model, so it only works for sessions carrying the user's own key;
// results are ad hoc and are not written to history.
func (s *Server) riskAnalysis(c *gin.Context) {
	var req riskAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	state := s.sessionState(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.config.ProviderTimeout)
	defer cancel()

	result, err := s.risks.AnalyzeRisks(ctx, summarize.Request{
		Text:     req.Text,
		Filename: req.Filename,
		APIKey:   state.APIKey,
	})
	if err != nil {
		if errors.Is(err, common.ErrAPIKeyRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "risk analysis requires your own api key"})
			return
		}
		s.logger.Error(c.Request.Context(), "risk analysis failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "risk analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result.Summary})
}
