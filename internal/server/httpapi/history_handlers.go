package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/common"
)

type historyItem struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) listHistory(c *gin.Context) {
	state := s.sessionState(c)

	records, err := s.history.List(c.Request.Context(), state.UserEmail)
	if err != nil {
		s.logger.Error(c.Request.Context(), "history list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	items := make([]historyItem, 0, len(records))
	for _, r := range records {
		items = append(items, historyItem{
			ID:        r.ID,
			Filename:  r.Filename,
			Summary:   r.Summary,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}

// downloadDocument serves the archived original PDF for one history record.
// Records without an archive key, records of other users, and objects gone
// from the store all look the same to the caller: 404.
func (s *Server) downloadDocument(c *gin.Context) {
	state := s.sessionState(c)

	record, err := s.history.Get(c.Request.Context(), state.UserEmail, c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		s.logger.Error(c.Request.Context(), "history lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if record.StorageKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	data, err := s.blobs.Load(c.Request.Context(), record.StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		s.logger.Error(c.Request.Context(), "archive read failed", "error", err, "key", record.StorageKey)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.Filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
