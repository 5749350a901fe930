package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/summarize"
)

type chooseModeRequest struct {
	Mode   string `json:"mode"`
	APIKey string `json:"api_key"`
}

func (s *Server) chooseMode(c *gin.Context) {
	var req chooseModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	mode, err := summarize.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode"})
		return
	}

	state := s.sessionState(c)
	if err := state.ChooseMode(mode, req.APIKey); err != nil {
		switch {
		case errors.Is(err, common.ErrAPIKeyRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "api key is required for this mode"})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	if err := s.sessions.Update(c.Request.Context(), state); err != nil {
		s.logger.Error(c.Request.Context(), "session update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":           state.Mode.String(),
		"mode_confirmed": state.ModeConfirmed,
	})
}

func (s *Server) resetMode(c *gin.Context) {
	state := s.sessionState(c)
	state.ResetMode()

	if err := s.sessions.Update(c.Request.Context(), state); err != nil {
		s.logger.Error(c.Request.Context(), "session update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":           state.Mode.String(),
		"mode_confirmed": state.ModeConfirmed,
	})
}
