package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/server/auth"
	"github.com/legalease/legallite/internal/server/session"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"email": user.Email})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	sessionID, err := common.MakeRandHexString(32)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	expiresAt := time.Now().Add(s.config.SessionValidityDuration)
	state := session.New(sessionID, user.Email, expiresAt)

	if err := s.sessions.Create(c.Request.Context(), state); err != nil {
		s.logger.Error(c.Request.Context(), "session create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	token, err := auth.GenerateToken(sessionID, []byte(s.config.SecretKey), s.config.SessionValidityDuration)
	if err != nil {
		s.logger.Error(c.Request.Context(), "token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.setSessionCookie(c, token, expiresAt)
	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}

func (s *Server) logout(c *gin.Context) {
	state := s.sessionState(c)
	if state != nil {
		if err := s.sessions.Delete(c.Request.Context(), state.SessionID); err != nil {
			s.logger.Warn(c.Request.Context(), "session delete failed", "error", err)
		}
	}
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (s *Server) me(c *gin.Context) {
	state := s.sessionState(c)
	c.JSON(http.StatusOK, gin.H{
		"email":          state.UserEmail,
		"mode":           state.Mode.String(),
		"mode_confirmed": state.ModeConfirmed,
	})
}
