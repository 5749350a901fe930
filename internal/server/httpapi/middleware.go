package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legallite/internal/server/auth"
	"github.com/legalease/legallite/internal/server/session"
)

const ctxSessionKey = "sessionState"

// requireSession validates the signed session cookie and loads the
// server-side state. A missing, invalid, or expired session gets 401 and the
// cookie is cleared so the client does not keep presenting it.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		sessionID, err := auth.GetSessionIDFromToken(token, []byte(s.config.SecretKey))
		if err != nil {
			s.clearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		state, err := s.sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			s.logger.Error(c.Request.Context(), "session lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if state == nil {
			s.clearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(ctxSessionKey, state)
		c.Next()
	}
}

// requireMode rejects document operations until the user has confirmed a
// summarization mode for this session.
func (s *Server) requireMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := s.sessionState(c)
		if state == nil || !state.ModeConfirmed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "choose a summarization mode first"})
			return
		}
		c.Next()
	}
}

func (s *Server) sessionState(c *gin.Context) *session.State {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	state, ok := v.(*session.State)
	if !ok {
		return nil
	}
	return state
}

func (s *Server) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
