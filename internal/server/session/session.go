// Package session tracks per-visit state: who is logged in, which
// summarization backend they chose, and the user-supplied credential when the
// backend needs one. State is ephemeral and lives only in the session store;
// nothing here is persisted past logout or expiry.
package session

import (
	"strings"
	"time"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/summarize"
)

// State is the session record. Its lifecycle is a small state machine:
//
//	LoggedOut -> LoggedIn/ModeUnchosen -> LoggedIn/ModeChosen
//
// Login creates the record (ModeUnchosen), ChooseMode confirms a backend,
// ResetMode returns to ModeUnchosen without logging out, and logout deletes
// the record. The machine cycles for the lifetime of the visit; there is no
// terminal state.
type State struct {
	SessionID string         `json:"session_id"`
	UserEmail string         `json:"user_email"`
	Mode      summarize.Mode `json:"mode"`
	// APIKey is only meaningful when Mode requires a caller credential.
	APIKey        string    `json:"api_key,omitempty"`
	ModeConfirmed bool      `json:"mode_confirmed"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// New returns the state of a freshly logged-in session: mode unchosen.
func New(sessionID, userEmail string, expiresAt time.Time) *State {
	return &State{
		SessionID: sessionID,
		UserEmail: userEmail,
		Mode:      summarize.ModeUnset,
		ExpiresAt: expiresAt,
	}
}

// ChooseMode confirms a summarization backend for this session. Selecting the
// user-key backend without a credential is rejected and leaves the state
// unchanged. Backends that do not need a caller credential discard any key
// passed alongside.
func (s *State) ChooseMode(mode summarize.Mode, apiKey string) error {
	if mode == summarize.ModeUnset {
		return common.ErrValidation
	}

	apiKey = strings.TrimSpace(apiKey)
	if mode.RequiresAPIKey() && apiKey == "" {
		return common.ErrAPIKeyRequired
	}

	s.Mode = mode
	if mode.RequiresAPIKey() {
		s.APIKey = apiKey
	} else {
		s.APIKey = ""
	}
	s.ModeConfirmed = true
	return nil
}

// ResetMode moves the session back to mode selection, clearing the chosen
// backend and any stored credential without logging the user out.
func (s *State) ResetMode() {
	s.Mode = summarize.ModeUnset
	s.APIKey = ""
	s.ModeConfirmed = false
}
