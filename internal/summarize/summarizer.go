// Package summarize routes extracted document text to one of three
// interchangeable summarization backends: a canned demo, the OpenAI chat
// completion API with a caller-supplied key, and the Hugging Face hosted
// inference API with a service-wide token.
package summarize

import (
	"context"
	"fmt"

	"github.com/legalease/legallite/internal/common"
)

// Mode identifies a summarization backend. It is a closed enumeration:
// adding a backend means adding a variant here and a case to the dispatcher.
type Mode int

const (
	ModeUnset Mode = iota
	ModeDemo
	ModeOpenAI
	ModeHuggingFace
)

func (m Mode) String() string {
	switch m {
	case ModeDemo:
		return "demo"
	case ModeOpenAI:
		return "openai"
	case ModeHuggingFace:
		return "huggingface"
	default:
		return "unset"
	}
}

// ParseMode converts a wire-level mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "demo":
		return ModeDemo, nil
	case "openai":
		return ModeOpenAI, nil
	case "huggingface":
		return ModeHuggingFace, nil
	default:
		return ModeUnset, fmt.Errorf("%w: unknown mode %q", common.ErrValidation, s)
	}
}

// RequiresAPIKey reports whether the mode needs a caller-supplied credential.
func (m Mode) RequiresAPIKey() bool {
	return m == ModeOpenAI
}

// Request carries everything a backend needs for one summarization.
type Request struct {
	// Text is the full extracted document text.
	Text string
	// Filename is the original upload name, used by the demo backend.
	Filename string
	// APIKey is the caller-supplied credential (OpenAI mode only).
	APIKey string
}

// Result is a completed summarization.
type Result struct {
	Summary string
	// Truncated is set when the backend sent only a prefix of the input,
	// so the summary may omit content beyond the cap.
	Truncated bool
}

// Summarizer is the one capability every backend implements.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (*Result, error)
}

// Dispatcher routes a request to the backend selected by mode.
type Dispatcher struct {
	demo        Summarizer
	openAI      Summarizer
	huggingFace Summarizer
}

func NewDispatcher(demo, openAI, huggingFace Summarizer) *Dispatcher {
	return &Dispatcher{demo: demo, openAI: openAI, huggingFace: huggingFace}
}

// Summarize dispatches req to the backend for mode. An unset or unknown mode
// is a validation error, not a fallback to demo.
func (d *Dispatcher) Summarize(ctx context.Context, mode Mode, req Request) (*Result, error) {
	switch mode {
	case ModeDemo:
		return d.demo.Summarize(ctx, req)
	case ModeOpenAI:
		return d.openAI.Summarize(ctx, req)
	case ModeHuggingFace:
		return d.huggingFace.Summarize(ctx, req)
	default:
		return nil, fmt.Errorf("%w: no backend for mode %q", common.ErrModeNotChosen, mode)
	}
}
