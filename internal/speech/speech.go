// Package speech synthesizes a spoken-audio rendition of a summary.
package speech

import (
	"fmt"
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/voices"
)

// Synthesizer produces MP3 audio for summary text via an external
// text-to-speech service. Failures are reported to the caller, who is
// expected to continue without audio rather than abort.
type Synthesizer struct {
	language string
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{language: voices.English}
}

// Synthesize returns MP3 bytes for text. The underlying library works with
// files, so audio is rendered into a temporary directory that is removed
// before returning.
func (s *Synthesizer) Synthesize(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	dir, err := os.MkdirTemp("", "legallite-tts-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	tts := htgotts.Speech{Folder: dir, Language: s.language}
	fileName, err := tts.CreateSpeechFile(text, "summary")
	if err != nil {
		return nil, fmt.Errorf("voice generation failed: %w", err)
	}

	audio, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return nil, fmt.Errorf("voice generation failed: %w", err)
	}

	return audio, nil
}
