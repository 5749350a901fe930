// Package extract converts uploaded PDF bytes into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxBytes is the upload size ceiling applied when the caller does not
// override it.
const DefaultMaxBytes int64 = 3 * 1024 * 1024

var (
	// ErrTooLarge is returned before any parsing when the payload exceeds
	// the size ceiling.
	ErrTooLarge = errors.New("document exceeds size limit")

	// ErrEmptyDocument is returned for a zero-length payload.
	ErrEmptyDocument = errors.New("empty document")
)

// Text extracts the concatenation of every page's text, in page order, from
// raw PDF bytes. A page with no extractable text contributes an empty string.
// Payloads larger than maxBytes are rejected with ErrTooLarge without
// attempting extraction; maxBytes <= 0 falls back to DefaultMaxBytes.
func Text(data []byte, maxBytes int64) (text string, err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), maxBytes)
	}
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	// The parser panics on some malformed inputs; surface those as
	// extraction errors instead of crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse failure: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf parse failure: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// no extractable text on this page
			continue
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
