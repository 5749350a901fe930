// Package report renders a summary into a downloadable PDF document.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	margin     = 40.0
	lineHeight = 20.0
	wrapWidth  = 90 // characters per line, hard wrap
	fontFamily = "Helvetica"
	fontSize   = 12.0
)

// Render lays out the summary text, with the filename and generation
// timestamp as a header, into a paginated Letter-size PDF. Lines are wrapped
// at a fixed width of 90 characters and a new page starts when vertical space
// is exhausted.
func Render(summary, filename string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	_, pageHeight := pdf.GetPageSize()
	y := margin

	writeLine := func(line string) {
		if y > pageHeight-margin {
			pdf.AddPage()
			pdf.SetFont(fontFamily, "", fontSize)
			y = margin
		}
		pdf.Text(margin, y, line)
		y += lineHeight
	}

	writeLine(fmt.Sprintf("LegalLite Summary - %s", filename))
	writeLine(fmt.Sprintf("Date: %s", now.Format("2006-01-02 15:04:05")))
	y += lineHeight / 2

	for _, line := range wrapLines(summary, wrapWidth) {
		writeLine(line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapLines splits text on newlines and hard-wraps each line at width
// characters. The width counts runes, not bytes, so multi-byte characters
// are never split. Empty lines are preserved so paragraph breaks survive.
func wrapLines(text string, width int) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			out = append(out, "")
			continue
		}
		runes := []rune(raw)
		for len(runes) > 0 {
			n := width
			if n > len(runes) {
				n = len(runes)
			}
			out = append(out, string(runes[:n]))
			runes = runes[n:]
		}
	}
	return out
}
