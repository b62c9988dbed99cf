// Package reporter formats the final headline list for the console
// preview and the persisted report file.
package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Samriddhi244/Web-Scraper-Script/internal/models"
)

const (
	// timeLayout is the human-readable second-precision stamp in the
	// report header.
	timeLayout = "2006-01-02 15:04:05"

	separatorWidth = 50

	// previewWidth caps console lines by display width so wide CJK or
	// emoji headlines do not wrap the preview.
	previewWidth = 100
)

// DefaultTopN is the console preview size.
const DefaultTopN = 15

// EmptyMessage replaces a blank preview when no source produced
// headlines.
const EmptyMessage = "No headlines found."

// Reporter renders and persists reports.
type Reporter struct {
	TopN int
}

// NewReporter creates a reporter. A non-positive topN falls back to
// DefaultTopN.
func NewReporter(topN int) *Reporter {
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Reporter{TopN: topN}
}

// FormatConsole renders the numbered top-N preview. Indexes are
// 1-based and right-aligned to width 2, matching the file layout.
func (r *Reporter) FormatConsole(headlines []models.Headline) string {
	if len(headlines) == 0 {
		return EmptyMessage + "\n"
	}

	limit := r.TopN
	if limit > len(headlines) {
		limit = len(headlines)
	}

	var sb strings.Builder

	for i := 0; i < limit; i++ {
		line := runewidth.Truncate(headlines[i].Text, previewWidth, "…")
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, line)
	}

	return sb.String()
}

// FormatFile renders the full persisted report:
//
//	News Headlines - Scraped on 2006-01-02 15:04:05
//	==================================================
//
//	 1. <headline>
//
//	Total headlines: 1
func FormatFile(report models.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "News Headlines - Scraped on %s\n", report.GeneratedAt.Format(timeLayout))
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteString("\n\n")

	for i, h := range report.Headlines {
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, h.Text)
	}

	fmt.Fprintf(&sb, "\nTotal headlines: %d\n", len(report.Headlines))

	return sb.String()
}

// WriteReport overwrites path with the rendered report. No append, no
// rotation; a failure here is the pipeline's only fatal error. An
// empty report is still written in full with a zero total.
func (r *Reporter) WriteReport(path string, report models.Report) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(FormatFile(report)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
