// Package normalizer turns raw extracted strings into a clean,
// deduplicated headline list.
package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/Samriddhi244/Web-Scraper-Script/internal/models"
)

// DefaultMinLength filters out nav labels and other junk matches.
const DefaultMinLength = 10

// Normalizer applies trimming, the minimum-length filter and
// order-preserving deduplication.
type Normalizer struct {
	MinLength int
}

// NewNormalizer creates a normalizer. A non-positive minLength falls
// back to DefaultMinLength.
func NewNormalizer(minLength int) *Normalizer {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	return &Normalizer{MinLength: minLength}
}

// Normalize trims each string, drops entries shorter than MinLength
// runes and deduplicates by exact text, keeping the first occurrence.
// Pure: no I/O, never fails, always returns a (possibly empty) list
// that preserves the relative order of first occurrences.
func (n *Normalizer) Normalize(raw []string) []models.Headline {
	out := make([]models.Headline, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, text := range raw {
		text = strings.TrimSpace(text)

		// Rune count, not byte count, so CJK headlines are not
		// over-filtered.
		if utf8.RuneCountInString(text) < n.MinLength {
			continue
		}

		if seen[text] {
			continue
		}

		seen[text] = true

		out = append(out, models.Headline{Text: text})
	}

	return out
}
