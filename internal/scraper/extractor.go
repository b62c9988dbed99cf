package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnparsableDocument indicates markup that cannot be parsed at all.
// Selectors matching nothing is not an error; the caller decides
// whether an empty result counts as a failure.
var ErrUnparsableDocument = errors.New("document could not be parsed")

// SelectorStrategy describes where headline text lives for one source.
// Selectors are CSS selectors applied in order; matches are collected
// in document order per selector.
type SelectorStrategy struct {
	ID        string
	Selectors []string
}

// Extractor pulls raw headline strings out of fetched markup.
type Extractor struct{}

// NewExtractor creates a new extractor instance.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text content of every strategy match. Duplicate
// and too-short matches are kept here; filtering belongs to the
// normalizer.
func (e *Extractor) Extract(document []byte, strategy SelectorStrategy) ([]string, error) {
	if len(bytes.TrimSpace(document)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnparsableDocument)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}

	var out []string

	for _, selector := range strategy.Selectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			out = append(out, strings.TrimSpace(s.Text()))
		})
	}

	return out, nil
}
