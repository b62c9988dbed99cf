package scraper

import (
	"errors"
	"fmt"

	"github.com/Samriddhi244/Web-Scraper-Script/internal/config"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/logger"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/models"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/normalizer"
)

// ErrNoHeadlines marks an attempt whose extraction matched nothing
// useful after normalization.
var ErrNoHeadlines = errors.New("no headlines extracted")

// state is one step of the failover walk.
type state int

const (
	stateTryPrimary state = iota
	stateTrySecondary
	stateDone
)

// Outcome is the terminal result of a selector run.
type Outcome struct {
	Headlines []models.Headline
	Source    models.SourceLabel
	// Exhausted is set when both sources failed or came back empty.
	Exhausted bool
}

// SourceSelector drives the fetch, extract and normalize sequence
// against the primary source and falls back to the secondary on any
// failure. Fetch and parse errors never escape this layer; they only
// trigger the fallback transition.
type SourceSelector struct {
	fetcher    *Fetcher
	extractor  *Extractor
	normalizer *normalizer.Normalizer
	log        *logger.Logger

	primary   config.SourceConfig
	secondary config.SourceConfig
}

// NewSourceSelector creates a selector over the two configured sources.
func NewSourceSelector(fetcher *Fetcher, extractor *Extractor, norm *normalizer.Normalizer, log *logger.Logger, primary, secondary config.SourceConfig) *SourceSelector {
	return &SourceSelector{
		fetcher:    fetcher,
		extractor:  extractor,
		normalizer: norm,
		log:        log,
		primary:    primary,
		secondary:  secondary,
	}
}

// Run walks tryPrimary -> trySecondary -> done. The primary success
// path short-circuits; only the fully exhausted case reaches the
// caller as an empty outcome.
func (s *SourceSelector) Run() Outcome {
	current := stateTryPrimary
	outcome := Outcome{Source: models.SourceNone}

	for current != stateDone {
		switch current {
		case stateTryPrimary:
			headlines, err := s.attempt(s.primary)
			if err != nil {
				s.log.Warn("primary source failed, trying fallback",
					"source", s.primary.Name,
					"err", err.Error(),
				)

				current = stateTrySecondary

				continue
			}

			outcome.Headlines = headlines
			outcome.Source = models.SourcePrimary
			current = stateDone

		case stateTrySecondary:
			headlines, err := s.attempt(s.secondary)
			if err != nil {
				s.log.Warn("all sources exhausted",
					"source", s.secondary.Name,
					"err", err.Error(),
				)

				outcome.Exhausted = true
				current = stateDone

				continue
			}

			outcome.Headlines = headlines
			outcome.Source = models.SourceSecondary
			current = stateDone
		}
	}

	return outcome
}

// attempt runs one full fetch, extract, normalize pass for a source.
// An empty post-normalization list counts as a failure so the caller
// can fall back; a list that deduplication collapsed to a single entry
// still counts as success.
func (s *SourceSelector) attempt(src config.SourceConfig) ([]models.Headline, error) {
	body, statusCode, duration, err := s.fetcher.FetchWithMetrics(src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Name, err)
	}

	s.log.Debug("fetched",
		"source", src.Name,
		"status", statusCode,
		"bytes", len(body),
		"duration", duration.String(),
	)

	raw, err := s.extractor.Extract(body, SelectorStrategy{ID: src.Name, Selectors: src.Selectors})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", src.Name, err)
	}

	headlines := s.normalizer.Normalize(raw)
	if len(headlines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHeadlines, src.Name)
	}

	return headlines, nil
}
