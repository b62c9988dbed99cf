// Package models defines the data types shared across the scraper pipeline.
package models

import "time"

// Headline is a single extracted headline. It has no identity beyond
// its text and is immutable once created.
type Headline struct {
	Text string `json:"text"`
}

// SourceLabel identifies which source produced the final headline list.
type SourceLabel string

// Source labels.
const (
	SourcePrimary   SourceLabel = "primary"
	SourceSecondary SourceLabel = "secondary"
	SourceNone      SourceLabel = "none"
)

// Report is the final deduplicated headline list plus its generation
// timestamp. It is created once at the end of the pipeline and written
// once to the output file.
type Report struct {
	Headlines   []Headline
	GeneratedAt time.Time
}
