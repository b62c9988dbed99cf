package scraper

import (
	"errors"
	"testing"
)

const sampleFrontPage = `
<html>
<body>
  <nav><a href="/">Home</a></nav>
  <h2 data-testid="card-headline">Government announces new climate policy</h2>
  <div class="promo">
    <h3 data-testid="card-headline">
       Markets rally after rate decision
    </h3>
  </div>
  <h2 data-testid="card-headline">Scientists map deep ocean current</h2>
  <div class="media__title"><a href="/news/1">Storm warnings issued for coast</a></div>
</body>
</html>`

func TestExtract_CollectsMatchesInSelectorOrder(t *testing.T) {
	e := NewExtractor()

	strategy := SelectorStrategy{
		ID: "front-page",
		Selectors: []string{
			`h2[data-testid="card-headline"]`,
			`h3[data-testid="card-headline"]`,
			`.media__title a`,
		},
	}

	got, err := e.Extract([]byte(sampleFrontPage), strategy)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := []string{
		"Government announces new climate policy",
		"Scientists map deep ocean current",
		"Markets rally after rate decision",
		"Storm warnings issued for coast",
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d matches, got %d: %v", len(want), len(got), got)
	}

	for i, w := range want {
		if got[i] != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestExtract_TrimsWhitespaceInMatches(t *testing.T) {
	e := NewExtractor()

	got, err := e.Extract([]byte(sampleFrontPage), SelectorStrategy{
		ID:        "front-page",
		Selectors: []string{`h3[data-testid="card-headline"]`},
	})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(got) != 1 || got[0] != "Markets rally after rate decision" {
		t.Errorf("Expected trimmed match, got %v", got)
	}
}

func TestExtract_NoMatchesIsNotAnError(t *testing.T) {
	e := NewExtractor()

	got, err := e.Extract([]byte(sampleFrontPage), SelectorStrategy{
		ID:        "front-page",
		Selectors: []string{`h1.nonexistent`, `.also-missing`},
	})
	if err != nil {
		t.Fatalf("Expected no error for empty match, got %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		document []byte
	}{
		{"nil", nil},
		{"empty", []byte("")},
		{"whitespace only", []byte("  \n\t  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.document, SelectorStrategy{ID: "x", Selectors: []string{"h2"}})
			if !errors.Is(err, ErrUnparsableDocument) {
				t.Errorf("Expected ErrUnparsableDocument, got %v", err)
			}
		})
	}
}

func TestExtract_NestedMarkupFlattensToText(t *testing.T) {
	e := NewExtractor()

	document := `<html><body>
	  <h2 class="headline"><span>Breaking:</span> <em>ceasefire talks resume</em></h2>
	</body></html>`

	got, err := e.Extract([]byte(document), SelectorStrategy{
		ID:        "nested",
		Selectors: []string{"h2.headline"},
	})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(got) != 1 || got[0] != "Breaking: ceasefire talks resume" {
		t.Errorf("Expected flattened text, got %v", got)
	}
}
