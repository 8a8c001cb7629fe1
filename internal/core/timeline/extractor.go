// Package timeline converts biographical prose into dated, categorized
// events with a single-pass, line-oriented keyword scan. It favors
// precision of the category label over recall and never recovers dates
// more precise than a year.
package timeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openbiograph/biograph/internal/config"
	"github.com/openbiograph/biograph/internal/core/model"
)

var yearRe = regexp.MustCompile(`\d{4}`)

type categoryRule struct {
	name     string
	keywords []string
}

type Extractor struct {
	rules      []categoryRule
	maxEvents  int
	confidence float64
	snippetLen int
}

func New(h config.HeuristicsConfig) *Extractor {
	return &Extractor{
		rules: []categoryRule{
			{"education", h.EducationKeywords},
			{"career", h.CareerKeywords},
			{"award", h.AwardKeywords},
			{"personal", h.PersonalKeywords},
		},
		maxEvents:  h.MaxEvents,
		confidence: h.EventConfidence,
		snippetLen: h.SnippetLength,
	}
}

// Extract scans the text line by line. A line without a 4-digit year is
// skipped; a line matching several categories emits one event per
// matching category. Events come out in source-line order, capped at the
// configured maximum.
func (e *Extractor) Extract(fullText, personName string) []model.TimelineEvent {
	var events []model.TimelineEvent

	for _, line := range strings.Split(fullText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		year := yearRe.FindString(trimmed)
		if year == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		for _, rule := range e.rules {
			if !matchesAny(lower, rule.keywords) {
				continue
			}
			events = append(events, model.TimelineEvent{
				Date:          fmt.Sprintf("%s-01-01", year),
				EventText:     trimmed,
				Categories:    []string{rule.name},
				SourceSnippet: truncate(trimmed, e.snippetLen),
				Confidence:    e.confidence,
			})
			if len(events) == e.maxEvents {
				return events
			}
		}
	}

	return events
}

func matchesAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
