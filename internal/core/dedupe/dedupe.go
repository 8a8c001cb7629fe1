// Package dedupe merges candidates that represent the same person across
// sources.
package dedupe

import (
	"regexp"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

var (
	nonAlnumSpaceRe = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeName lower-cases a display name, strips everything outside
// [a-z0-9\s] and collapses whitespace. Two candidates are the same person
// iff their normalized names are equal.
func NormalizeName(name string) string {
	n := strings.ToLower(name)
	n = nonAlnumSpaceRe.ReplaceAllString(n, "")
	n = whitespaceRe.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

type Deduplicator struct{}

func New() *Deduplicator {
	return &Deduplicator{}
}

// Dedupe collapses same-person candidates, keeping the higher-confidence
// record on collision (ties keep the first seen). A secondary key of
// normalized name + source type guards against one adapter emitting the
// same result twice. The linear rescan per candidate is O(n²) on purpose:
// n is a handful of results from a fixed set of adapters.
func (d *Deduplicator) Dedupe(candidates []model.Candidate) []model.Candidate {
	seen := make(map[string]bool)
	var result []model.Candidate

	for _, c := range candidates {
		normalized := NormalizeName(c.Name)
		key := normalized + "-" + string(c.SourceType)

		existing := -1
		for i, r := range result {
			if NormalizeName(r.Name) == normalized {
				existing = i
				break
			}
		}

		if existing >= 0 {
			if c.Confidence > result[existing].Confidence {
				result[existing] = c
			}
		} else if !seen[key] {
			seen[key] = true
			result = append(result, c)
		}
	}

	return result
}
