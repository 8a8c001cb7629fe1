// Package filter removes candidates that are evidently not individuals.
package filter

import (
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

// PersonFilter drops candidates whose name or snippet contains a
// disallowed token. It is a coarse lexical heuristic, not semantic
// classification; false positives and negatives are expected.
type PersonFilter struct {
	tokens []string
}

func New(disallowedTokens []string) *PersonFilter {
	return &PersonFilter{tokens: disallowedTokens}
}

func (f *PersonFilter) Apply(candidates []model.Candidate) []model.Candidate {
	var out []model.Candidate
	for _, c := range candidates {
		if f.isPerson(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f *PersonFilter) isPerson(c model.Candidate) bool {
	name := strings.ToLower(c.Name)
	snippet := strings.ToLower(c.Snippet)
	for _, tok := range f.tokens {
		if strings.Contains(name, tok) || strings.Contains(snippet, tok) {
			return false
		}
	}
	return true
}
