package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbiograph/biograph/internal/config"
	"github.com/openbiograph/biograph/internal/core/model"
)

func TestApply_DropsChannelByName(t *testing.T) {
	f := New(config.DefaultHeuristics().DisallowedTokens)

	result := f.Apply([]model.Candidate{
		{Name: "Example Channel", Snippet: "a person"},
		{Name: "Ada Lovelace", Snippet: "English mathematician"},
	})

	assert.Len(t, result, 1)
	assert.Equal(t, "Ada Lovelace", result[0].Name)
}

func TestApply_DropsBySnippet(t *testing.T) {
	f := New(config.DefaultHeuristics().DisallowedTokens)

	result := f.Apply([]model.Candidate{
		{Name: "Marvel Cinematic", Snippet: "an American media franchise and shared universe"},
	})

	assert.Empty(t, result)
}

func TestApply_CaseInsensitive(t *testing.T) {
	f := New(config.DefaultHeuristics().DisallowedTokens)

	result := f.Apply([]model.Candidate{
		{Name: "ACME NEWS NETWORK", Snippet: ""},
	})

	assert.Empty(t, result)
}

func TestApply_KeepsPlainPeople(t *testing.T) {
	f := New(config.DefaultHeuristics().DisallowedTokens)

	in := []model.Candidate{
		{Name: "Grace Hopper", Snippet: "computer scientist and naval officer"},
		{Name: "Alan Turing", Snippet: "mathematician"},
	}

	assert.Equal(t, in, f.Apply(in))
}
