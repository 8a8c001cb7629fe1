package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openbiograph/biograph/internal/core/model"
)

type stubSource struct {
	name    string
	results []model.Candidate
	delay   time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(ctx context.Context, query string) []model.Candidate {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.results
}

func TestSearchAll_WikipediaFirst(t *testing.T) {
	f := NewFanOut(
		&stubSource{name: "facebook", results: []model.Candidate{
			{Name: "Ada L", SourceType: model.SourceFacebook, Confidence: 0.7},
		}},
		&stubSource{name: "wikipedia", results: []model.Candidate{
			{Name: "Ada Lovelace", SourceType: model.SourceWikipedia, Confidence: 0.2},
		}},
	)

	out := f.SearchAll(context.Background(), "Ada Lovelace")

	assert.Len(t, out, 2)
	assert.Equal(t, model.SourceWikipedia, out[0].SourceType)
	// Encyclopedia results are forced to verified 0.9 regardless of what
	// the adapter reported.
	assert.True(t, out[0].Verified)
	assert.Equal(t, 0.9, out[0].Confidence)
}

func TestSearchAll_FailedAdapterIsolated(t *testing.T) {
	f := NewFanOut(
		&stubSource{name: "wikipedia", results: []model.Candidate{
			{Name: "Ada Lovelace", SourceType: model.SourceWikipedia},
		}},
		&stubSource{name: "youtube", results: nil}, // degraded to empty
		&stubSource{name: "linkedin", results: nil, delay: 10 * time.Millisecond},
	)

	out := f.SearchAll(context.Background(), "Ada Lovelace")

	assert.Len(t, out, 1)
	assert.Equal(t, "Ada Lovelace", out[0].Name)
}

func TestSearchAll_AllEmpty(t *testing.T) {
	f := NewFanOut(
		&stubSource{name: "wikipedia"},
		&stubSource{name: "facebook"},
	)

	assert.Empty(t, f.SearchAll(context.Background(), "nobody"))
}
