package source

import (
	"context"
	"log"
	"sync"

	"github.com/openbiograph/biograph/internal/core/model"
)

// FanOut invokes every registered adapter concurrently and joins the
// results. One adapter's failure or slowness never aborts the others;
// the wave completes only when all adapters have returned.
type FanOut struct {
	Sources []Source
}

func NewFanOut(sources ...Source) *FanOut {
	return &FanOut{Sources: sources}
}

// SearchAll runs one wave. Encyclopedia results come first, and are
// forced to verified with confidence 0.9 regardless of adapter-reported
// values; the rest follow in registration order.
func (f *FanOut) SearchAll(ctx context.Context, query string) []model.Candidate {
	results := make([][]model.Candidate, len(f.Sources))

	var wg sync.WaitGroup
	for i, s := range f.Sources {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			results[i] = s.Search(ctx, query)
		}(i, s)
	}
	wg.Wait()

	counts := make(map[string]int, len(f.Sources))
	for i, s := range f.Sources {
		counts[s.Name()] = len(results[i])
	}
	log.Printf("Search results for %q: %v", query, counts)

	var encyclopedia, rest []model.Candidate
	for _, list := range results {
		for _, c := range list {
			if c.SourceType == model.SourceWikipedia {
				c.Verified = true
				c.Confidence = 0.9
				encyclopedia = append(encyclopedia, c)
			} else {
				rest = append(rest, c)
			}
		}
	}

	return append(encyclopedia, rest...)
}
