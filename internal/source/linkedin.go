package source

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

// LinkedInSource finds LinkedIn member pages via Google Custom Search.
type LinkedInSource struct {
	cse *cseClient
}

func NewLinkedInSource(apiKey, engineID string) *LinkedInSource {
	return &LinkedInSource{cse: newCSEClient(apiKey, engineID)}
}

func (s *LinkedInSource) Name() string { return "linkedin" }

func (s *LinkedInSource) Search(ctx context.Context, query string) []model.Candidate {
	if !s.cse.configured() {
		log.Println("Google Search API not configured - skipping LinkedIn search")
		return nil
	}

	queries := []string{
		fmt.Sprintf("%q site:linkedin.com/in/", query),
		fmt.Sprintf("%q linkedin profile", query),
		fmt.Sprintf("%q linkedin.com/in/", query),
	}

	var candidates []model.Candidate
	for _, q := range queries {
		for i, item := range s.cse.search(ctx, q, 5) {
			if !strings.Contains(item.Link, "linkedin.com/in/") {
				continue
			}
			if !containsQuery(item.Title, item.Snippet, query) {
				continue
			}

			candidates = append(candidates, model.Candidate{
				Name:            displayName(item.Title),
				Descriptor:      "LinkedIn Profile",
				SourceURL:       item.Link,
				Snippet:         item.Snippet,
				SimilarityScore: positionScore(i),
				SourceType:      model.SourceLinkedIn,
				Verified:        false,
				Confidence:      0.8,
			})
		}
	}

	return candidates
}
