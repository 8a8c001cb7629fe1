package source

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

// FacebookSource finds Facebook profile pages via Google Custom Search.
// No Facebook API access is required.
type FacebookSource struct {
	cse *cseClient
}

func NewFacebookSource(apiKey, engineID string) *FacebookSource {
	return &FacebookSource{cse: newCSEClient(apiKey, engineID)}
}

func (s *FacebookSource) Name() string { return "facebook" }

func (s *FacebookSource) Search(ctx context.Context, query string) []model.Candidate {
	if !s.cse.configured() {
		log.Println("Google Search API not configured - skipping Facebook search")
		return nil
	}

	queries := []string{
		fmt.Sprintf("%q site:facebook.com", query),
		fmt.Sprintf("%q facebook profile", query),
		fmt.Sprintf("%q facebook.com/", query),
	}

	var candidates []model.Candidate
	for _, q := range queries {
		for i, item := range s.cse.search(ctx, q, 5) {
			if !strings.Contains(item.Link, "facebook.com/") {
				continue
			}
			// Profile pages only, not post or media permalinks.
			if strings.Contains(item.Link, "/posts/") ||
				strings.Contains(item.Link, "/photos/") ||
				strings.Contains(item.Link, "/videos/") {
				continue
			}
			if !containsQuery(item.Title, item.Snippet, query) {
				continue
			}

			candidates = append(candidates, model.Candidate{
				Name:            displayName(item.Title),
				Descriptor:      "Facebook Profile",
				SourceURL:       item.Link,
				Snippet:         item.Snippet,
				SimilarityScore: positionScore(i),
				SourceType:      model.SourceFacebook,
				Verified:        false,
				Confidence:      0.7,
			})
		}
	}

	return candidates
}
