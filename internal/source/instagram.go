package source

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

// InstagramSource finds Instagram profile pages via Google Custom Search.
type InstagramSource struct {
	cse *cseClient
}

func NewInstagramSource(apiKey, engineID string) *InstagramSource {
	return &InstagramSource{cse: newCSEClient(apiKey, engineID)}
}

func (s *InstagramSource) Name() string { return "instagram" }

func (s *InstagramSource) Search(ctx context.Context, query string) []model.Candidate {
	if !s.cse.configured() {
		log.Println("Google Search API not configured - skipping Instagram search")
		return nil
	}

	queries := []string{
		fmt.Sprintf("%q site:instagram.com", query),
		fmt.Sprintf("%q instagram profile", query),
		fmt.Sprintf("%q instagram.com/", query),
	}

	var candidates []model.Candidate
	for _, q := range queries {
		for i, item := range s.cse.search(ctx, q, 5) {
			if !strings.Contains(item.Link, "instagram.com/") {
				continue
			}
			// Profile pages only, not post or reel permalinks.
			if strings.Contains(item.Link, "/p/") ||
				strings.Contains(item.Link, "/reel/") ||
				strings.Contains(item.Link, "/tv/") {
				continue
			}
			if !containsQuery(item.Title, item.Snippet, query) {
				continue
			}

			candidates = append(candidates, model.Candidate{
				Name:            displayName(item.Title),
				Descriptor:      "Instagram Profile",
				SourceURL:       item.Link,
				Snippet:         item.Snippet,
				SimilarityScore: positionScore(i),
				SourceType:      model.SourceInstagram,
				Verified:        false,
				Confidence:      0.7,
			})
		}
	}

	return candidates
}
