package source

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

// WebSearchSource runs a broad Google Custom Search restricted to known
// profile-hosting domains (code hosts, portfolio sites, Q&A sites,
// universities). It is the adapter that finds non-famous people.
type WebSearchSource struct {
	cse *cseClient
}

func NewWebSearchSource(apiKey, engineID string) *WebSearchSource {
	return &WebSearchSource{cse: newCSEClient(apiKey, engineID)}
}

func (s *WebSearchSource) Name() string { return "websearch" }

var profileHosts = []struct {
	fragment   string
	sourceType model.SourceType
}{
	{"github.com", model.SourceGitHub},
	{"geeksforgeeks.org", model.SourceGeeksForGeeks},
	{"twitter.com", model.SourceTwitter},
	{"medium.com/@", model.SourceMedium},
	{"dev.to", model.SourceDevTo},
	{"stackoverflow.com", model.SourceStackOverflow},
	{"quora.com", model.SourceQuora},
	{"behance.net", model.SourceBehance},
	{"dribbble.com", model.SourceDribbble},
	{"about.me", model.SourceAboutMe},
	{"university.edu", model.SourceEducation},
	{"college.edu", model.SourceEducation},
	{"edu.in", model.SourceEducation},
	{"ac.in", model.SourceEducation},
}

var mediaTokens = []string{
	"tv", "channel", "show", "news", "media",
	"network", "company", "organization", "franchise", "universe",
}

func (s *WebSearchSource) Search(ctx context.Context, query string) []model.Candidate {
	if !s.cse.configured() {
		log.Println("Google Search API not configured - skipping web search")
		return nil
	}

	queries := []string{
		fmt.Sprintf("%q site:geeksforgeeks.org", query),
		fmt.Sprintf("%q site:github.com", query),
		fmt.Sprintf("%q portfolio website", query),
		fmt.Sprintf("%q college university student", query),
		fmt.Sprintf("%q site:twitter.com", query),
		fmt.Sprintf("%q about.me", query),
		fmt.Sprintf("%q behance.net", query),
		fmt.Sprintf("%q dribbble.com", query),
		fmt.Sprintf("%q medium.com", query),
		fmt.Sprintf("%q dev.to", query),
		fmt.Sprintf("%q stackoverflow.com", query),
		fmt.Sprintf("%q quora.com", query),
	}

	var candidates []model.Candidate
	for _, q := range queries {
		for i, item := range s.cse.search(ctx, q, 3) {
			sourceType, ok := classifyProfileURL(item.Link)
			if !ok {
				continue
			}
			if !containsQuery(item.Title, item.Snippet, query) {
				continue
			}
			if titleLooksLikeMedia(item.Title) {
				continue
			}

			candidates = append(candidates, model.Candidate{
				Name:            displayName(item.Title),
				Descriptor:      hostname(item.Link),
				SourceURL:       item.Link,
				Snippet:         item.Snippet,
				SimilarityScore: positionScore(i),
				SourceType:      sourceType,
				Verified:        false,
				Confidence:      0.7,
			})
		}
	}

	return candidates
}

// classifyProfileURL reports whether the URL belongs to a known
// profile-hosting surface and, if so, which source type it maps to.
func classifyProfileURL(link string) (model.SourceType, bool) {
	for _, h := range profileHosts {
		if strings.Contains(link, h.fragment) {
			return h.sourceType, true
		}
	}
	if strings.Contains(link, "portfolio") {
		return model.SourceGoogle, true
	}
	if strings.Contains(link, "wikipedia.org/wiki/") {
		return model.SourceGoogle, true
	}
	return "", false
}

func titleLooksLikeMedia(title string) bool {
	t := strings.ToLower(title)
	for _, tok := range mediaTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}

func hostname(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	return u.Host
}
