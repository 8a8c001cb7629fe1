package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/openbiograph/biograph/internal/core/model"
)

const (
	defaultWikipediaBaseURL = "https://en.wikipedia.org"
	defaultWikidataBaseURL  = "https://www.wikidata.org"
)

// Titles that are article-namespace pages but clearly not biographies.
var disallowedTitleRe = regexp.MustCompile(`(?i)(discography|election|album|film|soundtrack|season|episode|legislative|list of)`)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// WikipediaSource is the encyclopedia adapter. It needs no credentials,
// and it also exposes the summary/full-text/Wikidata lookups used when a
// profile is created from an article.
type WikipediaSource struct {
	client      *http.Client
	baseURL     string
	wikidataURL string
}

func NewWikipediaSource() *WikipediaSource {
	return &WikipediaSource{
		client:      newHTTPClient(15 * time.Second),
		baseURL:     defaultWikipediaBaseURL,
		wikidataURL: defaultWikidataBaseURL,
	}
}

func (s *WikipediaSource) Name() string { return "wikipedia" }

func (s *WikipediaSource) Search(ctx context.Context, query string) []model.Candidate {
	api := fmt.Sprintf("%s/w/api.php?action=query&list=search&format=json&srlimit=6&srsearch=%s",
		s.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Wikipedia search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Wikipedia search returned status %d", resp.StatusCode)
		return nil
	}

	var payload struct {
		Query struct {
			Search []struct {
				NS      int    `json:"ns"`
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Wikipedia search returned malformed payload: %v", err)
		return nil
	}

	firstToken := firstQueryToken(query)

	var candidates []model.Candidate
	for _, r := range payload.Query.Search {
		if r.NS != 0 || disallowedTitleRe.MatchString(r.Title) {
			continue
		}
		if !titleContainsToken(r.Title, firstToken) {
			continue
		}

		rank := len(candidates)
		candidates = append(candidates, model.Candidate{
			Name:            r.Title,
			Descriptor:      r.Title,
			SourceURL:       articleURL(s.baseURL, r.Title),
			Snippet:         htmlTagRe.ReplaceAllString(r.Snippet, ""),
			SimilarityScore: positionScore(rank),
			SourceType:      model.SourceWikipedia,
			Verified:        true,
			Confidence:      0.9,
		})
	}

	return candidates
}

// PageSummary is the reduced REST v1 page summary.
type PageSummary struct {
	Extract    string
	URL        string
	ImageURL   string
	WikidataID string
}

// Summary fetches the REST v1 page summary. Nil with nil error means the
// page does not exist.
func (s *WikipediaSource) Summary(ctx context.Context, title string) (*PageSummary, error) {
	api := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", s.baseURL, url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var payload struct {
		Extract   string `json:"extract"`
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		WikibaseItem string `json:"wikibase_item"`
		ContentURLs  struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed summary payload for %q: %w", title, err)
	}

	pageURL := payload.ContentURLs.Desktop.Page
	if pageURL == "" {
		pageURL = articleURL(s.baseURL, title)
	}

	return &PageSummary{
		Extract:    payload.Extract,
		URL:        pageURL,
		ImageURL:   payload.Thumbnail.Source,
		WikidataID: payload.WikibaseItem,
	}, nil
}

// FullText fetches the whole article as plain text, not just the intro.
func (s *WikipediaSource) FullText(ctx context.Context, title string) (string, error) {
	api := fmt.Sprintf("%s/w/api.php?action=query&format=json&prop=extracts&exintro=false&explaintext=true&titles=%s",
		s.baseURL, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch full text for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("malformed full text payload for %q: %w", title, err)
	}

	for _, page := range payload.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", nil
}

var isoDateRe = regexp.MustCompile(`([+-]?\d{4}-\d{2}-\d{2})`)

// BirthDate resolves the Wikidata date-of-birth claim (P569) to
// YYYY-MM-DD. Best effort: empty string when unavailable.
func (s *WikipediaSource) BirthDate(ctx context.Context, wikidataID string) string {
	entity := s.wikidataEntity(ctx, wikidataID)
	if entity == nil {
		return ""
	}

	claims := entity.Claims["P569"]
	if len(claims) == 0 {
		return ""
	}
	// Times look like +1972-06-10T00:00:00Z.
	m := isoDateRe.FindString(claims[0].MainSnak.DataValue.Value.Time)
	return strings.TrimPrefix(m, "+")
}

// IsHuman reports whether the Wikidata entity is an instance of human
// (P31 contains Q5). Best effort: false on any failure.
func (s *WikipediaSource) IsHuman(ctx context.Context, wikidataID string) bool {
	entity := s.wikidataEntity(ctx, wikidataID)
	if entity == nil {
		return false
	}

	for _, c := range entity.Claims["P31"] {
		if c.MainSnak.DataValue.Value.ID == "Q5" {
			return true
		}
	}
	return false
}

type wikidataEntity struct {
	Claims map[string][]struct {
		MainSnak struct {
			DataValue struct {
				Value struct {
					Time string `json:"time"`
					ID   string `json:"id"`
				} `json:"value"`
			} `json:"datavalue"`
		} `json:"mainsnak"`
	} `json:"claims"`
}

func (s *WikipediaSource) wikidataEntity(ctx context.Context, wikidataID string) *wikidataEntity {
	api := fmt.Sprintf("%s/wiki/Special:EntityData/%s.json", s.wikidataURL, url.PathEscape(wikidataID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Wikidata request failed for %s: %v", wikidataID, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload struct {
		Entities map[string]wikidataEntity `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Wikidata returned malformed payload for %s: %v", wikidataID, err)
		return nil
	}

	e, ok := payload.Entities[wikidataID]
	if !ok {
		return nil
	}
	return &e
}

func articleURL(baseURL, title string) string {
	return fmt.Sprintf("%s/wiki/%s", baseURL, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
}

func firstQueryToken(query string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// titleContainsToken requires the query's first token to appear as a whole
// word of the title, which keeps tangential articles out.
func titleContainsToken(title, token string) bool {
	if token == "" {
		return false
	}
	for _, w := range nonAlnumRe.Split(strings.ToLower(title), -1) {
		if w == token {
			return true
		}
	}
	return false
}
