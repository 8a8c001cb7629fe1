package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openbiograph/biograph/internal/core/model"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3/search"

// YouTubeSource searches for videos about the person (interviews,
// biographies, documentaries), not channels.
type YouTubeSource struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewYouTubeSource(apiKey string) *YouTubeSource {
	return &YouTubeSource{
		client:  newHTTPClient(15 * time.Second),
		apiKey:  apiKey,
		baseURL: defaultYouTubeBaseURL,
	}
}

func (s *YouTubeSource) Name() string { return "youtube" }

func (s *YouTubeSource) Search(ctx context.Context, query string) []model.Candidate {
	if s.apiKey == "" {
		log.Println("YouTube API key not configured - skipping YouTube search")
		return nil
	}

	api := fmt.Sprintf("%s?part=snippet&q=%s&type=video&key=%s&maxResults=10",
		s.baseURL,
		url.QueryEscape(query+" interview biography documentary"),
		url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("YouTube search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("YouTube search returned status %d", resp.StatusCode)
		return nil
	}

	var payload struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Thumbnails  struct {
					Default struct {
						URL string `json:"url"`
					} `json:"default"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("YouTube search returned malformed payload: %v", err)
		return nil
	}

	var candidates []model.Candidate
	for _, item := range payload.Items {
		title := strings.ToLower(item.Snippet.Title)
		description := strings.ToLower(item.Snippet.Description)

		if !containsQuery(item.Snippet.Title, item.Snippet.Description, query) {
			continue
		}
		isAboutPerson := strings.Contains(title, "interview") || strings.Contains(title, "biography") ||
			strings.Contains(title, "documentary") || strings.Contains(title, "profile") ||
			strings.Contains(description, "interview") || strings.Contains(description, "biography")
		if !isAboutPerson {
			continue
		}
		if titleLooksLikeMedia(item.Snippet.Title) {
			continue
		}

		rank := len(candidates)
		candidates = append(candidates, model.Candidate{
			// Videos are about the person, so the query is the best name
			// we have.
			Name:            query,
			Descriptor:      "YouTube Video",
			SourceURL:       fmt.Sprintf("https://youtube.com/watch?v=%s", item.ID.VideoID),
			Snippet:         item.Snippet.Title,
			SimilarityScore: positionScore(rank),
			SourceType:      model.SourceYouTube,
			ProfileImage:    item.Snippet.Thumbnails.Default.URL,
			Verified:        false,
			Confidence:      0.5,
		})
		if len(candidates) == 3 {
			break
		}
	}

	return candidates
}
