package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbiograph/biograph/internal/core/model"
)

func TestYouTubeSearch_MissingKey(t *testing.T) {
	s := NewYouTubeSource("")

	assert.Empty(t, s.Search(context.Background(), "Ada Lovelace"))
}

func TestYouTubeSearch_KeepsPersonVideos(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"id": {"videoId": "v1"}, "snippet": {"title": "Ada Lovelace biography", "description": "her life", "thumbnails": {"default": {"url": "https://i.ytimg.com/v1.jpg"}}}},
				{"id": {"videoId": "v2"}, "snippet": {"title": "Unrelated clip", "description": "nothing here", "thumbnails": {"default": {"url": ""}}}},
				{"id": {"videoId": "v3"}, "snippet": {"title": "Ada Lovelace interview", "description": "", "thumbnails": {"default": {"url": ""}}}},
				{"id": {"videoId": "v4"}, "snippet": {"title": "Ada Lovelace documentary", "description": "", "thumbnails": {"default": {"url": ""}}}},
				{"id": {"videoId": "v5"}, "snippet": {"title": "Ada Lovelace profile", "description": "", "thumbnails": {"default": {"url": ""}}}}
			]
		}`))
	}))
	defer ts.Close()

	s := NewYouTubeSource("key")
	s.baseURL = ts.URL

	candidates := s.Search(context.Background(), "Ada Lovelace")

	// The filter keeps biography-style videos only and caps at three.
	assert.Len(t, candidates, 3)
	assert.Equal(t, "https://youtube.com/watch?v=v1", candidates[0].SourceURL)
	assert.Equal(t, "https://i.ytimg.com/v1.jpg", candidates[0].ProfileImage)
	for i, c := range candidates {
		assert.Equal(t, "Ada Lovelace", c.Name)
		assert.Equal(t, model.SourceYouTube, c.SourceType)
		assert.Equal(t, 0.5, c.Confidence)
		assert.Equal(t, positionScore(i), c.SimilarityScore)
	}
}
