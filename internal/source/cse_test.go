package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbiograph/biograph/internal/core/model"
)

func TestFacebookSearch_MissingCredentials(t *testing.T) {
	s := NewFacebookSource("", "")

	assert.Empty(t, s.Search(context.Background(), "Ada Lovelace"))
}

func TestFacebookSearch_ProfilePagesOnly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"title": "Ada Lovelace - Facebook", "link": "https://facebook.com/ada.lovelace", "snippet": "Ada Lovelace is on Facebook"},
				{"title": "Ada Lovelace post", "link": "https://facebook.com/ada.lovelace/posts/123", "snippet": "Ada Lovelace wrote"},
				{"title": "Somebody Else", "link": "https://facebook.com/someone", "snippet": "unrelated person"}
			]
		}`))
	}))
	defer ts.Close()

	s := NewFacebookSource("key", "cx")
	s.cse.baseURL = ts.URL

	candidates := s.Search(context.Background(), "Ada Lovelace")

	// Three sub-queries against the same fake, each yielding the one
	// acceptable item: a profile URL whose title mentions the query.
	assert.Len(t, candidates, 3)
	for _, c := range candidates {
		assert.Equal(t, "Ada Lovelace", c.Name)
		assert.Equal(t, "https://facebook.com/ada.lovelace", c.SourceURL)
		assert.Equal(t, model.SourceFacebook, c.SourceType)
		assert.Equal(t, 0.7, c.Confidence)
		assert.False(t, c.Verified)
	}
}

func TestLinkedInSearch_RequiresMemberPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"title": "Ada Lovelace - LinkedIn", "link": "https://www.linkedin.com/in/adalovelace", "snippet": "profile of Ada Lovelace"},
				{"title": "Ada Lovelace news", "link": "https://www.linkedin.com/pulse/article", "snippet": "Ada Lovelace article"}
			]
		}`))
	}))
	defer ts.Close()

	s := NewLinkedInSource("key", "cx")
	s.cse.baseURL = ts.URL

	candidates := s.Search(context.Background(), "Ada Lovelace")

	assert.Len(t, candidates, 3)
	for _, c := range candidates {
		assert.Equal(t, "https://www.linkedin.com/in/adalovelace", c.SourceURL)
		assert.Equal(t, 0.8, c.Confidence)
	}
}

func TestInstagramSearch_SkipsPostPermalinks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"title": "Ada Lovelace (@ada)", "link": "https://instagram.com/ada", "snippet": "Ada Lovelace photos"},
				{"title": "Ada Lovelace reel", "link": "https://instagram.com/ada/reel/xyz", "snippet": "Ada Lovelace clip"},
				{"title": "Ada Lovelace post", "link": "https://instagram.com/p/abc", "snippet": "Ada Lovelace"}
			]
		}`))
	}))
	defer ts.Close()

	s := NewInstagramSource("key", "cx")
	s.cse.baseURL = ts.URL

	candidates := s.Search(context.Background(), "Ada Lovelace")

	assert.Len(t, candidates, 3)
	for _, c := range candidates {
		assert.Equal(t, "https://instagram.com/ada", c.SourceURL)
	}
}

func TestWebSearch_ClassifiesSourceTypes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"title": "jdoe (Jane Doe)", "link": "https://github.com/jdoe", "snippet": "Jane Doe has 12 repositories"},
				{"title": "Stories by Jane Doe", "link": "https://medium.com/@jdoe", "snippet": "essays written by Jane Doe"},
				{"title": "Jane Doe TV Show", "link": "https://github.com/janedoeshow", "snippet": "Jane Doe fan page"},
				{"title": "Jane Doe", "link": "https://randomsite.example/jane", "snippet": "Jane Doe homepage"}
			]
		}`))
	}))
	defer ts.Close()

	s := NewWebSearchSource("key", "cx")
	s.cse.baseURL = ts.URL

	candidates := s.Search(context.Background(), "Jane Doe")

	assert.NotEmpty(t, candidates)
	types := map[model.SourceType]bool{}
	for _, c := range candidates {
		types[c.SourceType] = true
		// The media-title result and the unknown host never get through.
		assert.NotContains(t, c.Snippet, "fan page")
		assert.NotEqual(t, "https://randomsite.example/jane", c.SourceURL)
	}
	assert.True(t, types[model.SourceGitHub])
	assert.True(t, types[model.SourceMedium])
}

func TestCSEClient_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := newCSEClient("key", "cx")
	c.baseURL = ts.URL

	assert.Empty(t, c.search(context.Background(), "anything", 5))
}
