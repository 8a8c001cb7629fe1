package source

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/openbiograph/biograph/internal/core/model"
)

// Source is one external search adapter. Search never returns an error:
// missing credentials, unreachable endpoints and malformed payloads all
// degrade to an empty list.
type Source interface {
	Name() string
	Search(ctx context.Context, query string) []model.Candidate
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// positionScore decays with the zero-based rank inside one source's own
// result ordering. It is positional, not semantic.
func positionScore(rank int) float64 {
	s := 1 - float64(rank)*0.1
	if s < 0 {
		return 0
	}
	return s
}

var titleSuffixRe = regexp.MustCompile(` - .*$`)

// displayName trims the " - Site Name" tail that search result titles
// usually carry.
func displayName(title string) string {
	return strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, ""))
}

func containsQuery(title, snippet, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(title), q) ||
		strings.Contains(strings.ToLower(snippet), q)
}
