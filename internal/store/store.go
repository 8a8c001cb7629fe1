// Package store persists profiles, events and provenance records in a
// Bolt-speaking graph database (Memgraph or Neo4j).
package store

import (
	"context"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
)

type Store interface {
	FindByFuzzyNameOrSummary(ctx context.Context, query string) ([]model.Profile, error)
	FindByExactNormalizedName(ctx context.Context, name string) (*model.Profile, error)
	InsertProfile(ctx context.Context, name, summary, heroImageURL string) (string, error)
	InsertEvent(ctx context.Context, ev model.StoredEvent) (string, error)
	InsertProvenance(ctx context.Context, eventID, url, snippet, note string) (string, error)
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	ListEvents(ctx context.Context, profileID string) ([]model.StoredEvent, error)
	ListProvenance(ctx context.Context, eventID string) ([]model.Provenance, error)
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}

// NormalizeKey is the duplicate-avoidance key for stored profiles:
// lower-cased with all spaces removed. Looser than the candidate
// deduplication normalization on purpose; it only has to match what the
// same code wrote earlier.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
