package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/openbiograph/biograph/internal/core/model"
)

// BoltStore implements Store over a Bolt driver. This is the only layer
// whose failures surface to callers as errors.
type BoltStore struct {
	Driver neo4j.DriverWithContext

	// NewID is injectable for deterministic tests.
	NewID func() string
}

func NewBoltStore(uri, username, password string) (*BoltStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to graph store")
	return &BoltStore{Driver: driver, NewID: uuid.NewString}, nil
}

func (s *BoltStore) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *BoltStore) executeQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (s *BoltStore) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Profile(id);",
		"CREATE INDEX ON :Profile(normalized_name);",
		"CREATE INDEX ON :Event(id);",
		"CREATE INDEX ON :Provenance(id);",
	}

	for _, q := range queries {
		if _, err := s.executeQuery(ctx, q, nil); err != nil {
			// Index may already exist.
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}

	return nil
}

func (s *BoltStore) FindByFuzzyNameOrSummary(ctx context.Context, query string) ([]model.Profile, error) {
	result, err := s.executeQuery(ctx, fuzzyProfileQuery, map[string]interface{}{"query": query})
	if err != nil {
		return nil, err
	}

	var profiles []model.Profile
	for _, rec := range result.Records {
		profiles = append(profiles, profileFromRecord(rec))
	}
	return profiles, nil
}

func (s *BoltStore) FindByExactNormalizedName(ctx context.Context, name string) (*model.Profile, error) {
	result, err := s.executeQuery(ctx, exactNormalizedProfileQuery, map[string]interface{}{
		"normalized_name": NormalizeKey(name),
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}

	p := profileFromRecord(result.Records[0])
	return &p, nil
}

func (s *BoltStore) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	result, err := s.executeQuery(ctx, getProfileQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}

	p := profileFromRecord(result.Records[0])
	return &p, nil
}

func (s *BoltStore) InsertProfile(ctx context.Context, name, summary, heroImageURL string) (string, error) {
	id := s.NewID()
	_, err := s.executeQuery(ctx, insertProfileQuery, map[string]interface{}{
		"id":              id,
		"name":            name,
		"normalized_name": NormalizeKey(name),
		"summary":         summary,
		"hero_image_url":  heroImageURL,
		"created_at":      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert profile %q: %w", name, err)
	}
	return id, nil
}

func (s *BoltStore) InsertEvent(ctx context.Context, ev model.StoredEvent) (string, error) {
	id := s.NewID()
	result, err := s.executeQuery(ctx, insertEventQuery, map[string]interface{}{
		"id":             id,
		"profile_id":     ev.ProfileID,
		"date":           ev.Date,
		"event_text":     ev.EventText,
		"categories":     ev.Categories,
		"source_url":     ev.SourceURL,
		"source_snippet": ev.SourceSnippet,
		"confidence":     ev.Confidence,
		"embedding":      ev.Embedding,
		"created_at":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	if len(result.Records) == 0 {
		return "", fmt.Errorf("failed to insert event: profile %s not found", ev.ProfileID)
	}
	return id, nil
}

func (s *BoltStore) InsertProvenance(ctx context.Context, eventID, url, snippet, note string) (string, error) {
	id := s.NewID()
	result, err := s.executeQuery(ctx, insertProvenanceQuery, map[string]interface{}{
		"id":         id,
		"event_id":   eventID,
		"url":        url,
		"snippet":    snippet,
		"note":       note,
		"fetch_time": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert provenance: %w", err)
	}
	if len(result.Records) == 0 {
		return "", fmt.Errorf("failed to insert provenance: event %s not found", eventID)
	}
	return id, nil
}

func (s *BoltStore) ListEvents(ctx context.Context, profileID string) ([]model.StoredEvent, error) {
	result, err := s.executeQuery(ctx, listEventsQuery, map[string]interface{}{"profile_id": profileID})
	if err != nil {
		return nil, err
	}

	var events []model.StoredEvent
	for _, rec := range result.Records {
		events = append(events, model.StoredEvent{
			ID:            recordString(rec, "id"),
			ProfileID:     profileID,
			Date:          recordString(rec, "date"),
			EventText:     recordString(rec, "event_text"),
			Categories:    recordStrings(rec, "categories"),
			SourceURL:     recordString(rec, "source_url"),
			SourceSnippet: recordString(rec, "source_snippet"),
			Confidence:    recordFloat(rec, "confidence"),
		})
	}
	return events, nil
}

func (s *BoltStore) ListProvenance(ctx context.Context, eventID string) ([]model.Provenance, error) {
	result, err := s.executeQuery(ctx, listProvenanceQuery, map[string]interface{}{"event_id": eventID})
	if err != nil {
		return nil, err
	}

	var records []model.Provenance
	for _, rec := range result.Records {
		fetchTime, _ := time.Parse(time.RFC3339, recordString(rec, "fetch_time"))
		records = append(records, model.Provenance{
			ID:        recordString(rec, "id"),
			EventID:   eventID,
			URL:       recordString(rec, "url"),
			Snippet:   recordString(rec, "snippet"),
			Note:      recordString(rec, "note"),
			FetchTime: fetchTime,
		})
	}
	return records, nil
}

func profileFromRecord(rec *neo4j.Record) model.Profile {
	createdAt, _ := time.Parse(time.RFC3339, recordString(rec, "created_at"))
	return model.Profile{
		ID:           recordString(rec, "id"),
		Name:         recordString(rec, "name"),
		Summary:      recordString(rec, "summary"),
		HeroImageURL: recordString(rec, "hero_image_url"),
		CreatedAt:    createdAt,
	}
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func recordFloat(rec *neo4j.Record, key string) float64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	f, _ := v.(float64)
	return f
}

func recordStrings(rec *neo4j.Record, key string) []string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
