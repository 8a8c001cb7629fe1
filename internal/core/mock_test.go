package core

import (
	"context"
	"fmt"

	"github.com/openbiograph/biograph/internal/core/model"
	"github.com/openbiograph/biograph/internal/source"
	"github.com/openbiograph/biograph/internal/store"
)

// mockStore is an in-memory Store that records inserts and can be told
// to fail specific operations.
type mockStore struct {
	fuzzy    []model.Profile
	profiles map[string]model.Profile

	insertedProfiles []string
	insertedEvents   []model.StoredEvent
	insertedProv     []model.Provenance

	failEventTexts map[string]bool
	lookupErr      error

	nextID int
}

func newMockStore() *mockStore {
	return &mockStore{
		profiles:       make(map[string]model.Profile),
		failEventTexts: make(map[string]bool),
	}
}

func (m *mockStore) addProfile(name, summary string) model.Profile {
	p := model.Profile{ID: m.genID("profile"), Name: name, Summary: summary}
	m.profiles[p.ID] = p
	return p
}

func (m *mockStore) genID(kind string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", kind, m.nextID)
}

func (m *mockStore) FindByFuzzyNameOrSummary(ctx context.Context, query string) ([]model.Profile, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.fuzzy, nil
}

func (m *mockStore) FindByExactNormalizedName(ctx context.Context, name string) (*model.Profile, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	key := store.NormalizeKey(name)
	for _, p := range m.profiles {
		if store.NormalizeKey(p.Name) == key {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockStore) InsertProfile(ctx context.Context, name, summary, heroImageURL string) (string, error) {
	p := model.Profile{ID: m.genID("profile"), Name: name, Summary: summary, HeroImageURL: heroImageURL}
	m.profiles[p.ID] = p
	m.insertedProfiles = append(m.insertedProfiles, p.ID)
	return p.ID, nil
}

func (m *mockStore) InsertEvent(ctx context.Context, ev model.StoredEvent) (string, error) {
	if m.failEventTexts[ev.EventText] {
		return "", fmt.Errorf("insert failed for %q", ev.EventText)
	}
	ev.ID = m.genID("event")
	m.insertedEvents = append(m.insertedEvents, ev)
	return ev.ID, nil
}

func (m *mockStore) InsertProvenance(ctx context.Context, eventID, url, snippet, note string) (string, error) {
	id := m.genID("prov")
	m.insertedProv = append(m.insertedProv, model.Provenance{
		ID:      id,
		EventID: eventID,
		URL:     url,
		Snippet: snippet,
		Note:    note,
	})
	return id, nil
}

func (m *mockStore) ListProvenance(ctx context.Context, eventID string) ([]model.Provenance, error) {
	var out []model.Provenance
	for _, p := range m.insertedProv {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockStore) ListEvents(ctx context.Context, profileID string) ([]model.StoredEvent, error) {
	var out []model.StoredEvent
	for _, ev := range m.insertedEvents {
		if ev.ProfileID == profileID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockStore) BuildIndices(ctx context.Context) error { return nil }
func (m *mockStore) Close(ctx context.Context) error        { return nil }

// stubSource returns queued result sets, one per Search call; the last
// set repeats once the queue is drained.
type stubSource struct {
	name  string
	queue [][]model.Candidate
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(ctx context.Context, query string) []model.Candidate {
	s.calls++
	if len(s.queue) == 0 {
		return nil
	}
	if s.calls <= len(s.queue) {
		return s.queue[s.calls-1]
	}
	return s.queue[len(s.queue)-1]
}

type stubLookup struct {
	data  *model.PersonData
	bio   string
	calls int

	bioEvents []string
}

func (s *stubLookup) FetchPersonData(ctx context.Context, name string) *model.PersonData {
	s.calls++
	return s.data
}

func (s *stubLookup) GenerateBiography(ctx context.Context, events []string, name string) string {
	s.bioEvents = events
	return s.bio
}

type stubWiki struct {
	summary  *source.PageSummary
	fullText string
	birth    string
	human    bool
}

func (s *stubWiki) Summary(ctx context.Context, title string) (*source.PageSummary, error) {
	return s.summary, nil
}

func (s *stubWiki) FullText(ctx context.Context, title string) (string, error) {
	return s.fullText, nil
}

func (s *stubWiki) BirthDate(ctx context.Context, wikidataID string) string { return s.birth }
func (s *stubWiki) IsHuman(ctx context.Context, wikidataID string) bool     { return s.human }
