package model

import "time"

// Profile is a persisted person identity.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Summary      string    `json:"summary"`
	HeroImageURL string    `json:"hero_image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredEvent is a timeline event as persisted against a profile.
type StoredEvent struct {
	ID            string    `json:"id,omitempty"`
	ProfileID     string    `json:"profile_id"`
	Date          string    `json:"date"`
	EventText     string    `json:"event_text"`
	Categories    []string  `json:"categories"`
	SourceURL     string    `json:"source_url,omitempty"`
	SourceSnippet string    `json:"source_snippet,omitempty"`
	Confidence    float64   `json:"confidence"`
	Embedding     []float32 `json:"-"`
}

// Provenance records where a stored event's text was observed.
type Provenance struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	URL       string    `json:"url"`
	Snippet   string    `json:"snippet"`
	Note      string    `json:"note,omitempty"`
	FetchTime time.Time `json:"fetch_time"`
}

// ResolutionKind is the terminal state of one resolution request.
type ResolutionKind string

const (
	ResolutionExisting   ResolutionKind = "existing"
	ResolutionCandidates ResolutionKind = "candidates"
	ResolutionCreated    ResolutionKind = "created"
	ResolutionNotFound   ResolutionKind = "not_found"
)

// Resolution is what a caller receives for a query: stored profiles, a
// bounded disambiguation list, or a not-found message.
type Resolution struct {
	Kind       ResolutionKind `json:"kind"`
	Profiles   []Profile      `json:"profiles"`
	Candidates []Candidate    `json:"candidates,omitempty"`
	Message    string         `json:"message,omitempty"`
}
