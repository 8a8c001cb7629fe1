package model

// TimelineEvent is a single dated, categorized fact extracted from
// biographical prose. Date is day-granular YYYY-MM-DD; when only a year is
// known the extractor synthesizes January 1st.
type TimelineEvent struct {
	Date          string   `json:"date"`
	EventText     string   `json:"event_text"`
	Categories    []string `json:"categories"`
	SourceSnippet string   `json:"source_snippet"`
	Confidence    float64  `json:"confidence"`
}

// RawEvent is an event as reported by the generative lookup, before it is
// persisted.
type RawEvent struct {
	Date          string   `json:"date"`
	EventText     string   `json:"event_text"`
	Categories    []string `json:"categories"`
	SourceURL     string   `json:"source_url,omitempty"`
	SourceSnippet string   `json:"source_snippet,omitempty"`
	Confidence    float64  `json:"confidence"`
}

// PersonData is the structured answer of the generative single-answer
// lookup.
type PersonData struct {
	Name         string     `json:"name"`
	Summary      string     `json:"summary"`
	Events       []RawEvent `json:"events"`
	HeroImageURL string     `json:"hero_image_url,omitempty"`
}
