package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type SourcesConfig struct {
	GoogleSearchAPIKey   string `toml:"google_search_api_key"`
	GoogleSearchEngineID string `toml:"google_search_engine_id"`
	YouTubeAPIKey        string `toml:"youtube_api_key"`
}

// HeuristicsConfig holds the tunable tables behind the person filter, the
// ranker and the timeline extractor. The zero value is unusable; call
// Default() or Load() to get the compiled-in tables.
type HeuristicsConfig struct {
	// Tokens that mark a candidate as a non-person when found in its name
	// or snippet (lower-cased substring match).
	DisallowedTokens []string `toml:"disallowed_tokens"`

	// Keyword sets for timeline event categorization, one per category.
	EducationKeywords []string `toml:"education_keywords"`
	CareerKeywords    []string `toml:"career_keywords"`
	AwardKeywords     []string `toml:"award_keywords"`
	PersonalKeywords  []string `toml:"personal_keywords"`

	ConfidenceWeight float64 `toml:"confidence_weight"`
	SimilarityWeight float64 `toml:"similarity_weight"`
	MaxCandidates    int     `toml:"max_candidates"`
	MaxEvents        int     `toml:"max_events"`
	EventConfidence  float64 `toml:"event_confidence"`
	SnippetLength    int     `toml:"snippet_length"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Memgraph   MemgraphConfig   `toml:"memgraph"`
	Sources    SourcesConfig    `toml:"sources"`
	Heuristics HeuristicsConfig `toml:"heuristics"`
}

// DefaultHeuristics returns the observed production tables. The weight
// split and the caps are policy, not derived values.
func DefaultHeuristics() HeuristicsConfig {
	return HeuristicsConfig{
		DisallowedTokens: []string{
			"tv", "channel", "show", "news", "media", "network",
			"company", "organization", "franchise", "universe",
			"alert", "common media", "shared universe",
		},
		EducationKeywords: []string{"graduated", "degree", "university", "college", "studied"},
		CareerKeywords:    []string{"joined", "founded", "started", "became", "appointed", "ceo", "director", "president"},
		AwardKeywords:     []string{"award", "honor", "recognition", "prize", "medal"},
		PersonalKeywords:  []string{"married", "birth", "death", "retired"},
		ConfidenceWeight:  0.6,
		SimilarityWeight:  0.4,
		MaxCandidates:     4,
		MaxEvents:         10,
		EventConfidence:   0.8,
		SnippetLength:     100,
	}
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash-exp",
		},
		Memgraph: MemgraphConfig{
			URI: "bolt://localhost:7687",
		},
		Heuristics: DefaultHeuristics(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.Heuristics.fillDefaults()

	return cfg, nil
}

// fillDefaults backfills any heuristic table the file left empty, so a
// partial config never disables a whole filter.
func (h *HeuristicsConfig) fillDefaults() {
	def := DefaultHeuristics()
	if len(h.DisallowedTokens) == 0 {
		h.DisallowedTokens = def.DisallowedTokens
	}
	if len(h.EducationKeywords) == 0 {
		h.EducationKeywords = def.EducationKeywords
	}
	if len(h.CareerKeywords) == 0 {
		h.CareerKeywords = def.CareerKeywords
	}
	if len(h.AwardKeywords) == 0 {
		h.AwardKeywords = def.AwardKeywords
	}
	if len(h.PersonalKeywords) == 0 {
		h.PersonalKeywords = def.PersonalKeywords
	}
	if h.ConfidenceWeight == 0 && h.SimilarityWeight == 0 {
		h.ConfidenceWeight = def.ConfidenceWeight
		h.SimilarityWeight = def.SimilarityWeight
	}
	if h.MaxCandidates == 0 {
		h.MaxCandidates = def.MaxCandidates
	}
	if h.MaxEvents == 0 {
		h.MaxEvents = def.MaxEvents
	}
	if h.EventConfidence == 0 {
		h.EventConfidence = def.EventConfidence
	}
	if h.SnippetLength == 0 {
		h.SnippetLength = def.SnippetLength
	}
}
