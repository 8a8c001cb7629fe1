// Package core orchestrates candidate resolution: stored-identity lookup,
// multi-source fan-out, generative fallback and profile creation.
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/config"
	"github.com/openbiograph/biograph/internal/core/dedupe"
	"github.com/openbiograph/biograph/internal/core/filter"
	"github.com/openbiograph/biograph/internal/core/model"
	"github.com/openbiograph/biograph/internal/core/rank"
	"github.com/openbiograph/biograph/internal/core/timeline"
	"github.com/openbiograph/biograph/internal/llm"
	"github.com/openbiograph/biograph/internal/source"
	"github.com/openbiograph/biograph/internal/store"
)

var (
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrNotAPerson      = errors.New("entity is not a person")
	ErrPageNotFound    = errors.New("wikipedia page not found")
	ErrProfileNotFound = errors.New("profile not found")
)

const (
	msgDisambiguate = "Select the correct person from multiple verified sources."
	msgWebFallback  = "Found profiles from web search. Select the correct person."
	msgNotFound     = "No information found for this person. Please try searching for a notable public figure."
)

// PersonLookup is the generative single-answer fallback. Nil and empty
// mean "no data"; implementations never return errors.
type PersonLookup interface {
	FetchPersonData(ctx context.Context, name string) *model.PersonData
	GenerateBiography(ctx context.Context, events []string, name string) string
}

// WikiClient is the encyclopedia summary/full-text collaborator used when
// creating a profile from an article.
type WikiClient interface {
	Summary(ctx context.Context, title string) (*source.PageSummary, error)
	FullText(ctx context.Context, title string) (string, error)
	BirthDate(ctx context.Context, wikidataID string) string
	IsHuman(ctx context.Context, wikidataID string) bool
}

// Resolver turns a free-text name query into either stored profiles, a
// bounded disambiguation list, a newly created profile, or "not found".
type Resolver struct {
	Store     store.Store
	FanOut    *source.FanOut
	Filter    *filter.PersonFilter
	Dedupe    *dedupe.Deduplicator
	Ranker    *rank.Ranker
	Lookup    PersonLookup
	Embedder  llm.EmbedderClient
	Wiki      WikiClient
	Extractor *timeline.Extractor
}

func NewResolver(st store.Store, fanOut *source.FanOut, lookup PersonLookup, embedder llm.EmbedderClient, wiki WikiClient, h config.HeuristicsConfig) *Resolver {
	return &Resolver{
		Store:     st,
		FanOut:    fanOut,
		Filter:    filter.New(h.DisallowedTokens),
		Dedupe:    dedupe.New(),
		Ranker:    rank.New(h.ConfidenceWeight, h.SimilarityWeight, h.MaxCandidates),
		Lookup:    lookup,
		Embedder:  embedder,
		Wiki:      wiki,
		Extractor: timeline.New(h),
	}
}

// SearchAllSources runs one fan-out wave and the full candidate pipeline:
// person filter, cross-source dedupe, rank, truncate.
func (r *Resolver) SearchAllSources(ctx context.Context, query string) []model.Candidate {
	candidates := r.FanOut.SearchAll(ctx, query)
	candidates = r.Filter.Apply(candidates)
	candidates = r.Dedupe.Dedupe(candidates)
	return r.Ranker.Rank(candidates)
}

// Resolve is the tiered resolution policy. Only storage failures and an
// empty query surface as errors; every other seam degrades to the next
// tier.
func (r *Resolver) Resolve(ctx context.Context, query string) (*model.Resolution, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	// Tier 1: existing stored identities, exact-normalized match first.
	exact, err := r.Store.FindByExactNormalizedName(ctx, query)
	if err != nil {
		return nil, err
	}
	if exact != nil {
		return &model.Resolution{Kind: model.ResolutionExisting, Profiles: []model.Profile{*exact}}, nil
	}

	profiles, err := r.Store.FindByFuzzyNameOrSummary(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		return &model.Resolution{Kind: model.ResolutionExisting, Profiles: profiles}, nil
	}

	// Tier 2: multi-source candidate search.
	if candidates := r.SearchAllSources(ctx, query); len(candidates) > 0 {
		return &model.Resolution{
			Kind:       model.ResolutionCandidates,
			Candidates: candidates,
			Message:    msgDisambiguate,
		}, nil
	}

	// Tier 3: generative single-answer fallback.
	log.Printf("No candidates found, trying generative lookup for: %s", query)
	data := r.Lookup.FetchPersonData(ctx, query)
	if data == nil {
		// Tier 4: one idempotent fan-out retry before giving up.
		if candidates := r.SearchAllSources(ctx, query); len(candidates) > 0 {
			return &model.Resolution{
				Kind:       model.ResolutionCandidates,
				Candidates: candidates,
				Message:    msgWebFallback,
			}, nil
		}
		return &model.Resolution{Kind: model.ResolutionNotFound, Message: msgNotFound}, nil
	}

	profile, err := r.createFromPersonData(ctx, data)
	if err != nil {
		return nil, err
	}

	return &model.Resolution{
		Kind:     model.ResolutionCreated,
		Profiles: []model.Profile{*profile},
		Message:  fmt.Sprintf("Successfully created profile for %s with %d events.", data.Name, len(data.Events)),
	}, nil
}

// createFromPersonData persists a generative-lookup answer. A concurrent
// request may have created the same identity since tier 1; the
// exact-normalized re-check reuses that row rather than inserting a
// duplicate.
func (r *Resolver) createFromPersonData(ctx context.Context, data *model.PersonData) (*model.Profile, error) {
	existing, err := r.Store.FindByExactNormalizedName(ctx, data.Name)
	if err != nil {
		return nil, err
	}

	var profileID string
	if existing != nil {
		log.Printf("Profile already exists, skipping insert: %s", existing.ID)
		profileID = existing.ID
	} else {
		profileID, err = r.Store.InsertProfile(ctx, data.Name, data.Summary, data.HeroImageURL)
		if err != nil {
			return nil, err
		}
	}

	// Sequential inserts; one event's failure must not abort the rest.
	for _, ev := range data.Events {
		eventID, err := r.Store.InsertEvent(ctx, model.StoredEvent{
			ProfileID:     profileID,
			Date:          ev.Date,
			EventText:     ev.EventText,
			Categories:    ev.Categories,
			SourceURL:     ev.SourceURL,
			SourceSnippet: ev.SourceSnippet,
			Confidence:    ev.Confidence,
			Embedding:     r.embed(ctx, ev.EventText),
		})
		if err != nil {
			log.Printf("Error inserting event %q: %v", ev.EventText, err)
			continue
		}

		if ev.SourceURL != "" && ev.SourceSnippet != "" {
			if _, err := r.Store.InsertProvenance(ctx, eventID, ev.SourceURL, ev.SourceSnippet, "Auto-generated from AI research"); err != nil {
				log.Printf("Error inserting provenance for event %s: %v", eventID, err)
			}
		}
	}

	profile, err := r.Store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s vanished after insert", profileID)
	}
	return profile, nil
}

// Biography renders a prose biography for a stored profile from its
// event texts. The stored summary is the fallback whenever generation
// yields nothing.
func (r *Resolver) Biography(ctx context.Context, profileID string) (string, error) {
	profile, err := r.Store.GetProfile(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", ErrProfileNotFound
	}

	events, err := r.Store.ListEvents(ctx, profileID)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(events))
	for _, ev := range events {
		texts = append(texts, fmt.Sprintf("%s: %s", ev.Date, ev.EventText))
	}

	if len(texts) > 0 {
		if bio := r.Lookup.GenerateBiography(ctx, texts, profile.Name); bio != "" {
			return bio, nil
		}
	}
	return profile.Summary, nil
}

func (r *Resolver) embed(ctx context.Context, text string) []float32 {
	if r.Embedder == nil {
		return nil
	}
	vec, err := r.Embedder.Embed(ctx, text)
	if err != nil {
		return nil
	}
	return vec
}
