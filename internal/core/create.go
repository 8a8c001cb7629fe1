package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/core/model"
	"github.com/openbiograph/biograph/internal/source"
)

// CreateFromSource builds a stored profile for a candidate the caller
// picked from a disambiguation list. For encyclopedia candidates the
// article summary and full text drive the timeline; for anything else
// only a minimal profile is created. Returns the profile and its stored
// events, newest state last.
func (r *Resolver) CreateFromSource(ctx context.Context, title string, sourceType model.SourceType) (*model.Profile, []model.StoredEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil, ErrEmptyQuery
	}

	var sum *source.PageSummary
	if sourceType == model.SourceWikipedia {
		var err error
		sum, err = r.Wiki.Summary(ctx, title)
		if err != nil {
			return nil, nil, err
		}
		if sum == nil {
			return nil, nil, ErrPageNotFound
		}
		// Wikidata knows whether this article is about a human.
		if sum.WikidataID != "" && !r.Wiki.IsHuman(ctx, sum.WikidataID) {
			return nil, nil, ErrNotAPerson
		}
	} else {
		sum = &source.PageSummary{
			Extract: fmt.Sprintf("Profile information for %s from %s", title, sourceType),
		}
	}

	existing, err := r.Store.FindByExactNormalizedName(ctx, title)
	if err != nil {
		return nil, nil, err
	}

	var profileID string
	if existing != nil {
		log.Printf("Profile already exists, reusing: %s", existing.ID)
		profileID = existing.ID
	} else {
		profileID, err = r.Store.InsertProfile(ctx, title, sum.Extract, sum.ImageURL)
		if err != nil {
			return nil, nil, err
		}

		if sourceType == model.SourceWikipedia {
			r.insertWikipediaTimeline(ctx, profileID, title, sum)
		}
	}

	profile, err := r.Store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, fmt.Errorf("profile %s vanished after insert", profileID)
	}

	events, err := r.Store.ListEvents(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}

	return profile, events, nil
}

// insertWikipediaTimeline extracts events from the full article text and
// persists them one at a time, continuing past individual failures.
func (r *Resolver) insertWikipediaTimeline(ctx context.Context, profileID, title string, sum *source.PageSummary) {
	if sum.WikidataID != "" {
		if dob := r.Wiki.BirthDate(ctx, sum.WikidataID); dob != "" {
			_, err := r.Store.InsertEvent(ctx, model.StoredEvent{
				ProfileID:     profileID,
				Date:          dob,
				EventText:     fmt.Sprintf("Birth of %s", title),
				Categories:    []string{"birth"},
				SourceURL:     sum.URL,
				SourceSnippet: "Date of birth per Wikidata",
				Confidence:    0.9,
			})
			if err != nil {
				log.Printf("Error inserting birth event for %s: %v", title, err)
			}
		}
	}

	fullText, err := r.Wiki.FullText(ctx, title)
	if err != nil {
		log.Printf("Error fetching full text for %s: %v", title, err)
		return
	}
	if fullText == "" {
		return
	}

	for _, ev := range r.Extractor.Extract(fullText, title) {
		eventID, err := r.Store.InsertEvent(ctx, model.StoredEvent{
			ProfileID:     profileID,
			Date:          ev.Date,
			EventText:     ev.EventText,
			Categories:    ev.Categories,
			SourceURL:     sum.URL,
			SourceSnippet: ev.SourceSnippet,
			Confidence:    ev.Confidence,
			Embedding:     r.embed(ctx, ev.EventText),
		})
		if err != nil {
			log.Printf("Error inserting timeline event %q: %v", ev.EventText, err)
			continue
		}

		note := fmt.Sprintf("Extracted from Wikipedia full text for %s", title)
		if _, err := r.Store.InsertProvenance(ctx, eventID, sum.URL, ev.SourceSnippet, note); err != nil {
			log.Printf("Error inserting provenance for event %s: %v", eventID, err)
		}
	}
}
