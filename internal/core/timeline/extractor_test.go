package timeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbiograph/biograph/internal/config"
)

func newDefaultExtractor() *Extractor {
	return New(config.DefaultHeuristics())
}

func TestExtract_EducationEvent(t *testing.T) {
	e := newDefaultExtractor()

	events := e.Extract("In 1998 she graduated from State University.", "Jane Doe")

	assert.Len(t, events, 1)
	assert.Equal(t, "1998-01-01", events[0].Date)
	assert.Equal(t, []string{"education"}, events[0].Categories)
	assert.Equal(t, 0.8, events[0].Confidence)
	assert.Equal(t, "In 1998 she graduated from State University.", events[0].EventText)
}

func TestExtract_NoYearNoEvent(t *testing.T) {
	e := newDefaultExtractor()

	assert.Empty(t, e.Extract("She studied mathematics.", "Jane Doe"))
}

func TestExtract_YearWithoutKeywordsNoEvent(t *testing.T) {
	e := newDefaultExtractor()

	assert.Empty(t, e.Extract("The year 2001 passed uneventfully.", "Jane Doe"))
}

func TestExtract_MultipleCategoriesPerLine(t *testing.T) {
	e := newDefaultExtractor()

	// "graduated" plus "joined" should yield one event per category.
	events := e.Extract("In 2005 he graduated from MIT and joined Google.", "John Doe")

	assert.Len(t, events, 2)
	assert.Equal(t, []string{"education"}, events[0].Categories)
	assert.Equal(t, []string{"career"}, events[1].Categories)
	for _, ev := range events {
		assert.Equal(t, "2005-01-01", ev.Date)
	}
}

func TestExtract_AwardAndPersonal(t *testing.T) {
	e := newDefaultExtractor()

	text := strings.Join([]string{
		"She received the Turing Award in 2006.",
		"She retired in 2010.",
	}, "\n")
	events := e.Extract(text, "Frances Allen")

	assert.Len(t, events, 2)
	assert.Equal(t, []string{"award"}, events[0].Categories)
	assert.Equal(t, []string{"personal"}, events[1].Categories)
}

func TestExtract_CappedAtTen(t *testing.T) {
	e := newDefaultExtractor()

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf("In %d she graduated from university number %d.", 1980+i, i))
	}
	events := e.Extract(strings.Join(lines, "\n"), "Jane Doe")

	assert.Len(t, events, 10)
	// Document order preserved.
	assert.Equal(t, "1980-01-01", events[0].Date)
	assert.Equal(t, "1989-01-01", events[9].Date)
}

func TestExtract_SnippetTruncated(t *testing.T) {
	e := newDefaultExtractor()

	long := "In 2001 she graduated " + strings.Repeat("with honors ", 20)
	events := e.Extract(long, "Jane Doe")

	assert.Len(t, events, 1)
	assert.Len(t, events[0].SourceSnippet, 100)
}

func TestExtract_CategoriesNeverEmpty(t *testing.T) {
	e := newDefaultExtractor()

	text := strings.Join([]string{
		"In 1998 she graduated from State University.",
		"In 2003 he became CEO of the startup.",
		"He won a medal in 2008.",
	}, "\n")

	for _, ev := range e.Extract(text, "someone") {
		assert.NotEmpty(t, ev.Categories)
	}
}
