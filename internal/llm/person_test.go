package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

func TestFetchPersonData_ParsesFencedJSON(t *testing.T) {
	p := NewPersonLookup(&mockLLM{response: "```json\n" + `{
		"name": "Ada Lovelace",
		"summary": "English mathematician and writer.",
		"events": [
			{"date": "1815-12-10", "event_text": "Born in London", "categories": ["birth"], "confidence": 0.95}
		]
	}` + "\n```"})

	data := p.FetchPersonData(context.Background(), "Ada Lovelace")

	assert.NotNil(t, data)
	assert.Equal(t, "Ada Lovelace", data.Name)
	assert.Len(t, data.Events, 1)
	assert.Equal(t, []string{"birth"}, data.Events[0].Categories)
}

func TestFetchPersonData_GenerationError(t *testing.T) {
	p := NewPersonLookup(&mockLLM{err: errors.New("rate limited")})

	assert.Nil(t, p.FetchPersonData(context.Background(), "Ada Lovelace"))
}

func TestFetchPersonData_UnparseableResponse(t *testing.T) {
	p := NewPersonLookup(&mockLLM{response: "I could not find anything about that person."})

	assert.Nil(t, p.FetchPersonData(context.Background(), "Ada Lovelace"))
}

func TestFetchPersonData_IncompleteData(t *testing.T) {
	p := NewPersonLookup(&mockLLM{response: `{"name": "Ada Lovelace", "summary": "", "events": []}`})

	assert.Nil(t, p.FetchPersonData(context.Background(), "Ada Lovelace"))
}

func TestGenerateBiography_BestEffort(t *testing.T) {
	p := NewPersonLookup(&mockLLM{err: errors.New("unavailable")})

	assert.Empty(t, p.GenerateBiography(context.Background(), []string{"1815: born"}, "Ada Lovelace"))
}
