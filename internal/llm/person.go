package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openbiograph/biograph/internal/core/common"
	"github.com/openbiograph/biograph/internal/core/model"
)

const personPrompt = `Research and provide comprehensive biographical information about "%s".

Please return the data in the following JSON format:
{
  "name": "Full Name",
  "summary": "A comprehensive 200-word biography covering key achievements, career progression, and significant milestones",
  "events": [
    {
      "date": "YYYY-MM-DD",
      "event_text": "Description of the event",
      "categories": ["birth", "education", "career", "award", "achievement", "role"],
      "source_url": "URL if available",
      "source_snippet": "Relevant text snippet from source",
      "confidence": 0.95
    }
  ],
  "hero_image_url": "https://example.com/image.jpg - Only include if you can provide a real, publicly accessible image URL"
}

Focus on:
- Birth date and place
- Education milestones
- Career progression and major roles
- Awards and achievements
- Significant life events
- Current position/status

Ensure all dates are in YYYY-MM-DD format. Only include verifiable information with high confidence scores (0.8+).
Categories should be one of: birth, education, career, award, achievement, role, personal, other.
For hero_image_url, only include real, publicly accessible URLs. If no suitable image URL is available, omit this field or set it to null.

If the person is not a notable public figure or insufficient information is available, return null.`

// PersonLookup is the generative single-answer fallback: one question in,
// structured person data out. It never returns an error; any failure is
// "no data".
type PersonLookup struct {
	LLM LLMClient
}

func NewPersonLookup(client LLMClient) *PersonLookup {
	return &PersonLookup{LLM: client}
}

func (p *PersonLookup) FetchPersonData(ctx context.Context, name string) *model.PersonData {
	if p.LLM == nil {
		return nil
	}

	response, err := p.LLM.Generate(ctx, fmt.Sprintf(personPrompt, name))
	if err != nil {
		log.Printf("Person lookup failed for %q: %v", name, err)
		return nil
	}

	data, err := common.ParseJSON[model.PersonData](response)
	if err != nil {
		log.Printf("Person lookup returned unparseable data for %q: %v", name, err)
		return nil
	}

	if data.Name == "" || data.Summary == "" || len(data.Events) == 0 {
		log.Printf("Person lookup returned incomplete data for %q", name)
		return nil
	}

	return &data
}

// GenerateBiography produces a short prose biography from verified event
// lines. Best effort: an empty string on any failure.
func (p *PersonLookup) GenerateBiography(ctx context.Context, events []string, name string) string {
	if p.LLM == nil {
		return ""
	}

	prompt := fmt.Sprintf(`Create a concise, engaging biography for %s based on these verified events:

%s

Focus on key achievements, career progression, and significant milestones. Keep it factual and well-structured. Limit to 200 words.`,
		name, strings.Join(events, "\n"))

	response, err := p.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Biography generation failed for %q: %v", name, err)
		return ""
	}
	return response
}
