package model

// SourceType identifies which upstream source produced a candidate.
type SourceType string

const (
	SourceWikipedia     SourceType = "wikipedia"
	SourceFacebook      SourceType = "facebook"
	SourceInstagram     SourceType = "instagram"
	SourceLinkedIn      SourceType = "linkedin"
	SourceYouTube       SourceType = "youtube"
	SourceGoogle        SourceType = "google"
	SourceGitHub        SourceType = "github"
	SourceGeeksForGeeks SourceType = "geeksforgeeks"
	SourceTwitter       SourceType = "twitter"
	SourceMedium        SourceType = "medium"
	SourceDevTo         SourceType = "devto"
	SourceStackOverflow SourceType = "stackoverflow"
	SourceQuora         SourceType = "quora"
	SourceBehance       SourceType = "behance"
	SourceDribbble      SourceType = "dribbble"
	SourceAboutMe       SourceType = "aboutme"
	SourceEducation     SourceType = "education"
)

// Candidate is a provisional identity hypothesis returned by one source
// adapter for a query. SimilarityScore is a positional decay within the
// adapter's own result ordering, not a semantic similarity.
type Candidate struct {
	Name            string     `json:"name"`
	Descriptor      string     `json:"descriptor"`
	SourceURL       string     `json:"source_url"`
	Snippet         string     `json:"snippet"`
	SimilarityScore float64    `json:"similarity_score"`
	SourceType      SourceType `json:"source_type"`
	ProfileImage    string     `json:"profile_image,omitempty"`
	Verified        bool       `json:"verified"`
	Confidence      float64    `json:"confidence"`
}
