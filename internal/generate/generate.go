package generate

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for content generation.
type Client interface {
	Generate(ctx context.Context, kind string, gc Context) (string, error)
}

// Context carries the free-form fields a generation draws on. All fields are
// optional; prompts substitute defaults for missing values.
type Context struct {
	JobTitle   string `json:"jobTitle"`
	Company    string `json:"company"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Text       string `json:"text"`
	TargetJob  string `json:"targetJob"`
}

// Generation kinds.
const (
	KindSummary         = "summary"
	KindExperience      = "experience"
	KindSkills          = "skills"
	KindImprove         = "improve"
	KindCoverLetter     = "cover_letter"
	KindLinkedInHead    = "linkedin_headline"
	KindLinkedInSummary = "linkedin_summary"
)

var (
	// ErrNotConfigured means no API key is set.
	ErrNotConfigured = errors.New("generation client not configured")
	// ErrInvalidCredential means the upstream rejected the API key.
	ErrInvalidCredential = errors.New("invalid upstream credential")
	// ErrRateLimited means the upstream throttled the request.
	ErrRateLimited = errors.New("upstream rate limit reached")
	// ErrQuotaExhausted means the upstream account has no credit left.
	ErrQuotaExhausted = errors.New("upstream quota exhausted")
	// ErrUnknownKind means the requested generation kind is not recognized.
	ErrUnknownKind = errors.New("unknown generation kind")
)
