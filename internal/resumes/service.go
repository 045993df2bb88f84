package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"prezumi-backend/internal/templates"
)

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
}

// Input carries the editable fields of a resume.
type Input struct {
	Template     string
	PersonalInfo PersonalInfo
	Summary      string
	Experience   []Experience
	Education    []Education
	Skills       string
}

// Create stores a new resume for the user and returns it.
func (s *Service) Create(ctx context.Context, userID string, in Input) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	res := Resume{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        deriveTitle(in.PersonalInfo),
		Template:     normalizeTemplate(in.Template),
		PersonalInfo: in.PersonalInfo,
		Summary:      in.Summary,
		Experience:   withEntryIDs(in.Experience),
		Education:    withEducationIDs(in.Education),
		Skills:       in.Skills,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Update overwrites an existing resume. Last write wins; there is no
// concurrency check by design.
func (s *Service) Update(ctx context.Context, userID, id string, in Input) (Resume, error) {
	if userID == "" || id == "" {
		return Resume{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Resume{}, err
	}

	res := Resume{
		ID:           existing.ID,
		UserID:       userID,
		Title:        deriveTitle(in.PersonalInfo),
		Template:     normalizeTemplate(in.Template),
		PersonalInfo: in.PersonalInfo,
		Summary:      in.Summary,
		Experience:   withEntryIDs(in.Experience),
		Education:    withEducationIDs(in.Education),
		Skills:       in.Skills,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Update(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Get returns a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	if userID == "" || id == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes a resume owned by the user. Irreversible.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}

func deriveTitle(p PersonalInfo) string {
	title := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if title == "" {
		return "Untitled"
	}
	return title + " Resume"
}

func normalizeTemplate(id string) string {
	if strings.TrimSpace(id) == "" {
		return templates.DefaultID
	}
	return id
}

// withEntryIDs assigns a UUID to entries missing an id and de-duplicates ids
// within the list, so entries remain usable as stable list keys.
func withEntryIDs(list []Experience) []Experience {
	seen := make(map[string]struct{}, len(list))
	out := make([]Experience, len(list))
	for i, e := range list {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, dup := seen[e.ID]; dup {
			e.ID = uuid.NewString()
		}
		seen[e.ID] = struct{}{}
		out[i] = e
	}
	return out
}

func withEducationIDs(list []Education) []Education {
	seen := make(map[string]struct{}, len(list))
	out := make([]Education, len(list))
	for i, e := range list {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, dup := seen[e.ID]; dup {
			e.ID = uuid.NewString()
		}
		seen[e.ID] = struct{}{}
		out[i] = e
	}
	return out
}
