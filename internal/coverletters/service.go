package coverletters

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns cover letter lifecycle rules: id assignment, title derivation
// and timestamps. Storage details live behind Repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Input is the write shape accepted on create and update.
type Input struct {
	CompanyName string
	JobTitle    string
	Content     string
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (CoverLetter, error) {
	if strings.TrimSpace(userID) == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	now := time.Now().UTC()
	l := CoverLetter{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       deriveTitle(in),
		CompanyName: in.CompanyName,
		JobTitle:    in.JobTitle,
		Content:     in.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return CoverLetter{}, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (CoverLetter, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]CoverLetter, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id string, in Input) (CoverLetter, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	existing, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return CoverLetter{}, err
	}
	l := CoverLetter{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Title:       deriveTitle(in),
		CompanyName: in.CompanyName,
		JobTitle:    in.JobTitle,
		Content:     in.Content,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Update(ctx, l); err != nil {
		return CoverLetter{}, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}

// deriveTitle builds "{company} - {job title}", tolerating either side missing.
func deriveTitle(in Input) string {
	company := strings.TrimSpace(in.CompanyName)
	job := strings.TrimSpace(in.JobTitle)
	switch {
	case company != "" && job != "":
		return company + " - " + job
	case company != "":
		return company
	case job != "":
		return job
	default:
		return "Untitled"
	}
}
