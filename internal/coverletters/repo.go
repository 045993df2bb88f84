package coverletters

import "context"

// Repo defines persistence operations for cover letters. User-facing reads
// are scoped by owner; ListRecent serves the admin view only.
type Repo interface {
	Create(ctx context.Context, l CoverLetter) error
	GetByID(ctx context.Context, userID, id string) (CoverLetter, error)
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	Update(ctx context.Context, l CoverLetter) error
	Delete(ctx context.Context, userID, id string) error

	ListRecent(ctx context.Context, limit int) ([]CoverLetter, error)
	DeleteAny(ctx context.Context, id string) error
}
