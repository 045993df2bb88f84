package resumes

import "context"

// Repo defines persistence operations for resumes. Every user-facing read is
// scoped by the owning user id; ListRecent serves the admin view only.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, userID, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, userID, id string) error

	ListRecent(ctx context.Context, limit int) ([]Resume, error)
	DeleteAny(ctx context.Context, id string) error
}
