package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used when no database is
// configured and in handler tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // id -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Resume)}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.ID] = res
	return nil
}

// GetByID returns a resume by id for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[id]
	if !ok || res.UserID != userID {
		return Resume{}, ErrNotFound
	}
	return res, nil
}

// ListByUser returns a user's resumes, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Resume
	for _, res := range r.data {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Update overwrites a stored resume owned by the same user.
func (r *MemoryRepo) Update(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[res.ID]
	if !ok || existing.UserID != res.UserID {
		return ErrNotFound
	}
	res.CreatedAt = existing.CreatedAt
	r.data[res.ID] = res
	return nil
}

// Delete removes a resume owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// ListRecent returns the most recent resumes across all users.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, 0, len(r.data))
	for _, res := range r.data {
		out = append(out, res)
	}
	sortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteAny removes a resume regardless of owner.
func (r *MemoryRepo) DeleteAny(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func sortNewestFirst(list []Resume) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

var _ Repo = (*MemoryRepo)(nil)
