package coverletters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	letters map[string]CoverLetter
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{letters: make(map[string]CoverLetter)}
}

func (r *MemoryRepo) Create(ctx context.Context, l CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters[l.ID] = l
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.letters[id]
	if !ok || l.UserID != userID {
		return CoverLetter{}, ErrNotFound
	}
	return l, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []CoverLetter
	for _, l := range r.letters {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, l CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.letters[l.ID]
	if !ok || existing.UserID != l.UserID {
		return ErrNotFound
	}
	r.letters[l.ID] = l
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.letters[id]
	if !ok || l.UserID != userID {
		return ErrNotFound
	}
	delete(r.letters, id)
	return nil
}

func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CoverLetter, 0, len(r.letters))
	for _, l := range r.letters {
		out = append(out, l)
	}
	sortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) DeleteAny(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.letters[id]; !ok {
		return ErrNotFound
	}
	delete(r.letters, id)
	return nil
}

func sortNewestFirst(letters []CoverLetter) {
	sort.Slice(letters, func(i, j int) bool {
		return letters[i].CreatedAt.After(letters[j].CreatedAt)
	})
}

var _ Repo = (*MemoryRepo)(nil)
