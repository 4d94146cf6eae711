package interview

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryRepo stores sessions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]*Session),
	}
}

// Create stores a new session.
func (r *MemoryRepo) Create(ctx context.Context, session *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[session.ID]; ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.byID[session.ID] = session.Clone()
	return nil
}

// Get returns a snapshot of the session by its ID.
func (r *MemoryRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.byID[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

// Update replaces the stored state for an existing session.
func (r *MemoryRepo) Update(ctx context.Context, session *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[session.ID]; !ok {
		return ErrNotFound
	}
	snapshot := session.Clone()
	snapshot.UpdatedAt = time.Now().UTC()
	r.byID[session.ID] = snapshot
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
