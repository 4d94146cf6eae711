package interview

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. The full session state is stored as
// a JSONB snapshot; finished is broken out for indexing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session *Session) error {
	const query = `
INSERT INTO sessions (id, state, finished, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		session.ID,
		state,
		session.Finished,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

// Get returns a session by its ID.
func (r *PGRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	const query = `SELECT state FROM sessions WHERE id = $1`
	var state []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(state, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &session, nil
}

// Update replaces the stored state for an existing session.
func (r *PGRepo) Update(ctx context.Context, session *Session) error {
	const query = `
UPDATE sessions SET state = $2, finished = $3, updated_at = $4 WHERE id = $1`
	session.UpdatedAt = time.Now().UTC()
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query, session.ID, state, session.Finished, session.UpdatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
