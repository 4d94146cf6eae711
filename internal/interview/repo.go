package interview

import "context"

// Repo is the session registry: a keyed store of session state snapshots.
// Durability is the registry's concern, not the orchestrator's.
type Repo interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, session *Session) error
}
