package interview

import (
	"context"
	"errors"
	"strings"

	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/transcripts"
)

// Service contains the business logic around the interview graph: profile
// validation, session registry access, and per-session step serialization.
type Service struct {
	Repo  Repo
	Graph *Graph
	locks *keyedLocks
}

// NewService constructs a Service.
func NewService(repo Repo, graph *Graph) *Service {
	return &Service{
		Repo:  repo,
		Graph: graph,
		locks: newKeyedLocks(),
	}
}

// Start creates a new session, runs the graph from its entry, and returns the
// session together with the first generated question.
func (s *Service) Start(ctx context.Context, profile Profile) (*Session, StepResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, StepResult{}, err
	}

	session := NewSession(profile)
	result, err := s.Graph.Step(ctx, session, "")
	if err != nil {
		return nil, StepResult{}, err
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, StepResult{}, err
	}
	metrics.IncInterviewStarted()
	return session, result, nil
}

// SubmitAnswer advances the session by one step. Protocol violations (unknown
// session, finished session, no pending question) are rejected before any
// graph state is touched.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, answer string) (StepResult, error) {
	if strings.TrimSpace(answer) == "" {
		return StepResult{}, errors.New("answer is required")
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		return StepResult{}, err
	}
	if session.Finished {
		return StepResult{}, ErrFinished
	}
	if session.Pending == nil || session.Pending.Answered() {
		return StepResult{}, ErrNoPending
	}

	result, err := s.Graph.Step(ctx, session, answer)
	if err != nil {
		metrics.IncStepFailed()
		return StepResult{}, err
	}

	if err := s.Repo.Update(ctx, session); err != nil {
		return StepResult{}, err
	}
	if result.Finished {
		metrics.IncInterviewFinished()
	}
	return result, nil
}

// Transcript returns the transcript of a session in its persisted shape,
// rendered from the current registry state.
func (s *Service) Transcript(ctx context.Context, sessionID string) (transcripts.Transcript, error) {
	session, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		return transcripts.Transcript{}, err
	}
	return BuildTranscript(session), nil
}

func validateProfile(profile Profile) error {
	switch {
	case strings.TrimSpace(profile.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(profile.Position) == "":
		return errors.New("position is required")
	case strings.TrimSpace(profile.Grade) == "":
		return errors.New("grade is required")
	case strings.TrimSpace(profile.Experience) == "":
		return errors.New("experience is required")
	}
	return nil
}
