package interview

import "errors"

var (
	// ErrNotFound indicates an unknown session id.
	ErrNotFound = errors.New("session not found")
	// ErrFinished indicates input sent to a session that already has a final report.
	ErrFinished = errors.New("interview already finished")
	// ErrNoPending indicates an answer submitted while no question awaits one.
	ErrNoPending = errors.New("no question is awaiting an answer")
	// ErrOracle marks a failed oracle call; fatal to the current step.
	ErrOracle = errors.New("oracle failure")
)
