package transcripts

import "context"

// Turn is one logged question/answer/analysis triple.
type Turn struct {
	TurnID   int    `json:"turn_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Analysis string `json:"analysis"`
}

// Transcript is the persisted record of one interview.
type Transcript struct {
	ParticipantName string `json:"participant_name"`
	Turns           []Turn `json:"turns"`
	FinalFeedback   string `json:"final_feedback"`
}

// Sink persists interview transcripts keyed by session. Writes are
// best-effort from the interview's point of view: a sink failure must never
// fail the step that triggered it.
type Sink interface {
	Save(ctx context.Context, sessionID string, transcript Transcript) (ref string, err error)
}
