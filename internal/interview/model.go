package interview

import (
	"time"

	"github.com/google/uuid"

	"interview-backend/internal/llm"
)

// Profile describes the candidate. Immutable for the life of a session.
type Profile struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Grade      string `json:"grade"`
	Experience string `json:"experience"`
}

// Turn is the immutable record of one completed question/answer/analysis
// cycle. Turns are created only by the evaluator stage and never mutated.
type Turn struct {
	ID       int    `json:"turn_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Analysis string `json:"analysis"`
}

// PendingQuestion is the single in-flight question. Its answer field starts
// empty and is filled exactly once by answer ingestion.
type PendingQuestion struct {
	TurnID   int    `json:"turn_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answered reports whether the pending question already holds an answer.
func (p *PendingQuestion) Answered() bool {
	return p != nil && p.Answer != ""
}

// Report is the final hiring verdict, produced once at termination.
type Report struct {
	Verdict         string   `json:"verdict"`
	Recommendation  string   `json:"recommendation"`
	ConfidenceScore int      `json:"confidence_score"`
	HardSkills      string   `json:"hard_skills"`
	SoftSkills      string   `json:"soft_skills"`
	Roadmap         []string `json:"roadmap"`
}

// Session is the aggregate carried across the whole interview. It is owned by
// the orchestrator and mutated only through Start and SubmitAnswer.
//
// Invariants: TurnCount == len(Turns) + 1 if a pending question exists that is
// unanswered or not yet evaluated, else len(Turns); Report != nil iff Finished;
// Turns is append-only.
type Session struct {
	ID         string           `json:"id"`
	Profile    Profile          `json:"profile"`
	Turns      []Turn           `json:"turns"`
	Pending    *PendingQuestion `json:"pending,omitempty"`
	TurnCount  int              `json:"turn_count"`
	Finished   bool             `json:"finished"`
	Difficulty llm.Difficulty   `json:"difficulty"`
	OffTopic   bool             `json:"off_topic"`
	Confidence llm.Confidence   `json:"confidence,omitempty"`
	Report     *Report          `json:"report,omitempty"`
	LogRef     string           `json:"log_ref,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewSession creates a fresh session for the given profile.
func NewSession(profile Profile) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.NewString(),
		Profile:    profile,
		Turns:      []Turn{},
		Difficulty: llm.DifficultySame,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy so repositories can hand out snapshots without
// sharing mutable state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Turns = append([]Turn(nil), s.Turns...)
	if s.Pending != nil {
		pending := *s.Pending
		out.Pending = &pending
	}
	if s.Report != nil {
		report := *s.Report
		report.Roadmap = append([]string(nil), s.Report.Roadmap...)
		out.Report = &report
	}
	return &out
}
