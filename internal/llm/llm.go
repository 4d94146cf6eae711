package llm

import (
	"context"
	"errors"
)

// Client abstracts the natural-language judgment oracle. Each method maps to
// one decision stage of the interview graph; implementations decode the raw
// model output into the typed results exactly once, so callers never re-parse
// free-text signals.
type Client interface {
	// GenerateQuestion returns the next interview question as plain text.
	GenerateQuestion(ctx context.Context, in QuestionInput) (string, error)
	// ClassifyStopIntent reports whether the candidate explicitly asked to end
	// the interview, judging only the latest question/answer pair.
	ClassifyStopIntent(ctx context.Context, in StopIntentInput) (bool, error)
	// AnalyzeAnswer evaluates the latest answer and produces the internal
	// analysis, termination signal, and difficulty steering.
	AnalyzeAnswer(ctx context.Context, in AnalysisInput) (Analysis, error)
	// CompileReport synthesizes the full interview into a final verdict.
	CompileReport(ctx context.Context, in ReportInput) (Report, error)
}

// Difficulty steers the next question's difficulty.
type Difficulty string

const (
	DifficultyEasier Difficulty = "easier"
	DifficultySame   Difficulty = "same"
	DifficultyHarder Difficulty = "harder"
)

// Confidence labels how sure the candidate sounded in an answer.
type Confidence string

const (
	ConfidenceUncertain Confidence = "uncertain"
	ConfidenceModerate  Confidence = "moderate"
	ConfidenceConfident Confidence = "confident"
)

// HistoryTurn is one completed question/answer/analysis cycle supplied to the
// oracle as conversational context.
type HistoryTurn struct {
	TurnID   int
	Question string
	Answer   string
	Analysis string
}

// QuestionInput carries everything the generator stage needs.
type QuestionInput struct {
	Position   string
	Grade      string
	Experience string
	Difficulty Difficulty
	History    []HistoryTurn
}

// StopIntentInput is the latest question/answer pair, nothing more.
type StopIntentInput struct {
	Question string
	Answer   string
}

// AnalysisInput carries the answered question plus recent context.
type AnalysisInput struct {
	Position string
	Grade    string
	Question string
	Answer   string
	History  []HistoryTurn
}

// Analysis is the evaluator stage's structured verdict on one answer.
type Analysis struct {
	Thoughts   string
	Finish     bool
	Difficulty Difficulty
	OffTopic   bool
	Confidence Confidence
}

// ReportInput carries the full interview for final report synthesis.
type ReportInput struct {
	Name       string
	Position   string
	Grade      string
	Experience string
	Turns      []HistoryTurn
}

// Report is the final hiring verdict.
type Report struct {
	Verdict         string
	Recommendation  string
	ConfidenceScore int
	HardSkills      string
	SoftSkills      string
	Roadmap         []string
}

// ErrBadOutput indicates oracle output that fails to decode into the expected
// schema. Callers treat it as an oracle failure for the current step.
var ErrBadOutput = errors.New("oracle output does not match expected schema")
