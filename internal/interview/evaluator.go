package interview

import (
	"context"
	"fmt"

	"interview-backend/internal/llm"
)

// evaluatorHistoryWindow is how many prior turns the evaluator sees for
// context when judging the latest answer.
const evaluatorHistoryWindow = 2

// evaluate runs the thinking stage on the answered pending question. It is
// the only place turn records are created: on success the pending question is
// folded into an immutable Turn together with the oracle's analysis, and the
// difficulty directive, off-topic flag, and confidence label are updated on
// the session. The returned bool is the evaluator's independent termination
// signal.
//
// Oracle failure (including undecodable output) is fatal to the step: without
// an analysis there is nothing to append, and the pending question stays
// answered-but-unevaluated so the caller may retry the step. A parseable
// analysis with a garbled finish field decodes to "continue" at the oracle
// boundary, mirroring the stop classifier's fail-safe.
func (g *Graph) evaluate(ctx context.Context, s *Session) (bool, error) {
	analysis, err := g.Oracle.AnalyzeAnswer(ctx, llm.AnalysisInput{
		Position: s.Profile.Position,
		Grade:    s.Profile.Grade,
		Question: s.Pending.Question,
		Answer:   s.Pending.Answer,
		History:  historyTurns(s.Turns, evaluatorHistoryWindow),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate answer: %w: %w", ErrOracle, err)
	}

	s.Turns = append(s.Turns, Turn{
		ID:       s.Pending.TurnID,
		Question: s.Pending.Question,
		Answer:   s.Pending.Answer,
		Analysis: analysis.Thoughts,
	})
	s.Pending = nil
	s.Difficulty = analysis.Difficulty
	s.OffTopic = analysis.OffTopic
	s.Confidence = analysis.Confidence

	if analysis.Finish {
		return true, nil
	}
	if g.MaxTurns > 0 && len(s.Turns) >= g.MaxTurns {
		return true, nil
	}
	return false, nil
}
