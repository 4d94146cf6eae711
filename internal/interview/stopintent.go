package interview

import (
	"context"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/telemetry"
)

// detectStop asks the oracle whether the candidate explicitly wants to end
// the interview, judging the latest question/answer pair only. A failed call
// or unusable output degrades to "keep going" so infrastructure noise never
// ends a session early.
func (g *Graph) detectStop(ctx context.Context, s *Session) bool {
	wants, err := g.Oracle.ClassifyStopIntent(ctx, llm.StopIntentInput{
		Question: s.Pending.Question,
		Answer:   s.Pending.Answer,
	})
	if err != nil {
		telemetry.Warn("stop intent classification failed, continuing interview", map[string]any{
			"session_id": s.ID,
			"turn_id":    s.Pending.TurnID,
			"error":      err.Error(),
		})
		return false
	}
	return wants
}
