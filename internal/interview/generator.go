package interview

import (
	"context"
	"fmt"

	"interview-backend/internal/llm"
)

// generatorHistoryWindow is how many recent turns the generator sees, enough
// context to avoid repeats without resending the whole interview.
const generatorHistoryWindow = 3

// generate produces the next question and allocates the pending question at
// the next turn number. Oracle failure is fatal to the step; no fallback
// question is fabricated.
func (g *Graph) generate(ctx context.Context, s *Session) error {
	question, err := g.Oracle.GenerateQuestion(ctx, llm.QuestionInput{
		Position:   s.Profile.Position,
		Grade:      s.Profile.Grade,
		Experience: s.Profile.Experience,
		Difficulty: s.Difficulty,
		History:    historyTurns(s.Turns, generatorHistoryWindow),
	})
	if err != nil {
		return fmt.Errorf("generate question: %w: %w", ErrOracle, err)
	}

	turnID := s.TurnCount + 1
	s.Pending = &PendingQuestion{
		TurnID:   turnID,
		Question: question,
	}
	s.TurnCount = turnID
	return nil
}
