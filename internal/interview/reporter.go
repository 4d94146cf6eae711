package interview

import (
	"context"
	"fmt"
	"strings"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/telemetry"
	"interview-backend/internal/transcripts"
)

// compileReport synthesizes the full turn history into the final report and
// marks the session terminal. Transcript persistence is a best-effort side
// effect: a sink failure is logged but never fails the step.
func (g *Graph) compileReport(ctx context.Context, s *Session) error {
	history := make([]llm.HistoryTurn, 0, len(s.Turns))
	for _, t := range s.Turns {
		history = append(history, llm.HistoryTurn{
			TurnID:   t.ID,
			Question: t.Question,
			Answer:   t.Answer,
			Analysis: t.Analysis,
		})
	}

	compiled, err := g.Oracle.CompileReport(ctx, llm.ReportInput{
		Name:       s.Profile.Name,
		Position:   s.Profile.Position,
		Grade:      s.Profile.Grade,
		Experience: s.Profile.Experience,
		Turns:      history,
	})
	if err != nil {
		return fmt.Errorf("compile report: %w: %w", ErrOracle, err)
	}

	s.Report = &Report{
		Verdict:         compiled.Verdict,
		Recommendation:  compiled.Recommendation,
		ConfidenceScore: compiled.ConfidenceScore,
		HardSkills:      compiled.HardSkills,
		SoftSkills:      compiled.SoftSkills,
		Roadmap:         compiled.Roadmap,
	}
	s.Finished = true

	if g.Transcripts != nil {
		ref, err := g.Transcripts.Save(ctx, s.ID, BuildTranscript(s))
		if err != nil {
			telemetry.Warn("transcript save failed", map[string]any{
				"session_id": s.ID,
				"error":      err.Error(),
			})
		} else {
			s.LogRef = ref
		}
	}
	return nil
}

// BuildTranscript renders the session into its persisted transcript shape.
func BuildTranscript(s *Session) transcripts.Transcript {
	turns := make([]transcripts.Turn, 0, len(s.Turns))
	for _, t := range s.Turns {
		turns = append(turns, transcripts.Turn{
			TurnID:   t.ID,
			Question: t.Question,
			Answer:   t.Answer,
			Analysis: t.Analysis,
		})
	}
	return transcripts.Transcript{
		ParticipantName: s.Profile.Name,
		Turns:           turns,
		FinalFeedback:   renderFinalFeedback(s.Report),
	}
}

func renderFinalFeedback(report *Report) string {
	if report == nil {
		return "Interview not finished"
	}
	var roadmap strings.Builder
	for i, item := range report.Roadmap {
		if i > 0 {
			roadmap.WriteString("\n")
		}
		fmt.Fprintf(&roadmap, "%d. %s", i+1, item)
	}
	return strings.TrimSpace(fmt.Sprintf(`---Summary----

Verdict:
%s

HARD SKILLS:
%s

SOFT SKILLS:
%s

PERSONAL ROADMAP:
%s
`, report.Verdict, report.HardSkills, report.SoftSkills, roadmap.String()))
}
