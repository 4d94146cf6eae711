package interview

import (
	"context"
	"strings"

	"interview-backend/internal/llm"
	"interview-backend/internal/transcripts"
)

// stage is a node of the interview control-flow graph.
type stage int

const (
	stageGenerate stage = iota
	stageIngest
	stageDetectStop
	stageEvaluate
	stageReport
)

// Graph wires the decision stages into a fixed control flow:
//
//	entry -> generate (first call, or after evaluation)   -> yield question
//	entry -> ingest -> detect stop -> report              -> yield report
//	                               -> evaluate -> report  -> yield report
//	                                           -> generate -> yield question
//
// Termination detected by either the stop classifier or the evaluator is
// sufficient; the two signals are OR-ed, not reconciled.
type Graph struct {
	Oracle      llm.Client
	Transcripts transcripts.Sink
	// MaxTurns caps completed cycles as a cost guard; 0 disables the cap.
	MaxTurns int
}

// StepResult is what one advance of the graph yields back to the caller:
// either the next question or the final report, never both.
type StepResult struct {
	Finished bool
	Question string
	TurnID   int
	Report   *Report
	LogRef   string
}

// Step advances the session by exactly one step. With an empty answer (or no
// pending question) it enters the generation branch and suspends after
// producing a question; with an answer it enters the ingestion branch and
// either loops back to generation or terminates with a report.
func (g *Graph) Step(ctx context.Context, s *Session, answer string) (StepResult, error) {
	if s.Finished {
		return StepResult{}, ErrFinished
	}

	current := routeEntry(s, answer)
	for {
		switch current {
		case stageGenerate:
			if err := g.generate(ctx, s); err != nil {
				return StepResult{}, err
			}
			// The graph suspends here; control returns to the caller.
			return StepResult{Question: s.Pending.Question, TurnID: s.Pending.TurnID}, nil

		case stageIngest:
			ingestAnswer(s, answer)
			current = stageDetectStop

		case stageDetectStop:
			if g.detectStop(ctx, s) {
				current = stageReport
			} else {
				current = stageEvaluate
			}

		case stageEvaluate:
			finish, err := g.evaluate(ctx, s)
			if err != nil {
				return StepResult{}, err
			}
			if finish {
				current = stageReport
			} else {
				current = stageGenerate
			}

		case stageReport:
			if err := g.compileReport(ctx, s); err != nil {
				return StepResult{}, err
			}
			return StepResult{Finished: true, Report: s.Report, LogRef: s.LogRef}, nil
		}
	}
}

// routeEntry is the sole dispatch rule deciding which half of the graph an
// external call enters.
func routeEntry(s *Session, answer string) stage {
	if strings.TrimSpace(answer) != "" && s.Pending != nil && !s.Pending.Answered() {
		return stageIngest
	}
	return stageGenerate
}

// ingestAnswer binds the raw answer to the pending question. Pure state
// transition; reachable only when a pending question awaits an answer.
func ingestAnswer(s *Session, answer string) {
	s.Pending.Answer = answer
}

func historyTurns(turns []Turn, window int) []llm.HistoryTurn {
	if len(turns) > window {
		turns = turns[len(turns)-window:]
	}
	out := make([]llm.HistoryTurn, 0, len(turns))
	for _, t := range turns {
		out = append(out, llm.HistoryTurn{
			TurnID:   t.ID,
			Question: t.Question,
			Answer:   t.Answer,
			Analysis: t.Analysis,
		})
	}
	return out
}
