package llm

import (
	"strings"
	"testing"
)

func TestBuildQuestionPromptFirstQuestion(t *testing.T) {
	prompt := BuildQuestionPrompt(QuestionInput{
		Position:   "Backend Developer",
		Grade:      "junior",
		Experience: "1 year of Go",
		Difficulty: DifficultySame,
	})
	if !strings.Contains(prompt, "Backend Developer") {
		t.Fatalf("expected position in prompt")
	}
	if !strings.Contains(prompt, "This is the first question of the interview.") {
		t.Fatalf("expected first-question marker in prompt")
	}
	if !strings.Contains(prompt, "Keep the same difficulty level.") {
		t.Fatalf("expected same-difficulty instruction in prompt")
	}
}

func TestBuildQuestionPromptDifficultySteering(t *testing.T) {
	prompt := BuildQuestionPrompt(QuestionInput{
		Position:   "Backend Developer",
		Grade:      "junior",
		Experience: "1 year",
		Difficulty: DifficultyEasier,
		History: []HistoryTurn{
			{TurnID: 1, Question: "What is a pointer?", Answer: "no idea"},
		},
	})
	if !strings.Contains(prompt, "Ask an easier question.") {
		t.Fatalf("expected easier instruction in prompt")
	}
	if !strings.Contains(prompt, "What is a pointer?") {
		t.Fatalf("expected history in prompt")
	}
}

func TestBuildQuestionPromptUnknownDifficultyDefaults(t *testing.T) {
	prompt := BuildQuestionPrompt(QuestionInput{
		Position:   "Backend Developer",
		Grade:      "junior",
		Experience: "1 year",
		Difficulty: Difficulty("weird"),
	})
	if !strings.Contains(prompt, "Keep the same difficulty level.") {
		t.Fatalf("expected fallback to same difficulty")
	}
}

func TestBuildAnalysisPromptTruncatesHistoryAnalysis(t *testing.T) {
	long := strings.Repeat("x", 500)
	prompt := BuildAnalysisPrompt(AnalysisInput{
		Position: "Backend Developer",
		Grade:    "junior",
		Question: "Explain channels",
		Answer:   "Channels are typed conduits",
		History: []HistoryTurn{
			{TurnID: 1, Question: "q", Answer: "a", Analysis: long},
		},
	})
	if strings.Contains(prompt, long) {
		t.Fatalf("expected long analysis truncated in prompt context")
	}
	if !strings.Contains(prompt, strings.Repeat("x", analysisContextLimit)+"...") {
		t.Fatalf("expected truncated analysis with ellipsis marker")
	}
}

func TestBuildReportPromptIncludesFullHistory(t *testing.T) {
	prompt := BuildReportPrompt(ReportInput{
		Name:       "Ivan Petrov",
		Position:   "Backend Developer",
		Grade:      "junior",
		Experience: "1 year",
		Turns: []HistoryTurn{
			{TurnID: 1, Question: "q1", Answer: "a1", Analysis: "an1"},
			{TurnID: 2, Question: "q2", Answer: "a2", Analysis: "an2"},
		},
	})
	for _, fragment := range []string{"Ivan Petrov", "Round 1:", "Round 2:", "q2", "an1"} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected %q in report prompt", fragment)
		}
	}
}
