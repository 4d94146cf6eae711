package interview

import (
	"context"
	"fmt"
	"sync"

	"interview-backend/internal/llm"
	"interview-backend/internal/transcripts"
)

// stubOracle is a scriptable llm.Client. Unset hooks fall back to benign
// defaults so tests only script the stages they care about.
type stubOracle struct {
	mu sync.Mutex

	generateFn func(in llm.QuestionInput) (string, error)
	stopFn     func(in llm.StopIntentInput) (bool, error)
	analyzeFn  func(in llm.AnalysisInput) (llm.Analysis, error)
	reportFn   func(in llm.ReportInput) (llm.Report, error)

	generateCalls []llm.QuestionInput
	stopCalls     []llm.StopIntentInput
	analyzeCalls  []llm.AnalysisInput
	reportCalls   []llm.ReportInput
}

func (s *stubOracle) GenerateQuestion(_ context.Context, in llm.QuestionInput) (string, error) {
	s.mu.Lock()
	s.generateCalls = append(s.generateCalls, in)
	n := len(s.generateCalls)
	s.mu.Unlock()
	if s.generateFn != nil {
		return s.generateFn(in)
	}
	return fmt.Sprintf("question %d", n), nil
}

func (s *stubOracle) ClassifyStopIntent(_ context.Context, in llm.StopIntentInput) (bool, error) {
	s.mu.Lock()
	s.stopCalls = append(s.stopCalls, in)
	s.mu.Unlock()
	if s.stopFn != nil {
		return s.stopFn(in)
	}
	return false, nil
}

func (s *stubOracle) AnalyzeAnswer(_ context.Context, in llm.AnalysisInput) (llm.Analysis, error) {
	s.mu.Lock()
	s.analyzeCalls = append(s.analyzeCalls, in)
	s.mu.Unlock()
	if s.analyzeFn != nil {
		return s.analyzeFn(in)
	}
	return llm.Analysis{
		Thoughts:   "solid answer",
		Difficulty: llm.DifficultySame,
		Confidence: llm.ConfidenceModerate,
	}, nil
}

func (s *stubOracle) CompileReport(_ context.Context, in llm.ReportInput) (llm.Report, error) {
	s.mu.Lock()
	s.reportCalls = append(s.reportCalls, in)
	s.mu.Unlock()
	if s.reportFn != nil {
		return s.reportFn(in)
	}
	return llm.Report{
		Verdict:         "recommend to hire",
		Recommendation:  "hire",
		ConfidenceScore: 80,
		HardSkills:      "good fundamentals",
		SoftSkills:      "communicates clearly",
		Roadmap:         []string{"goroutines", "sql tuning", "system design"},
	}, nil
}

var _ llm.Client = (*stubOracle)(nil)

// stubSink records saved transcripts.
type stubSink struct {
	mu     sync.Mutex
	saved  []transcripts.Transcript
	ref    string
	err    error
	lastID string
}

func (s *stubSink) Save(_ context.Context, sessionID string, transcript transcripts.Transcript) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, transcript)
	s.lastID = sessionID
	if s.ref != "" {
		return s.ref, nil
	}
	return "transcript.json", nil
}

var _ transcripts.Sink = (*stubSink)(nil)

func newTestService(oracle *stubOracle) (*Service, *stubSink) {
	sink := &stubSink{}
	graph := &Graph{Oracle: oracle, Transcripts: sink}
	return NewService(NewMemoryRepo(), graph), sink
}

func testProfile() Profile {
	return Profile{
		Name:       "Ivan Petrov",
		Position:   "Backend Developer",
		Grade:      "junior",
		Experience: "1 year of Go, some SQL",
	}
}
