package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeStopIntent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"yes", `{"wants_to_finish": "yes"}`, true},
		{"no", `{"wants_to_finish": "no"}`, false},
		{"padded yes", `{"wants_to_finish": "  Yes  "}`, true},
		{"garbled value", `{"wants_to_finish": "dunno"}`, false},
		{"missing field", `{}`, false},
		{"fenced", "```json\n{\"wants_to_finish\": \"yes\"}\n```", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeStopIntent(tc.raw)
			if err != nil {
				t.Fatalf("DecodeStopIntent: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDecodeStopIntentNotJSON(t *testing.T) {
	_, err := DecodeStopIntent("I think the user wants to continue")
	if !errors.Is(err, ErrBadOutput) {
		t.Fatalf("expected ErrBadOutput, got %v", err)
	}
}

func TestDecodeAnalysis(t *testing.T) {
	raw := `{
		"internal_thoughts": "decent answer with minor gaps",
		"is_finish": "no",
		"difficulty_adjustment": "harder",
		"detected_off_topic": false,
		"confidence_level": "confident"
	}`
	analysis, err := DecodeAnalysis(raw)
	if err != nil {
		t.Fatalf("DecodeAnalysis: %v", err)
	}
	if analysis.Finish {
		t.Fatalf("expected finish=false")
	}
	if analysis.Difficulty != DifficultyHarder {
		t.Fatalf("expected harder, got %q", analysis.Difficulty)
	}
	if analysis.Confidence != ConfidenceConfident {
		t.Fatalf("expected confident, got %q", analysis.Confidence)
	}
}

func TestDecodeAnalysisGarbledFinishContinues(t *testing.T) {
	raw := `{
		"internal_thoughts": "ok",
		"is_finish": "perhaps",
		"difficulty_adjustment": "same",
		"detected_off_topic": false,
		"confidence_level": "moderate"
	}`
	analysis, err := DecodeAnalysis(raw)
	if err != nil {
		t.Fatalf("DecodeAnalysis: %v", err)
	}
	if analysis.Finish {
		t.Fatalf("expected garbled finish signal to decode as continue")
	}
}

func TestDecodeAnalysisRejectsUnknownEnums(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"bad difficulty", `{"internal_thoughts": "x", "is_finish": "no", "difficulty_adjustment": "impossible", "detected_off_topic": false, "confidence_level": "moderate"}`},
		{"bad confidence", `{"internal_thoughts": "x", "is_finish": "no", "difficulty_adjustment": "same", "detected_off_topic": false, "confidence_level": "supreme"}`},
		{"empty thoughts", `{"internal_thoughts": "  ", "is_finish": "no", "difficulty_adjustment": "same", "detected_off_topic": false, "confidence_level": "moderate"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeAnalysis(tc.raw); !errors.Is(err, ErrBadOutput) {
				t.Fatalf("expected ErrBadOutput, got %v", err)
			}
		})
	}
}

func TestDecodeReport(t *testing.T) {
	raw := `{
		"verdict": "recommend to hire",
		"hiring_recommendation": "HIRE",
		"confidence_score": 85,
		"hard_skills_analysis": "good",
		"soft_skills_analysis": "honest",
		"personal_roadmap": ["indexes", "profiling", "context", "generics", "testing"]
	}`
	report, err := DecodeReport(raw)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if report.Recommendation != "hire" {
		t.Fatalf("expected normalized hire, got %q", report.Recommendation)
	}
	if report.ConfidenceScore != 85 {
		t.Fatalf("expected score 85, got %d", report.ConfidenceScore)
	}
	if len(report.Roadmap) != 5 {
		t.Fatalf("expected 5 roadmap items, got %d", len(report.Roadmap))
	}
}

func TestDecodeReportRoadmapBounds(t *testing.T) {
	short := `{"verdict": "v", "hiring_recommendation": "hire", "confidence_score": 50, "hard_skills_analysis": "", "soft_skills_analysis": "", "personal_roadmap": ["a", "b"]}`
	if _, err := DecodeReport(short); !errors.Is(err, ErrBadOutput) {
		t.Fatalf("expected ErrBadOutput for short roadmap, got %v", err)
	}

	long := `{"verdict": "v", "hiring_recommendation": "hire", "confidence_score": 50, "hard_skills_analysis": "", "soft_skills_analysis": "", "personal_roadmap": ["a","b","c","d","e","f","g","h","i"]}`
	report, err := DecodeReport(long)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if len(report.Roadmap) != 7 {
		t.Fatalf("expected roadmap truncated to 7, got %d", len(report.Roadmap))
	}
}

func TestDecodeReportClampsScoreAndRecommendation(t *testing.T) {
	raw := `{"verdict": "v", "hiring_recommendation": "maybe later", "confidence_score": 180, "hard_skills_analysis": "", "soft_skills_analysis": "", "personal_roadmap": ["a","b","c"]}`
	report, err := DecodeReport(raw)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if report.ConfidenceScore != 100 {
		t.Fatalf("expected score clamped to 100, got %d", report.ConfidenceScore)
	}
	if report.Recommendation != "second_interview" {
		t.Fatalf("expected second_interview fallback, got %q", report.Recommendation)
	}
}

func TestDecodeReportEmptyVerdict(t *testing.T) {
	raw := `{"verdict": " ", "hiring_recommendation": "hire", "confidence_score": 50, "hard_skills_analysis": "", "soft_skills_analysis": "", "personal_roadmap": ["a","b","c"]}`
	if _, err := DecodeReport(raw); !errors.Is(err, ErrBadOutput) {
		t.Fatalf("expected ErrBadOutput, got %v", err)
	}
}

func TestStripFences(t *testing.T) {
	fenced := "```json\n{\"a\": 1}\n```"
	if got := stripFences(fenced); got != `{"a": 1}` {
		t.Fatalf("unexpected strip result: %q", got)
	}
	plain := `{"a": 1}`
	if got := stripFences(plain); got != plain {
		t.Fatalf("expected plain input untouched, got %q", got)
	}
	if got := stripFences("```\n{\"a\": 1}\n```"); got != `{"a": 1}` {
		t.Fatalf("unexpected strip result for bare fence: %q", got)
	}
}

func TestTruncateRespectsRunes(t *testing.T) {
	s := strings.Repeat("д", 250)
	out := truncate(s, analysisContextLimit)
	if got := len([]rune(out)); got != analysisContextLimit {
		t.Fatalf("expected %d runes, got %d", analysisContextLimit, got)
	}
}
