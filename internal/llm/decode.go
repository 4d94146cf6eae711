package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Wire shapes returned by the oracle. Booleans the model emits as "yes"/"no"
// strings are decoded here, once, into real types.

type stopIntentWire struct {
	WantsToFinish string `json:"wants_to_finish"`
}

type analysisWire struct {
	InternalThoughts     string `json:"internal_thoughts"`
	IsFinish             string `json:"is_finish"`
	DifficultyAdjustment string `json:"difficulty_adjustment"`
	DetectedOffTopic     bool   `json:"detected_off_topic"`
	ConfidenceLevel      string `json:"confidence_level"`
}

type reportWire struct {
	Verdict              string   `json:"verdict"`
	HiringRecommendation string   `json:"hiring_recommendation"`
	ConfidenceScore      int      `json:"confidence_score"`
	HardSkillsAnalysis   string   `json:"hard_skills_analysis"`
	SoftSkillsAnalysis   string   `json:"soft_skills_analysis"`
	PersonalRoadmap      []string `json:"personal_roadmap"`
}

const (
	roadmapMin = 3
	roadmapMax = 7
)

// DecodeStopIntent parses the stop classifier output.
func DecodeStopIntent(raw string) (bool, error) {
	var wire stopIntentWire
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		return false, fmt.Errorf("%w: stop intent: %v", ErrBadOutput, err)
	}
	return parseYesNo(wire.WantsToFinish), nil
}

// DecodeAnalysis parses the evaluator output.
func DecodeAnalysis(raw string) (Analysis, error) {
	var wire analysisWire
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		return Analysis{}, fmt.Errorf("%w: analysis: %v", ErrBadOutput, err)
	}
	if strings.TrimSpace(wire.InternalThoughts) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis: empty internal_thoughts", ErrBadOutput)
	}
	difficulty, err := parseDifficulty(wire.DifficultyAdjustment)
	if err != nil {
		return Analysis{}, err
	}
	confidence, err := parseConfidence(wire.ConfidenceLevel)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Thoughts:   wire.InternalThoughts,
		Finish:     parseYesNo(wire.IsFinish),
		Difficulty: difficulty,
		OffTopic:   wire.DetectedOffTopic,
		Confidence: confidence,
	}, nil
}

// DecodeReport parses the report compiler output. A roadmap shorter than the
// minimum is a schema failure; longer roadmaps are truncated to the maximum.
func DecodeReport(raw string) (Report, error) {
	var wire reportWire
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		return Report{}, fmt.Errorf("%w: report: %v", ErrBadOutput, err)
	}
	if strings.TrimSpace(wire.Verdict) == "" {
		return Report{}, fmt.Errorf("%w: report: empty verdict", ErrBadOutput)
	}
	roadmap := make([]string, 0, len(wire.PersonalRoadmap))
	for _, item := range wire.PersonalRoadmap {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			roadmap = append(roadmap, trimmed)
		}
	}
	if len(roadmap) < roadmapMin {
		return Report{}, fmt.Errorf("%w: report: roadmap has %d entries, need at least %d", ErrBadOutput, len(roadmap), roadmapMin)
	}
	if len(roadmap) > roadmapMax {
		roadmap = roadmap[:roadmapMax]
	}
	score := wire.ConfidenceScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Report{
		Verdict:         wire.Verdict,
		Recommendation:  normalizeRecommendation(wire.HiringRecommendation),
		ConfidenceScore: score,
		HardSkills:      wire.HardSkillsAnalysis,
		SoftSkills:      wire.SoftSkillsAnalysis,
		Roadmap:         roadmap,
	}, nil
}

func parseYesNo(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "y")
}

func parseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasier:
		return DifficultyEasier, nil
	case DifficultySame:
		return DifficultySame, nil
	case DifficultyHarder:
		return DifficultyHarder, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrBadOutput, raw)
	}
}

func parseConfidence(raw string) (Confidence, error) {
	switch Confidence(strings.ToLower(strings.TrimSpace(raw))) {
	case ConfidenceUncertain:
		return ConfidenceUncertain, nil
	case ConfidenceModerate:
		return ConfidenceModerate, nil
	case ConfidenceConfident:
		return ConfidenceConfident, nil
	default:
		return "", fmt.Errorf("%w: unknown confidence %q", ErrBadOutput, raw)
	}
}

func normalizeRecommendation(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hire":
		return "hire"
	case "reject":
		return "reject"
	default:
		return "second_interview"
	}
}

// stripFences removes a surrounding markdown code fence if the model added one.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
