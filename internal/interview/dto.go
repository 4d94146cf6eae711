package interview

// StartRequest is the payload for starting an interview.
type StartRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Grade      string `json:"grade" binding:"required"`
	Experience string `json:"experience" binding:"required"`
}

// AnswerRequest is the payload for submitting an answer.
type AnswerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

// StartResponse returns the new session and its first question.
type StartResponse struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	TurnID    int    `json:"turn_id"`
}

// NextQuestionResponse is the mid-interview answer response.
type NextQuestionResponse struct {
	Finished bool   `json:"finished"`
	Question string `json:"question"`
	TurnID   int    `json:"turn_id"`
}

// FinishedResponse carries the final report fields once the interview ends.
type FinishedResponse struct {
	Finished        bool     `json:"finished"`
	LogFile         string   `json:"log_file,omitempty"`
	Verdict         string   `json:"verdict"`
	Recommendation  string   `json:"recommendation"`
	ConfidenceScore int      `json:"confidence_score"`
	HardSkills      string   `json:"hard_skills"`
	SoftSkills      string   `json:"soft_skills"`
	Roadmap         []string `json:"roadmap"`
}
