package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/metrics"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey      string
	model       string
	temperature float32
	httpClient  *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string, temperature float64) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:      apiKey,
		model:       model,
		temperature: float32(temperature),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateQuestion asks for the next question as plain text.
func (c *Client) GenerateQuestion(ctx context.Context, in llm.QuestionInput) (string, error) {
	out, err := c.chatOnce(ctx, llm.BuildQuestionPrompt(in), false)
	if err != nil {
		return "", err
	}
	question := strings.TrimSpace(out)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", llm.ErrBadOutput)
	}
	return question, nil
}

// ClassifyStopIntent asks for a yes/no stop judgment in JSON mode.
func (c *Client) ClassifyStopIntent(ctx context.Context, in llm.StopIntentInput) (bool, error) {
	out, err := c.chatOnce(ctx, llm.BuildStopIntentPrompt(in), true)
	if err != nil {
		return false, err
	}
	return llm.DecodeStopIntent(out)
}

// AnalyzeAnswer asks for the structured evaluation in JSON mode.
func (c *Client) AnalyzeAnswer(ctx context.Context, in llm.AnalysisInput) (llm.Analysis, error) {
	out, err := c.chatOnce(ctx, llm.BuildAnalysisPrompt(in), true)
	if err != nil {
		return llm.Analysis{}, err
	}
	return llm.DecodeAnalysis(out)
}

// CompileReport asks for the final report in JSON mode.
func (c *Client) CompileReport(ctx context.Context, in llm.ReportInput) (llm.Report, error) {
	out, err := c.chatOnce(ctx, llm.BuildReportPrompt(in), true)
	if err != nil {
		return llm.Report{}, err
	}
	return llm.DecodeReport(out)
}

func (c *Client) chatOnce(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		Temperature: &c.temperature,
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveOracleCallDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
