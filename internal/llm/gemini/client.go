package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/metrics"
)

const defaultModel = "gemini-2.5-pro"

// Client implements llm.Client using the Google GenAI API.
type Client struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

// NewClient creates a Client configured for the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string, temperature float64) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, modelName: model, temperature: float32(temperature)}, nil
}

// GenerateQuestion asks for the next question as plain text.
func (c *Client) GenerateQuestion(ctx context.Context, in llm.QuestionInput) (string, error) {
	out, err := c.generateContent(ctx, llm.BuildQuestionPrompt(in), false)
	if err != nil {
		return "", err
	}
	question := strings.TrimSpace(out)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", llm.ErrBadOutput)
	}
	return question, nil
}

// ClassifyStopIntent asks for a yes/no stop judgment as JSON.
func (c *Client) ClassifyStopIntent(ctx context.Context, in llm.StopIntentInput) (bool, error) {
	out, err := c.generateContent(ctx, llm.BuildStopIntentPrompt(in), true)
	if err != nil {
		return false, err
	}
	return llm.DecodeStopIntent(out)
}

// AnalyzeAnswer asks for the structured evaluation as JSON.
func (c *Client) AnalyzeAnswer(ctx context.Context, in llm.AnalysisInput) (llm.Analysis, error) {
	out, err := c.generateContent(ctx, llm.BuildAnalysisPrompt(in), true)
	if err != nil {
		return llm.Analysis{}, err
	}
	return llm.DecodeAnalysis(out)
}

// CompileReport asks for the final report as JSON.
func (c *Client) CompileReport(ctx context.Context, in llm.ReportInput) (llm.Report, error) {
	out, err := c.generateContent(ctx, llm.BuildReportPrompt(in), true)
	if err != nil {
		return llm.Report{}, err
	}
	return llm.DecodeReport(out)
}

func (c *Client) generateContent(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if jsonMode {
		cfg.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	metrics.ObserveOracleCallDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return output, nil
}

var _ llm.Client = (*Client)(nil)
