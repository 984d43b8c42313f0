// Package llm turns computed sleep aggregates into narrative insights
// using the OpenAI API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt overrides it.
const DefaultSystemPrompt = `You are a non-medical sleep analytics assistant for a single user's personal dashboard.

You receive aggregated sleep statistics computed from the user's own history. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's recent sleep in clear, neutral language.
- Highlight patterns in duration, efficiency, score, and schedule regularity.
- Compare the recent window against the longer history and the weekday/weekend split.
- Factor in the chronotype classification when it helps explain patterns.
- Echo the precomputed recommendation and explain what drives it in plain words.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, handling naps, etc.).
- Treat correlation coefficients as associations, never as causes.
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing recent sleep against the longer history.",
  "observations": [
    "3-6 bullet points about patterns in duration, efficiency, score, and consistency.",
    "At least one item comparing the recent window to the longer history.",
    "If relevant, one item about the weekday/weekend difference or the chronotype."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if bedtime varies a lot.",
    "Include at least one suggestion aligned with the precomputed recommendation."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's sleep data.

- "history" aggregates the long-term window (about 90 nights).
- "recent" aggregates the short-term window (about 14 nights).
- "weekday_weekend" splits the history window by weekday vs weekend nights.
- "chronotype" classifies the user's typical mid-sleep time.
- "recommendation" is a precomputed, deterministic action with the numbers behind it.
- "correlations" lists Pearson coefficients between selected metric pairs.

All durations are minutes unless a field name says hours; efficiency and scores are 0-100.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating narrative insights.
type InsightsLLM interface {
	// GenerateInsights takes the aggregate bundle and returns the narrative.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsights, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty. An empty systemPrompt selects the default.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI to generate narrative sleep insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var insights domain.LLMInsights
	if err := json.Unmarshal([]byte(content), &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &insights, nil
}
