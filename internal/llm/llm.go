// Package llm wraps the external generation API behind typed results:
// callers get content, ErrRateLimited, or an ordinary error, and choose
// fallback behavior themselves.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/acadport/papergen/internal/model"
)

// ErrRateLimited marks a provider quota/throttling failure. Callers
// switch to local fallback generation on this error.
var ErrRateLimited = errors.New("generation API rate limited")

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a new generation API client.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// GeneratePaper sends a free-text prompt and returns the generated
// paper content verbatim.
func (c *Client) GeneratePaper(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyErr(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateQuiz sends a strict-JSON prompt and returns the validated
// multiple-choice questions the response contained. Items failing
// validation are dropped silently; zero valid items is an error so the
// caller falls back to the static bank.
func (c *Client) GenerateQuiz(ctx context.Context, prompt string) ([]model.QuizQuestion, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, classifyErr(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generation API returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	slog.Debug("quiz generation response", "raw", raw)

	questions, err := parseQuizResponse(raw)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no valid quiz questions in response")
	}
	return questions, nil
}

// classifyErr distinguishes provider throttling from other failures.
// go-openai surfaces 429s as *openai.APIError, but some gateways wrap
// them opaquely, so the error text is also checked for the usual
// quota indicators as a compatibility shim.
func classifyErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
	}
	text := strings.ToLower(err.Error())
	if strings.Contains(text, "429") || strings.Contains(text, "quota") || strings.Contains(text, "rate_limit") {
		return fmt.Errorf("%w: %s", ErrRateLimited, err)
	}
	return fmt.Errorf("generation API call: %w", err)
}

// parseQuizResponse extracts the JSON array from a model response and
// returns the items that pass validation.
func parseQuizResponse(raw string) ([]model.QuizQuestion, error) {
	text := strings.TrimSpace(raw)

	// Models often wrap JSON in markdown fences despite instructions.
	if strings.HasPrefix(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}

	var items []model.QuizQuestion
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	var valid []model.QuizQuestion
	for _, item := range items {
		q, ok := validateQuestion(item)
		if !ok {
			slog.Debug("dropped invalid quiz item", "question", item.Question)
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

// validateQuestion checks one generated item: non-empty question,
// exactly 4 pairwise-distinct options, and an answer equal to one of
// them. Option and answer strings are trimmed before comparison.
func validateQuestion(item model.QuizQuestion) (model.QuizQuestion, bool) {
	question := strings.TrimSpace(item.Question)
	answer := strings.TrimSpace(item.Answer)
	if question == "" || len(item.Options) != 4 {
		return model.QuizQuestion{}, false
	}

	options := make([]string, 4)
	seen := make(map[string]bool, 4)
	answerFound := false
	for i, opt := range item.Options {
		opt = strings.TrimSpace(opt)
		if seen[opt] {
			return model.QuizQuestion{}, false
		}
		seen[opt] = true
		options[i] = opt
		if opt == answer {
			answerFound = true
		}
	}
	if !answerFound {
		return model.QuizQuestion{}, false
	}

	return model.QuizQuestion{Question: question, Options: options, Answer: answer}, true
}
