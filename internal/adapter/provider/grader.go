package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const graderSystemPrompt = `You are a strict habit coach reviewing a user's reading note.
Rules:
1. Gibberish, a single perfunctory word, or content unrelated to reading fails.
2. A passing note contains a concrete takeaway or summary of what was read, at least ten characters long.
3. Reply with JSON only: {"pass": true|false, "reason": "<one short remark>"}.
4. Tone: strict and a little sarcastic but constructive. Acknowledge a pass without gushing.`

// GraderConfig configures the chat completions grader.
type GraderConfig struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float64
}

// ChatGrader implements ports.NoteGrader with an OpenAI-compatible chat completions endpoint.
type ChatGrader struct {
	base
	apiKey      string
	model       string
	temperature float64
}

func NewChatGrader(cfg GraderConfig, opts ...Option) *ChatGrader {
	model := cfg.Model
	if model == "" {
		model = "deepseek-v3"
	}
	return &ChatGrader{
		base:        newBase(cfg.APIURL, opts),
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: cfg.Temperature,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat map[string]any `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type gradeVerdict struct {
	Pass   bool   `json:"pass"`
	Reason string `json:"reason"`
}

// Grade asks the model to judge note. Any transport or decoding problem is returned as an error.
func (g *ChatGrader) Grade(ctx context.Context, note string) (bool, string, error) {
	payload := chatRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []chatMessage{
			{Role: "system", Content: graderSystemPrompt},
			{Role: "user", Content: "Reading note: " + note},
		},
		ResponseFormat: map[string]any{"type": "json_object"},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return false, "", fmt.Errorf("failed to marshal grader request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return false, "", fmt.Errorf("failed to create grader request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	var resp chatResponse
	if err := g.do(req, "grader", &resp); err != nil {
		return false, "", err
	}
	if len(resp.Choices) == 0 {
		return false, "", errors.New("grader response had no choices")
	}

	var v gradeVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &v); err != nil {
		return false, "", fmt.Errorf("failed to decode grader verdict: %w", err)
	}
	return v.Pass, v.Reason, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
