package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrSessionCreate = errors.New("could not create chat session")
	ErrAnswerFetch   = errors.New("could not fetch answer")
)

// Config holds the brain backend connection settings. OpenAIAPIKey and
// BearerToken travel as static headers on every request.
type Config struct {
	BaseURL      string
	Model        string
	OpenAIAPIKey string
	BearerToken  string
}

// Service talks to the conversational backend. Every query opens a fresh
// chat and performs exactly one question round-trip against it.
type Service struct {
	client *http.Client
	cfg    Config
}

func NewService(cfg Config) *Service {
	return &Service{
		client: &http.Client{Timeout: 120 * time.Second},
		cfg:    cfg,
	}
}

// NewChat opens a backend conversation and returns its identifier.
func (s *Service) NewChat(ctx context.Context, name string) (string, error) {
	payload := map[string]any{"name": name}

	var resp struct {
		ChatID string `json:"chat_id"`
	}
	if err := s.post(ctx, s.cfg.BaseURL+"/chat", payload, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionCreate, err)
	}
	if resp.ChatID == "" {
		return "", fmt.Errorf("%w: backend returned no chat_id", ErrSessionCreate)
	}

	return resp.ChatID, nil
}

// Ask submits one question to an existing chat and returns the generated
// answer. Never retried: resubmitting risks duplicate work billed against
// the backend.
func (s *Service) Ask(ctx context.Context, chatID string, question string, temperature float64, maxTokens int) (string, error) {
	payload := map[string]any{
		"model":       s.cfg.Model,
		"question":    question,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	var resp struct {
		Assistant string `json:"assistant"`
	}
	if err := s.post(ctx, s.cfg.BaseURL+"/chat/"+chatID+"/question", payload, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAnswerFetch, err)
	}
	if resp.Assistant == "" {
		return "", fmt.Errorf("%w: backend returned an empty answer", ErrAnswerFetch)
	}

	return resp.Assistant, nil
}

func (s *Service) post(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Openai-Api-Key", s.cfg.OpenAIAPIKey)
	req.Header.Set("Authorization", "Bearer "+s.cfg.BearerToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend responded with HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse backend response: %v", err)
	}

	return nil
}
