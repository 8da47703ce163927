package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Provider is a generative-AI backend able to answer a single prompt with
// raw text. The set of implementations is closed: Gemini and OpenAI.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// SelectProvider maps the request's provider field to a configured backend.
// An empty name defaults to Gemini.
func SelectProvider(name, geminiKey, openAIKey string) (Provider, error) {
	switch name {
	case "", "gemini":
		if geminiKey == "" {
			return nil, &ExternalServiceError{Message: "Gemini API key not configured"}
		}
		return &GeminiProvider{APIKey: geminiKey}, nil
	case "openai":
		if openAIKey == "" {
			return nil, &ExternalServiceError{Message: "OpenAI API key not configured"}
		}
		return &OpenAIProvider{APIKey: openAIKey}, nil
	default:
		return nil, &ValidationError{Message: "Unknown AI provider: " + name}
	}
}

type GeminiProvider struct {
	APIKey string
	Model  string
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.APIKey))
	if err != nil {
		return "", &ExternalServiceError{Message: fmt.Sprintf("failed to create Gemini client: %v", err)}
	}
	defer client.Close()

	modelName := p.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ExternalServiceError{Message: fmt.Sprintf("Gemini API error: %v", err)}
	}

	text := extractGeminiText(resp)
	if text == "" {
		return "", &ExternalServiceError{Message: "Invalid response format from Gemini"}
	}
	return text, nil
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

// OpenAIProvider talks to the chat completions endpoint directly. BaseURL is
// overridable so tests can point it at a local server.
type OpenAIProvider struct {
	APIKey  string
	BaseURL string
	Model   string
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	model := p.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	payload := map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a helpful assistant that generates educational flashcards in JSON format."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  1500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &ExternalServiceError{Message: fmt.Sprintf("OpenAI API error: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ExternalServiceError{Message: fmt.Sprintf("failed to read OpenAI response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ExternalServiceError{Message: fmt.Sprintf("OpenAI API returned status %d", resp.StatusCode)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", &ExternalServiceError{Message: "Invalid response format from OpenAI"}
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", &ExternalServiceError{Message: "OpenAI returned empty completion"}
	}
	return text, nil
}
