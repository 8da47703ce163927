package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProviderComplete(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `[{"question":"Q","answer":"A"}]`}},
			},
		})
	}))
	defer srv.Close()

	p := &OpenAIProvider{APIKey: "test-key", BaseURL: srv.URL}
	out, err := p.Complete(context.Background(), "make cards")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `[{"question":"Q","answer":"A"}]` {
		t.Fatalf("unexpected completion: %s", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("missing bearer auth, got %q", gotAuth)
	}
	if gotBody["model"] != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model %v", gotBody["model"])
	}
}

func TestOpenAIProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := &OpenAIProvider{APIKey: "test-key", BaseURL: srv.URL}
	_, err := p.Complete(context.Background(), "make cards")
	if _, ok := err.(*ExternalServiceError); !ok {
		t.Fatalf("expected ExternalServiceError, got %T: %v", err, err)
	}
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	p := &OpenAIProvider{APIKey: "test-key", BaseURL: srv.URL}
	_, err := p.Complete(context.Background(), "make cards")
	if _, ok := err.(*ExternalServiceError); !ok {
		t.Fatalf("expected ExternalServiceError, got %T: %v", err, err)
	}
}
