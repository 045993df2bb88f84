package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"prezumi-backend/internal/generate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client.WithBaseURL(server.URL)
}

func TestGenerateSendsChatRequest(t *testing.T) {
	var captured struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  Generated summary.  "}},
			},
		})
	})

	content, err := client.Generate(context.Background(), generate.KindSummary, generate.Context{JobTitle: "Engineer"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if content != "Generated summary." {
		t.Fatalf("expected trimmed content, got %q", content)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Fatalf("expected model gpt-4o-mini, got %q", captured.Model)
	}
	if captured.MaxTokens != 1000 {
		t.Fatalf("expected max_tokens 1000, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
}

func TestGenerateWithoutKeyIsNotConfigured(t *testing.T) {
	client, err := NewClient("", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Generate(context.Background(), generate.KindSummary, generate.Context{})
	if !errors.Is(err, generate.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateClassifiesUpstreamErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    map[string]any
		wantErr error
	}{
		{
			name:    "invalid key",
			status:  http.StatusUnauthorized,
			body:    map[string]any{"error": map[string]any{"message": "bad key", "type": "invalid_request_error"}},
			wantErr: generate.ErrInvalidCredential,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit_error"}},
			wantErr: generate.ErrRateLimited,
		},
		{
			name:   "insufficient quota",
			status: http.StatusTooManyRequests,
			body: map[string]any{"error": map[string]any{
				"message": "quota exceeded", "type": "insufficient_quota", "code": "insufficient_quota",
			}},
			wantErr: generate.ErrQuotaExhausted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(tc.body)
			})

			_, err := client.Generate(context.Background(), generate.KindSummary, generate.Context{})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestGenerateUnknownKindFailsBeforeRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for unknown kind")
	})

	_, err := client.Generate(context.Background(), "haiku", generate.Context{})
	if !errors.Is(err, generate.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestGenerateEmptyChoicesIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Generate(context.Background(), generate.KindSummary, generate.Context{})
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
