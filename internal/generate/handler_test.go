package generate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/generate"
)

type stubClient struct {
	content string
	err     error
}

func (s *stubClient) Generate(ctx context.Context, kind string, gc generate.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := generate.BuildPrompt(kind, gc); err != nil {
		return "", err
	}
	return s.content, nil
}

func newGenerateRouter(client generate.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	generate.NewHandler(client).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postGenerate(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGenerateSuccessEchoesKind(t *testing.T) {
	router := newGenerateRouter(&stubClient{content: "A strong summary."})

	resp := postGenerate(t, router, map[string]any{
		"kind":    "summary",
		"context": map[string]any{"jobTitle": "Engineer"},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Success bool   `json:"success"`
		Content string `json:"content"`
		Kind    string `json:"kind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success true")
	}
	if out.Content != "A strong summary." {
		t.Fatalf("unexpected content: %q", out.Content)
	}
	if out.Kind != "summary" {
		t.Fatalf("expected kind echoed, got %q", out.Kind)
	}
}

func TestGenerateMissingKind(t *testing.T) {
	router := newGenerateRouter(&stubClient{content: "x"})

	resp := postGenerate(t, router, map[string]any{"context": map[string]any{}})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	assertErrorMessage(t, resp, "Type is required")
}

func TestGenerateUnknownKind(t *testing.T) {
	router := newGenerateRouter(&stubClient{content: "x"})

	resp := postGenerate(t, router, map[string]any{"kind": "haiku"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	assertErrorMessage(t, resp, "Invalid generation type")
}

func TestGenerateErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not configured", generate.ErrNotConfigured, http.StatusInternalServerError,
			"OpenAI API key not configured. Please add OPENAI_API_KEY to your environment variables."},
		{"bad credential", generate.ErrInvalidCredential, http.StatusUnauthorized,
			"Invalid OpenAI API key"},
		{"rate limited", generate.ErrRateLimited, http.StatusTooManyRequests,
			"OpenAI rate limit reached. Please try again later."},
		{"quota exhausted", generate.ErrQuotaExhausted, http.StatusPaymentRequired,
			"OpenAI quota exceeded. Please add credits to your account."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newGenerateRouter(&stubClient{err: tc.err})
			resp := postGenerate(t, router, map[string]any{"kind": "summary"})
			if resp.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.Code)
			}
			assertErrorMessage(t, resp, tc.wantError)
		})
	}
}

func assertErrorMessage(t *testing.T, resp *httptest.ResponseRecorder, want string) {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if out.Error != want {
		t.Fatalf("expected error %q, got %q", want, out.Error)
	}
}
