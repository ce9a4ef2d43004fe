package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarquote/internal/config"
)

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.AdvisorConfig{
		BaseURL: srv.URL,
		Model:   "test-model",
		APIKey:  "test-key",
		Timeout: "2s",
	})
}

func TestGenerate_ReturnsFirstCandidateText(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(candidateBody("hello tips")))
	})

	text, err := c.Generate(context.Background(), "prompt here", false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "hello tips" {
		t.Fatalf("text = %q", text)
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "prompt here" {
		t.Fatalf("unexpected request body: %+v", gotReq)
	}
	if gotReq.GenerationConfig != nil {
		t.Fatalf("expected no generationConfig for plain text")
	}
}

func TestGenerate_RequestsJSONMimeType(t *testing.T) {
	var gotReq generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(candidateBody(`[{"name":"Fan"}]`)))
	})

	if _, err := c.Generate(context.Background(), "p", true); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotReq.GenerationConfig == nil || gotReq.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("expected responseMimeType=application/json, got %+v", gotReq.GenerationConfig)
	}
}

func TestGenerate_NonOKStatusIsRemoteServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "p", false)
	if !errors.Is(err, ErrRemoteService) {
		t.Fatalf("expected ErrRemoteService, got %v", err)
	}
}

func TestGenerate_EmptyCandidatesIsRemoteServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), "p", false)
	if !errors.Is(err, ErrRemoteService) {
		t.Fatalf("expected ErrRemoteService, got %v", err)
	}
}

func TestGenerate_MalformedBodyIsRemoteServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := c.Generate(context.Background(), "p", false)
	if !errors.Is(err, ErrRemoteService) {
		t.Fatalf("expected ErrRemoteService, got %v", err)
	}
}

func TestGenerate_ConnectionRefusedIsRemoteServiceError(t *testing.T) {
	c := NewClient(config.AdvisorConfig{
		BaseURL: "http://127.0.0.1:1",
		Model:   "m",
		Timeout: "500ms",
	})
	_, err := c.Generate(context.Background(), "p", false)
	if !errors.Is(err, ErrRemoteService) {
		t.Fatalf("expected ErrRemoteService, got %v", err)
	}
}
