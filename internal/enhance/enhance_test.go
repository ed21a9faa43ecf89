package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaurabsaha12345/master-prompter/internal/config"
)

func TestResolveProviderDefaults(t *testing.T) {
	cases := []struct {
		provider  string
		wantName  string
		wantLabel string
		wantModel string
		wantURL   string
	}{
		{provider: "", wantName: "gemini", wantLabel: "Gemini", wantModel: "gemini-1.5-pro", wantURL: "https://generativelanguage.googleapis.com/v1beta/openai"},
		{provider: "google", wantName: "gemini", wantLabel: "Gemini", wantModel: "gemini-1.5-pro", wantURL: "https://generativelanguage.googleapis.com/v1beta/openai"},
		{provider: "ChatGPT", wantName: "openai", wantLabel: "OpenAI", wantModel: "gpt-4o", wantURL: "https://api.openai.com/v1"},
		{provider: "xai", wantName: "grok", wantLabel: "Grok", wantModel: "grok-2-latest", wantURL: "https://api.x.ai/v1"},
		{provider: "perplexity", wantName: "perplexity", wantLabel: "Perplexity", wantModel: "sonar-pro", wantURL: "https://api.perplexity.ai"},
		{provider: "minimax", wantName: "minimax", wantLabel: "MiniMax", wantModel: "MiniMax-Text-01", wantURL: "https://api.minimax.chat/v1"},
		{provider: "anthropic", wantName: "claude", wantLabel: "Claude", wantModel: "claude-3-5-sonnet-20241022", wantURL: ""},
	}
	for _, tc := range cases {
		info, err := resolve(config.EnhanceConfig{Provider: tc.provider})
		if err != nil {
			t.Fatalf("resolve(%q) failed: %v", tc.provider, err)
		}
		if info.name != tc.wantName || info.label != tc.wantLabel || info.model != tc.wantModel || info.baseURL != tc.wantURL {
			t.Fatalf("resolve(%q) = %#v", tc.provider, info)
		}
	}
}

func TestResolveOverrides(t *testing.T) {
	info, err := resolve(config.EnhanceConfig{Provider: "openai", Model: "gpt-4o-mini", BaseURL: "http://localhost:9999/v1"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if info.model != "gpt-4o-mini" || info.baseURL != "http://localhost:9999/v1" {
		t.Fatalf("expected config overrides applied, got %#v", info)
	}
}

func TestResolveUnknownProvider(t *testing.T) {
	if _, err := resolve(config.EnhanceConfig{Provider: "mystery"}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewWithoutKeyIsNotConfigured(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	client, err := New(config.EnhanceConfig{Provider: "gemini"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.Configured() {
		t.Fatalf("expected client without key to be unconfigured")
	}
	if client.Label() != "Gemini" {
		t.Fatalf("unexpected label: %q", client.Label())
	}

	_, err = client.Enhance(context.Background(), "prompt", "", nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewWithEnvKey(t *testing.T) {
	t.Setenv("XAI_API_KEY", "test-key")

	client, err := New(config.EnhanceConfig{Provider: "grok"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !client.Configured() {
		t.Fatalf("expected env key to configure the client")
	}
	if client.Model() != "grok-2-latest" {
		t.Fatalf("unexpected model: %q", client.Model())
	}
}

func TestEnhanceModelOverride(t *testing.T) {
	var gotModels []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode upstream request: %v", err)
		}
		gotModels = append(gotModels, req.Model)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"x","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer upstream.Close()

	client, err := New(config.EnhanceConfig{Provider: "openai", APIKey: "test-key", BaseURL: upstream.URL + "/v1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Enhance(context.Background(), "prompt", "", nil); err != nil {
		t.Fatalf("Enhance with default model failed: %v", err)
	}
	if _, err := client.Enhance(context.Background(), "prompt", "gpt-4o-mini", nil); err != nil {
		t.Fatalf("Enhance with model override failed: %v", err)
	}

	if len(gotModels) != 2 || gotModels[0] != "gpt-4o" || gotModels[1] != "gpt-4o-mini" {
		t.Fatalf("unexpected upstream models: %v", gotModels)
	}
}
