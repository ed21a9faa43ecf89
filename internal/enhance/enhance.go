// Package enhance rewrites assembled prompts through an upstream model.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/gaurabsaha12345/master-prompter/internal/config"
)

// instruction is the system prompt wrapped around every enhance call.
const instruction = "You are a prompt engineer. Improve the following prompt for clarity, completeness, and usefulness. Return only the improved prompt without extra commentary."

// ErrNotConfigured is returned when no API key is available for the
// selected provider. Callers map this to a service-unavailable response.
var ErrNotConfigured = errors.New("enhance provider not configured")

// Client calls one upstream provider to improve a prompt. A Client built
// without an API key is still usable for introspection; Enhance fails
// with ErrNotConfigured.
type Client struct {
	name      string
	label     string
	model     string
	keyEnv    string
	oai       *openai.Client
	anthropic *anthropic.Client
}

type providerInfo struct {
	name      string
	label     string
	baseURL   string
	model     string
	keyEnv    string
	anthropic bool
}

var providerDefaults = map[string]providerInfo{
	"openai":     {name: "openai", label: "OpenAI", baseURL: "https://api.openai.com/v1", model: "gpt-4o", keyEnv: "OPENAI_API_KEY"},
	"gemini":     {name: "gemini", label: "Gemini", baseURL: "https://generativelanguage.googleapis.com/v1beta/openai", model: "gemini-1.5-pro", keyEnv: "GOOGLE_API_KEY"},
	"grok":       {name: "grok", label: "Grok", baseURL: "https://api.x.ai/v1", model: "grok-2-latest", keyEnv: "XAI_API_KEY"},
	"perplexity": {name: "perplexity", label: "Perplexity", baseURL: "https://api.perplexity.ai", model: "sonar-pro", keyEnv: "PERPLEXITY_API_KEY"},
	"minimax":    {name: "minimax", label: "MiniMax", baseURL: "https://api.minimax.chat/v1", model: "MiniMax-Text-01", keyEnv: "MINIMAX_API_KEY"},
	"claude":     {name: "claude", label: "Claude", model: "claude-3-5-sonnet-20241022", keyEnv: "ANTHROPIC_API_KEY", anthropic: true},
}

var providerAliases = map[string]string{
	"gpt":       "openai",
	"chatgpt":   "openai",
	"google":    "gemini",
	"xai":       "grok",
	"anthropic": "claude",
}

// resolve maps a configured provider to its canonical defaults. The
// config may override model and base URL; the empty provider means
// gemini for compatibility with older deployments.
func resolve(cfg config.EnhanceConfig) (providerInfo, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		name = "gemini"
	}
	if canonical, ok := providerAliases[name]; ok {
		name = canonical
	}

	info, ok := providerDefaults[name]
	if !ok {
		return providerInfo{}, fmt.Errorf("unknown enhance provider: %s", cfg.Provider)
	}
	if cfg.Model != "" {
		info.model = cfg.Model
	}
	if cfg.BaseURL != "" {
		info.baseURL = cfg.BaseURL
	}
	return info, nil
}

// New builds a Client for the configured provider. A missing API key is
// not an error so the server can start without one; the key is looked up
// in the config first, then the provider's environment variable.
func New(cfg config.EnhanceConfig) (*Client, error) {
	info, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(info.keyEnv)
	}

	c := &Client{
		name:   info.name,
		label:  info.label,
		model:  info.model,
		keyEnv: info.keyEnv,
	}
	if apiKey == "" {
		return c, nil
	}

	if info.anthropic {
		opts := []anthropic.ClientOption{}
		if info.baseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(info.baseURL))
		}
		c.anthropic = anthropic.NewClient(apiKey, opts...)
		return c, nil
	}

	oaiCfg := openai.DefaultConfig(apiKey)
	oaiCfg.BaseURL = info.baseURL
	c.oai = openai.NewClientWithConfig(oaiCfg)
	return c, nil
}

// Configured reports whether an API key was available at construction.
func (c *Client) Configured() bool {
	return c.oai != nil || c.anthropic != nil
}

// Label returns the provider's display name, e.g. "Gemini".
func (c *Client) Label() string {
	return c.label
}

// Model returns the model the client will call.
func (c *Client) Model() string {
	return c.model
}

// Enhance sends the prompt upstream and returns the improved version.
// An empty model uses the client's configured default.
func (c *Client) Enhance(ctx context.Context, prompt, model string, temperature *float64) (string, error) {
	if model == "" {
		model = c.model
	}
	switch {
	case c.anthropic != nil:
		return c.enhanceAnthropic(ctx, prompt, model, temperature)
	case c.oai != nil:
		return c.enhanceOpenAI(ctx, prompt, model, temperature)
	default:
		return "", fmt.Errorf("%w: %s not set", ErrNotConfigured, c.keyEnv)
	}
}

func (c *Client) enhanceOpenAI(ctx context.Context, prompt, model string, temperature *float64) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if temperature != nil {
		req.Temperature = float32(*temperature)
	}

	resp, err := c.oai.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s API returned no choices", c.name)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) enhanceAnthropic(ctx context.Context, prompt, model string, temperature *float64) (string, error) {
	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		System:    instruction,
		Messages:  []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
		MaxTokens: 2048,
	}
	if temperature != nil {
		t := float32(*temperature)
		req.Temperature = &t
	}

	resp, err := c.anthropic.CreateMessages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.name, err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%s API returned no content", c.name)
	}
	return strings.TrimSpace(resp.Content[0].GetText()), nil
}
