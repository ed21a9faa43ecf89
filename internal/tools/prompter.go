package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gaurabsaha12345/master-prompter/internal/audit"
	"github.com/gaurabsaha12345/master-prompter/internal/config"
	"github.com/gaurabsaha12345/master-prompter/internal/enhance"
	"github.com/gaurabsaha12345/master-prompter/internal/logger"
	"github.com/gaurabsaha12345/master-prompter/internal/prompt"
	"github.com/gaurabsaha12345/master-prompter/internal/tokens"
)

var (
	auditor  *audit.Logger
	enhancer *enhance.Client
)

func getAuditor() *audit.Logger {
	if auditor != nil {
		return auditor
	}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	auditor = audit.New(cfg.Audit)
	return auditor
}

func getEnhancer() (*enhance.Client, error) {
	if enhancer != nil {
		return enhancer, nil
	}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	client, err := enhance.New(cfg.Enhance)
	if err != nil {
		return nil, err
	}
	enhancer = client
	return enhancer, nil
}

// OptimizePrompt assembles a structured prompt from the tool arguments.
func OptimizePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, ok := req.Params.Arguments["category"].(string)
	if !ok || category == "" {
		return mcp.NewToolResultError("category is required"), nil
	}
	idea, ok := req.Params.Arguments["idea"].(string)
	if !ok || strings.TrimSpace(idea) == "" {
		return mcp.NewToolResultError("idea is required"), nil
	}

	if !prompt.ValidCategory(category) {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid category: must be one of %s", strings.Join(prompt.Categories(), ", "))), nil
	}

	fields := prompt.Fields{
		Category:        category,
		Idea:            idea,
		Role:            stringArg(req, "role"),
		Sources:         prompt.NormalizeList(listArg(req, "sources")),
		Image:           stringArg(req, "image"),
		Tones:           prompt.NormalizeList(listArg(req, "tones")),
		OutputLength:    stringArg(req, "output_length"),
		OutputFormat:    stringArg(req, "output_format"),
		Extras:          prompt.NormalizeList(listArg(req, "extras")),
		Temperature:     floatArg(req, "temperature"),
		MediaResolution: stringArg(req, "media_resolution"),
		Model:           stringArg(req, "model"),
		Provider:        stringArg(req, "provider"),
	}

	text, err := prompt.Assemble(fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := getAuditor().Record("mcp", fields, text); err != nil {
		logger.Warn("Audit record failed: %v", err)
	}

	return mcp.NewToolResultText(text), nil
}

// EstimateTokens reports the approximate token count of a text.
func EstimateTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := req.Params.Arguments["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d", tokens.Estimate(text))), nil
}

// EnhancePrompt sends a prompt to the configured upstream model and
// returns the improved version.
func EnhancePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := req.Params.Arguments["prompt"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("prompt is required"), nil
	}

	client, err := getEnhancer()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("enhance provider unavailable: %v", err)), nil
	}
	if !client.Configured() {
		return mcp.NewToolResultError("enhance provider not configured: set an API key for the configured provider"), nil
	}

	enhanced, err := client.Enhance(ctx, text, stringArg(req, "model"), floatArg(req, "temperature"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("enhance failed: %v", err)), nil
	}
	return mcp.NewToolResultText(enhanced), nil
}

func stringArg(req mcp.CallToolRequest, key string) string {
	if v, ok := req.Params.Arguments[key].(string); ok {
		return v
	}
	return ""
}

func floatArg(req mcp.CallToolRequest, key string) *float64 {
	if v, ok := req.Params.Arguments[key].(float64); ok {
		return &v
	}
	return nil
}

// listArg accepts either a JSON array of strings or a single string;
// both forms feed NormalizeList which handles comma splitting.
func listArg(req mcp.CallToolRequest, key string) []string {
	switch v := req.Params.Arguments[key].(type) {
	case []interface{}:
		var items []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
