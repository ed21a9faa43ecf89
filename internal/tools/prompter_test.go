package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatalf("expected content in result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestOptimizePromptTool(t *testing.T) {
	res, err := OptimizePrompt(context.Background(), callRequest(map[string]interface{}{
		"category": "Code",
		"idea":     "Build a URL shortener",
		"tones":    []interface{}{"Witty, Playful", "witty"},
	}))
	if err != nil {
		t.Fatalf("OptimizePrompt failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	text := resultText(t, res)
	if !strings.Contains(text, "### Goal\n\nBuild a URL shortener\n\n") {
		t.Fatalf("unexpected prompt: %s", text)
	}
	if !strings.Contains(text, "**Tone & Style:**\n- Witty\n- Playful\n\n") {
		t.Fatalf("expected normalized tones, got: %s", text)
	}
}

func TestOptimizePromptToolRejectsCategory(t *testing.T) {
	res, err := OptimizePrompt(context.Background(), callRequest(map[string]interface{}{
		"category": "code",
		"idea":     "anything",
	}))
	if err != nil {
		t.Fatalf("OptimizePrompt failed: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for lowercase category")
	}
	if !strings.Contains(resultText(t, res), "Invalid category") {
		t.Fatalf("unexpected error text: %s", resultText(t, res))
	}
}

func TestOptimizePromptToolRequiresIdea(t *testing.T) {
	res, err := OptimizePrompt(context.Background(), callRequest(map[string]interface{}{
		"category": "Design",
	}))
	if err != nil {
		t.Fatalf("OptimizePrompt failed: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for missing idea")
	}
}

func TestEstimateTokensTool(t *testing.T) {
	res, err := EstimateTokens(context.Background(), callRequest(map[string]interface{}{
		"text": "12345678",
	}))
	if err != nil {
		t.Fatalf("EstimateTokens failed: %v", err)
	}
	if got := resultText(t, res); got != "2" {
		t.Fatalf("expected 2 tokens, got %q", got)
	}
}

func TestEnhancePromptToolRequiresPrompt(t *testing.T) {
	res, err := EnhancePrompt(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("EnhancePrompt failed: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for missing prompt")
	}
}

func TestListArgForms(t *testing.T) {
	req := callRequest(map[string]interface{}{
		"sources": []interface{}{"a", "b"},
		"tones":   "Witty, Playful",
	})
	if got := listArg(req, "sources"); len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected array parse: %#v", got)
	}
	if got := listArg(req, "tones"); len(got) != 1 || got[0] != "Witty, Playful" {
		t.Fatalf("unexpected string parse: %#v", got)
	}
	if got := listArg(req, "missing"); got != nil {
		t.Fatalf("expected nil for missing arg, got %#v", got)
	}
}
