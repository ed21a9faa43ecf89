package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName identifies this MCP server to connecting clients.
	ServerName = "master-prompter"
	// ServerVersion is the protocol-visible release version.
	ServerVersion = "1.2.0"
)

// NewServer returns an MCP server with the prompter tool set registered.
func NewServer() *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion)

	s.AddTool(mcp.NewTool("optimize_prompt",
		mcp.WithDescription("Assemble a structured, provider-aware prompt from a raw idea"),
		mcp.WithString("category", mcp.Required(),
			mcp.Description("Exact category name: Content Writing, Design, Code, or Image Generation")),
		mcp.WithString("idea", mcp.Required(),
			mcp.Description("The raw idea or task the prompt is built around")),
		mcp.WithString("role", mcp.Description("Persona the target model should adopt")),
		mcp.WithArray("sources",
			mcp.Description("Reference material to draw on; items may be comma-separated"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("image", mcp.Description("Description of an attached screenshot or image")),
		mcp.WithArray("tones",
			mcp.Description("Tone and style keywords; items may be comma-separated"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("output_length", mcp.Description("Desired output length, e.g. 800 words")),
		mcp.WithString("output_format", mcp.Description("Desired output format, e.g. markdown table")),
		mcp.WithArray("extras",
			mcp.Description("Additional constraints or instructions"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("temperature", mcp.Description("Sampling temperature to request; 0 is a valid value")),
		mcp.WithString("media_resolution", mcp.Description("Image Generation only: low, medium, or high")),
		mcp.WithString("model", mcp.Description("Target model name, e.g. gpt-4o")),
		mcp.WithString("provider", mcp.Description("Target provider: ChatGPT, Grok, Perplexity, Gemini, or MiniMax")),
	), OptimizePrompt)

	s.AddTool(mcp.NewTool("estimate_tokens",
		mcp.WithDescription("Estimate the token count of a piece of text"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to estimate")),
		mcp.WithString("model", mcp.Description("Model hint; accepted for compatibility and ignored")),
	), EstimateTokens)

	s.AddTool(mcp.NewTool("enhance_prompt",
		mcp.WithDescription("Rewrite a prompt for clarity and completeness using the configured AI provider"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Prompt text to improve")),
		mcp.WithString("model", mcp.Description("Model override; defaults to the configured provider's model")),
		mcp.WithNumber("temperature", mcp.Description("Sampling temperature for the rewrite")),
	), EnhancePrompt)

	return s
}
