package prompt

import "fmt"

// Fields carries the inputs for one prompt assembly. List fields are
// expected to be normalized (NormalizeList) by the caller before Assemble.
// Temperature is a pointer because zero is a meaningful value distinct
// from absent; optional strings treat empty-after-trim as absent.
type Fields struct {
	Category        string   `json:"category"`
	Idea            string   `json:"idea"`
	Role            string   `json:"role,omitempty"`
	Sources         []string `json:"sources,omitempty"`
	Image           string   `json:"image,omitempty"`
	Tones           []string `json:"tones,omitempty"`
	OutputLength    string   `json:"output_length,omitempty"`
	OutputFormat    string   `json:"output_format,omitempty"`
	Extras          []string `json:"extras,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	MediaResolution string   `json:"media_resolution,omitempty"`
	Model           string   `json:"model,omitempty"`
	Provider        string   `json:"provider,omitempty"`
}

// The four document categories. The set is closed; Assemble rejects
// anything else, including case variants.
const (
	CategoryContentWriting  = "Content Writing"
	CategoryDesign          = "Design"
	CategoryCode            = "Code"
	CategoryImageGeneration = "Image Generation"
)

// Known target providers. Used only to pick a guidance paragraph; values
// outside the set degrade to generic guidance rather than failing.
const (
	ProviderChatGPT    = "ChatGPT"
	ProviderGrok       = "Grok"
	ProviderPerplexity = "Perplexity"
	ProviderGemini     = "Gemini"
	ProviderMiniMax    = "MiniMax"
)

// Media resolution levels for Image Generation guidance.
const (
	ResolutionLow    = "low"
	ResolutionMedium = "medium"
	ResolutionHigh   = "high"
)

// Categories returns the closed category set in display order.
func Categories() []string {
	return []string{CategoryContentWriting, CategoryDesign, CategoryCode, CategoryImageGeneration}
}

// ValidCategory reports whether c is exactly one of the known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryContentWriting, CategoryDesign, CategoryCode, CategoryImageGeneration:
		return true
	}
	return false
}

// Providers returns the closed provider set in display order.
func Providers() []string {
	return []string{ProviderChatGPT, ProviderGrok, ProviderPerplexity, ProviderGemini, ProviderMiniMax}
}

// ValidProvider reports whether p is exactly one of the known providers.
func ValidProvider(p string) bool {
	switch p {
	case ProviderChatGPT, ProviderGrok, ProviderPerplexity, ProviderGemini, ProviderMiniMax:
		return true
	}
	return false
}

// Resolutions returns the accepted media resolution levels.
func Resolutions() []string {
	return []string{ResolutionLow, ResolutionMedium, ResolutionHigh}
}

// ValidResolution reports whether r is one of the accepted levels.
func ValidResolution(r string) bool {
	switch r {
	case ResolutionLow, ResolutionMedium, ResolutionHigh:
		return true
	}
	return false
}

// ValidationError reports an input the assembler refuses to work with.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
