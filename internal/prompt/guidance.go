package prompt

import "strings"

// resolutionHints map a media resolution level to rendering guidance.
// Lookup is on the trimmed, lowercased value.
var resolutionHints = map[string]string{
	ResolutionLow:    "Use compact outputs. Suggested short-edge ~512px; prioritize speed over detail.",
	ResolutionMedium: "Balanced quality. Suggested short-edge ~768px; maintain good detail with moderate compute.",
	ResolutionHigh:   "High fidelity. Suggested short-edge 1024–2048px; expect longer render times and larger files.",
}

const resolutionHintDefault = "No specific resolution preference provided."

// resolutionHint returns the guidance paragraph for a resolution level,
// degrading to a neutral line when the level is unknown.
func resolutionHint(res string) string {
	if hint, ok := resolutionHints[strings.ToLower(strings.TrimSpace(res))]; ok {
		return hint
	}
	return resolutionHintDefault
}

// providerHints map a known target provider to prompting guidance.
// Lookup is on the trimmed value, case preserved.
var providerHints = map[string]string{
	ProviderChatGPT:    "Best for versatile tasks; emphasize few-shot examples, persona-based instructions, and explicit constraints.",
	ProviderGrok:       "Leverage witty tone and real-time context; specify when humor is appropriate and require source links for facts.",
	ProviderPerplexity: "Prioritize cited, research-oriented outputs; require sources with URLs and a brief evidence summary.",
	ProviderGemini:     "Strong multimodal reasoning; allow step-by-step planning and image context; request concise rationale and final answer.",
	ProviderMiniMax:    "Effective for multilingual and multimodal tasks; include language preference and cultural adaptation notes.",
}

const providerHintDefault = "General provider; use standard best practices (persona, few-shot, constraints, and evaluation criteria)."

// providerHint returns the guidance paragraph for a provider, degrading
// to generic best practices when the provider is unknown.
func providerHint(provider string) string {
	if hint, ok := providerHints[strings.TrimSpace(provider)]; ok {
		return hint
	}
	return providerHintDefault
}
