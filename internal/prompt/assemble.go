package prompt

import (
	"strconv"
	"strings"
)

// Assemble renders the full prompt for the given fields: an intro and
// metadata header, the category's fixed section structure seeded with
// the idea, optional guidance sections, and a guardrails/checklist
// closing. It returns a *ValidationError when the category is not an
// exact member of the known set or the idea is blank. Unknown providers
// and resolutions degrade to generic guidance instead of failing.
func Assemble(f Fields) (string, error) {
	if !ValidCategory(f.Category) {
		return "", &ValidationError{Field: "category", Reason: "must be one of: " + strings.Join(Categories(), ", ")}
	}
	if strings.TrimSpace(f.Idea) == "" {
		return "", &ValidationError{Field: "idea", Reason: "must not be empty"}
	}
	f = f.sanitized()

	var out strings.Builder
	writeHeader(&out, f)
	writeStructure(&out, f)
	writeSection(&out, "Guardrails", strings.Join(guardrails, "\n"))
	writeSection(&out, "Success Checklist", strings.Join(successChecklist, "\n"))
	return out.String(), nil
}

// sanitized trims the optional free-text fields so whitespace-only
// input behaves as absent.
func (f Fields) sanitized() Fields {
	f.Role = strings.TrimSpace(f.Role)
	f.Image = strings.TrimSpace(f.Image)
	f.OutputLength = strings.TrimSpace(f.OutputLength)
	f.OutputFormat = strings.TrimSpace(f.OutputFormat)
	f.MediaResolution = strings.TrimSpace(f.MediaResolution)
	f.Model = strings.TrimSpace(f.Model)
	f.Provider = strings.TrimSpace(f.Provider)
	return f
}

// writeHeader emits the intro sentence followed by the metadata labels.
// The intro carries no trailing separator, so the first label renders on
// the same line.
func writeHeader(out *strings.Builder, f Fields) {
	out.WriteString(intro(f.Category, f.Role))
	writeLabel(out, "Category", f.Category)
	writeLabel(out, "Role", f.Role)
	writeLabel(out, "Target Provider", f.Provider)
	writeBullets(out, "Tone & Style", f.Tones)
	writeRequirements(out, f)
	writeBullets(out, "Source/Reference Material", f.Sources)
	writeLabel(out, "Screenshot/Image Context", f.Image)
}

// intro opens the prompt with the acting role and category objective.
// A user-supplied role has any "Act as" wording stripped before the
// fixed prefix is applied, so the phrase never doubles up.
func intro(category, role string) string {
	rolePart := "Act as an expert in this domain"
	if role != "" {
		rolePart = "Act as " + strings.TrimSpace(strings.ReplaceAll(role, "Act as", ""))
	}
	return rolePart + ". Your objective is to deliver a high-quality output for the following category: " + category +
		". Follow the structure and constraints precisely. If information is missing, state reasonable assumptions and proceed."
}

// writeRequirements emits the Output Requirements block when at least
// one of its fields is set. A non-nil temperature counts as set even at
// zero.
func writeRequirements(out *strings.Builder, f Fields) {
	var lines []string
	if f.OutputLength != "" {
		lines = append(lines, "Length: "+f.OutputLength)
	}
	if f.OutputFormat != "" {
		lines = append(lines, "Format: "+f.OutputFormat)
	}
	if len(f.Extras) > 0 {
		lines = append(lines, "Extras: "+strings.Join(f.Extras, ", "))
	}
	if f.Temperature != nil {
		lines = append(lines, "Temperature: "+strconv.FormatFloat(*f.Temperature, 'g', -1, 64))
	}
	if f.MediaResolution != "" {
		lines = append(lines, "Media Resolution: "+f.MediaResolution)
	}
	if f.Model != "" {
		lines = append(lines, "Target Model: "+f.Model)
	}
	if f.Provider != "" {
		lines = append(lines, "Provider: "+f.Provider)
	}
	if len(lines) == 0 {
		return
	}
	out.WriteString("**Output Requirements:**\n")
	for i, line := range lines {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString("- ")
		out.WriteString(line)
	}
	out.WriteString("\n\n")
}

// SectionTitles lists the "### " sections Assemble renders for these
// fields, in order. Useful for summarizing a prompt without storing it.
func SectionTitles(f Fields) []string {
	f = f.sanitized()
	var titles []string
	for _, s := range categorySections[f.Category] {
		titles = append(titles, s.title)
	}
	if f.Category == CategoryImageGeneration && f.MediaResolution != "" {
		titles = append(titles, "Resolution Guidance")
	}
	if f.Provider != "" {
		titles = append(titles, "Provider Guidance")
	}
	return append(titles, "Guardrails", "Success Checklist")
}

// writeStructure emits the category's section plan, then the guidance
// sections that depend on resolution and provider.
func writeStructure(out *strings.Builder, f Fields) {
	for i, s := range categorySections[f.Category] {
		body := s.body
		if i == 0 {
			body = f.Idea
		}
		writeSection(out, s.title, body)
	}
	if f.Category == CategoryImageGeneration && f.MediaResolution != "" {
		writeSection(out, "Resolution Guidance", resolutionHint(f.MediaResolution))
	}
	if f.Provider != "" {
		writeSection(out, "Provider Guidance", providerHint(f.Provider))
	}
}

func writeSection(out *strings.Builder, title, body string) {
	out.WriteString("### ")
	out.WriteString(title)
	out.WriteString("\n\n")
	out.WriteString(strings.TrimSpace(body))
	out.WriteString("\n\n")
}

func writeLabel(out *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	out.WriteString("**")
	out.WriteString(label)
	out.WriteString(":** ")
	out.WriteString(value)
	out.WriteString("\n\n")
}

func writeBullets(out *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	out.WriteString("**")
	out.WriteString(label)
	out.WriteString(":**\n")
	for i, item := range items {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString("- ")
		out.WriteString(item)
	}
	out.WriteString("\n\n")
}
