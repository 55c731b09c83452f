package generator

import (
	"regexp"
	"strings"
)

// imageMinLength is the relaxed minimum prompt length for image prompts.
const imageMinLength = 200

var imagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(draw|illustrate|paint|sketch|visualize|render|create.*image|generate.*picture|make.*art)\b`),
	regexp.MustCompile(`(?i)\b(photo|picture|image|artwork|graphic|visual|scene|view)\b`),
	regexp.MustCompile(`(?i)\b(background|foreground|composition|lighting|shading|texture|color|palette)\b`),
	regexp.MustCompile(`(?i)\b(portrait|landscape|still life|abstract|realistic|cartoon|anime|digital art)\b`),
}

var entryPointPattern = regexp.MustCompile(`(?i)^(task to perform|objective):`)

var structurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)requirements?:`),
	regexp.MustCompile(`(?i)instructions?:`),
	regexp.MustCompile(`(?i)format:`),
}

// metaPatterns flag text that talks about producing a prompt rather than
// being one.
var metaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)prompt for`),
	regexp.MustCompile(`(?i)template for`),
	regexp.MustCompile(`(?i)you should`),
	regexp.MustCompile(`(?i)i need you to`),
	regexp.MustCompile(`(?i)can you`),
	regexp.MustCompile(`(?i)would you`),
	regexp.MustCompile(`(?i)please create a prompt`),
}

var numberedListPattern = regexp.MustCompile(`\d+\.\s`)

// IsLikelyImagePrompt reports whether the text reads like an image-generation
// request.
func IsLikelyImagePrompt(text string) bool {
	if text == "" {
		return false
	}
	for _, p := range imagePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// isExecutablePrompt reports whether text is a well-formed executable prompt:
// a recognized entry point, at least one structural section, no
// meta-commentary, and sufficient length.
func (c *Client) isExecutablePrompt(text string) bool {
	if text == "" {
		return false
	}

	if !entryPointPattern.MatchString(text) {
		return false
	}

	structureScore := 0
	for _, p := range structurePatterns {
		if p.MatchString(text) {
			structureScore++
		}
	}
	if structureScore < 1 {
		return false
	}

	for _, p := range metaPatterns {
		if p.MatchString(text) {
			return false
		}
	}

	if IsLikelyImagePrompt(text) {
		return len(text) >= imageMinLength
	}
	return len(text) >= c.cfg.MinPromptLength
}

// contentValidation is the outcome of checking that generated text is an
// instructional prompt rather than end-user content.
type contentValidation struct {
	valid   bool
	reason  string
	cleaned string
}

// validatePromptNotContent checks that text looks like a prompt. Invalid text
// is not discarded: a converted prompt skeleton wrapping the original content
// is returned for the caller to use.
func (c *Client) validatePromptNotContent(text string) contentValidation {
	if text == "" {
		return contentValidation{valid: false, reason: "Empty or invalid text", cleaned: text}
	}

	minLength := c.cfg.MinPromptLength
	kind := "Prompt"
	if IsLikelyImagePrompt(text) {
		minLength = imageMinLength
		kind = "Image"
	}

	if len(text) < minLength {
		return contentValidation{
			valid:   false,
			reason:  kind + " too short",
			cleaned: convertContentToPrompt(text),
		}
	}

	if !entryPointPattern.MatchString(text) {
		return contentValidation{
			valid:   false,
			reason:  `Missing entry point "Task to perform:" or "Objective:"`,
			cleaned: convertContentToPrompt(text),
		}
	}

	return contentValidation{valid: true, reason: "Valid executable prompt", cleaned: text}
}

// convertContentToPrompt wraps accidental end-user content in an executable
// prompt skeleton, preserving a truncated excerpt as context.
func convertContentToPrompt(content string) string {
	excerpt := content
	if len(excerpt) > 200 {
		excerpt = excerpt[:200]
	}

	return `Task to perform: Produce the requested output according to requirements

Requirements:
1. Analyze input requirements carefully
2. Generate comprehensive, detailed output
3. Follow appropriate formatting guidelines
4. Consider relevant constraints and edge cases
5. Ensure professional quality and accuracy
6. Structure information logically and clearly

Format: Well-structured, actionable output

Context: ` + excerpt + `...`
}

// ensureCompletePrompt trims a dangling fragment left by a truncated stream
// so the prompt ends on a complete sentence.
func ensureCompletePrompt(prompt string) string {
	result := strings.TrimSpace(prompt)
	if result == "" {
		return result
	}

	last := result[len(result)-1:]
	switch last {
	case ".", "!", "?", ":", ")", "]", "}":
		return result
	case ",", "-", "—", "–", ";":
		result = result[:len(result)-1]
	}

	sentences := strings.FieldsFunc(result, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	if len(sentences) == 0 {
		return result + "."
	}

	lastSentence := strings.TrimSpace(sentences[len(sentences)-1])
	if len(lastSentence) < 10 || len(strings.Fields(lastSentence)) < 3 {
		if len(sentences) > 1 {
			return strings.Join(sentences[:len(sentences)-1], ".") + "."
		}
		return result
	}
	return result + "."
}

// generateSuggestions produces up to three improvement hints for a prompt.
func generateSuggestions(prompt string) []string {
	var suggestions []string

	if len(prompt) < 200 {
		suggestions = append(suggestions, "Add more specific requirements")
	}
	if !strings.Contains(prompt, "Format:") {
		suggestions = append(suggestions, "Specify the expected output format")
	}
	if !numberedListPattern.MatchString(prompt) {
		suggestions = append(suggestions, "Add numbered steps for clarity")
	}
	if len(prompt) > 800 {
		suggestions = append(suggestions, "Consider breaking into smaller tasks")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
