package generator

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The worker is known to return incomplete JSON streams. Decoding is a
// best-effort, three-step contract: strict parse, then brace-balancing
// repair, then single-field extraction. Only when all three fail is the
// response treated as a transport error.

var (
	resultFieldPattern = regexp.MustCompile(`"result"\s*:\s*"([^"]*)"`)
	promptFieldPattern = regexp.MustCompile(`"prompt"\s*:\s*"([^"]*)"`)
	trailingCommaObj   = regexp.MustCompile(`,\s*}`)
	trailingCommaArr   = regexp.MustCompile(`,\s*]`)
)

// decodeStrict attempts a plain JSON parse.
func decodeStrict(body []byte, v any) error {
	return json.Unmarshal(body, v)
}

// repairJSON attempts to fix an incomplete JSON document: strip a dangling
// terminator, cut back to the last balanced brace (or close the object), and
// remove trailing commas. Returns false when no parseable document results.
func repairJSON(body []byte, v any) bool {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return false
	}

	if strings.HasSuffix(text, ",") || strings.HasSuffix(text, `"`) || strings.HasSuffix(text, "'") {
		text = text[:len(text)-1]
	}

	if strings.HasPrefix(text, "{") && !strings.HasSuffix(text, "}") {
		braceCount := 0
		lastComplete := -1
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case '{':
				braceCount++
			case '}':
				braceCount--
			}
			if braceCount == 0 {
				lastComplete = i
			}
		}
		if lastComplete != -1 {
			text = text[:lastComplete+1]
		} else {
			text += "}"
		}
	}

	text = trailingCommaObj.ReplaceAllString(text, "}")
	text = trailingCommaArr.ReplaceAllString(text, "]")

	return json.Unmarshal([]byte(text), v) == nil
}

// extractPartialPrompt pulls a partial "result" or "prompt" field out of an
// unparseable response. Returns ok=false when neither field is present.
func extractPartialPrompt(body []byte) (string, bool) {
	text := string(body)

	if m := resultFieldPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
		return m[1], true
	}
	if m := promptFieldPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
		return m[1], true
	}
	return "", false
}
