/*
Package scoring evaluates prompt quality. A remote scorer is preferred; when
it is unreachable, slow, or returns garbage, a deterministic local heuristic
produces the score instead and the result is flagged as mock data.
*/
package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	clarityBase   = 10
	structureBase = 10
	contextBase   = 10

	clarityCap   = 20
	structureCap = 15
	contextCap   = 15
)

var (
	structureSectionPattern = regexp.MustCompile(`(?i)(task|objective|requirements|instructions):`)
	formatSectionPattern    = regexp.MustCompile(`(?i)format:`)
	numberedStepPattern     = regexp.MustCompile(`\d+\.\s`)
)

// Score is a prompt quality assessment. TotalScore always equals the sum of
// the three component scores.
type Score struct {
	Clarity    int    `json:"clarityAndIntent"`
	Structure  int    `json:"structure"`
	Context    int    `json:"contextAndRole"`
	TotalScore int    `json:"totalScore"`
	Grade      string `json:"grade"`
	Feedback   string `json:"feedback"`

	// Tool is the tool the prompt was scored against.
	Tool string `json:"tool,omitempty"`

	// IsMockData marks a locally computed heuristic score.
	IsMockData bool `json:"isMockData,omitempty"`
}

// HeuristicScore computes a deterministic local quality score from surface
// features of the prompt text.
func HeuristicScore(prompt string) Score {
	if strings.TrimSpace(prompt) == "" {
		return Score{Grade: "Inadequate", Feedback: "Prompt is empty or invalid."}
	}

	clarity := clarityBase
	if len(prompt) > 500 {
		clarity += 5
	}
	if len(strings.Fields(prompt)) > 100 {
		clarity += 3
	}
	if clarity > clarityCap {
		clarity = clarityCap
	}

	structure := structureBase
	if len(strings.Split(prompt, "\n")) > 5 {
		structure += 5
	}
	if structureSectionPattern.MatchString(prompt) {
		structure += 8
	}
	if formatSectionPattern.MatchString(prompt) {
		structure += 5
	}
	if structure > structureCap {
		structure = structureCap
	}

	context := contextBase
	if numberedStepPattern.MatchString(prompt) {
		context += 5
	}
	if context > contextCap {
		context = contextCap
	}

	total := clarity + structure + context
	grade := gradeFor(total)

	return Score{
		Clarity:    clarity,
		Structure:  structure,
		Context:    context,
		TotalScore: total,
		Grade:      grade,
		Feedback:   feedbackFor(total, grade),
	}
}

func gradeFor(total int) string {
	switch {
	case total >= 45:
		return "Excellent"
	case total >= 40:
		return "Very Good"
	case total >= 30:
		return "Good"
	case total >= 20:
		return "Fair"
	case total >= 10:
		return "Poor"
	default:
		return "Inadequate"
	}
}

func feedbackFor(total int, grade string) string {
	if total >= 40 {
		return fmt.Sprintf("Grade: %s. Excellent prompt structure!", grade)
	}
	return fmt.Sprintf("Grade: %s. Consider adding more specific requirements.", grade)
}
