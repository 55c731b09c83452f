/*
Package classify maps free-text task descriptions to discrete task-type labels.

Classification is purely lexical: ordered, first-match-wins, case-insensitive
substring matching against fixed term lists. There is no tokenization, stemming,
or negation handling; a text containing "no architecture needed" still counts
as an architecture-term match. The rule order and the asymmetric thresholds
(2 matching terms for enterprise categories, 1 for business/coding/research)
are load-bearing for downstream tool ranking and must not be normalized.
*/
package classify

import "strings"

// Confidence expresses how strongly a rule matched.
type Confidence string

const (
	// ConfidenceHigh means a keyword rule matched directly.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means a structural or length fallback matched.
	ConfidenceMedium Confidence = "medium"
)

// Task type labels produced by Classify.
const (
	TaskGeneral          = "general"
	TaskImageGeneration  = "image-generation"
	TaskBusinessWriting  = "business-writing"
	TaskCoding           = "coding"
	TaskResearch         = "research"
	TaskCreativeWriting  = "creative-writing"
	TaskLongForm         = "long-form"
	TaskStructuredPrompt = "structured-prompt"
)

// Analysis is the result of classifying one input string.
type Analysis struct {
	TaskType   string     `json:"taskType"`
	Confidence Confidence `json:"confidence"`
}

// longFormThreshold is the byte length above which otherwise-unmatched text
// is classified as long-form.
const longFormThreshold = 800

// imageTerms short-circuit every other rule: an image request phrased with
// business or coding vocabulary must still route to an image-capable tool.
var imageTerms = []string{
	"image", "picture", "photo", "photograph",
	"illustration", "art", "artwork",
	"generate an image", "create an image",
	"digital painting", "drawing", "sketch",
	"render", "visual", "portrait", "scene",
}

// enterpriseCategory is a keyword rule requiring a minimum number of distinct
// matching terms before it qualifies.
type enterpriseCategory struct {
	taskType   string
	terms      []string
	minMatches int
}

// enterpriseCategories are checked in declaration order; the first category
// reaching its threshold wins.
var enterpriseCategories = []enterpriseCategory{
	{
		taskType:   "enterprise-strategy",
		terms:      []string{"strategy", "roadmap", "vision", "initiative", "planning"},
		minMatches: 2,
	},
	{
		taskType:   "technical-architecture",
		terms:      []string{"architecture", "system design", "infrastructure", "solution design"},
		minMatches: 2,
	},
	{
		taskType:   "migration-planning",
		terms:      []string{"migration", "transition", "upgrade", "modernization", "legacy"},
		minMatches: 2,
	},
	{
		taskType:   "governance-compliance",
		terms:      []string{"governance", "compliance", "policy", "standard", "regulation"},
		minMatches: 2,
	},
	{
		taskType:   "stakeholder-communication",
		terms:      []string{"stakeholder", "executive", "board", "leadership", "presentation"},
		minMatches: 2,
	},
}

// businessTerms qualify on a single match.
var businessTerms = []string{
	"email", "proposal", "client", "report", "business",
	"professional", "presentation", "deck", "follow-up", "demo",
}

var codingTerms = []string{
	"code", "function", "algorithm", "program", "debug", "api", "javascript", "python",
}

var researchTerms = []string{
	"research", "analyze", "study", "compare", "investigate", "market", "competitor",
}

var creativeTerms = []string{
	"story", "creative", "imagine", "narrative", "fiction", "character",
}

// Classify returns the task type for the given text. It never fails; text
// matching no rule is classified as general with medium confidence.
func Classify(text string) Analysis {
	lower := strings.ToLower(text)

	for _, term := range imageTerms {
		if strings.Contains(lower, term) {
			return Analysis{TaskType: TaskImageGeneration, Confidence: ConfidenceHigh}
		}
	}

	for _, cat := range enterpriseCategories {
		matches := 0
		for _, term := range cat.terms {
			if strings.Contains(lower, term) {
				matches++
			}
		}
		if matches >= cat.minMatches {
			return Analysis{TaskType: cat.taskType, Confidence: ConfidenceHigh}
		}
	}

	for _, term := range businessTerms {
		if strings.Contains(lower, term) {
			return Analysis{TaskType: TaskBusinessWriting, Confidence: ConfidenceHigh}
		}
	}

	for _, term := range codingTerms {
		if strings.Contains(lower, term) {
			return Analysis{TaskType: TaskCoding, Confidence: ConfidenceHigh}
		}
	}

	for _, term := range researchTerms {
		if strings.Contains(lower, term) {
			return Analysis{TaskType: TaskResearch, Confidence: ConfidenceHigh}
		}
	}

	for _, term := range creativeTerms {
		if strings.Contains(lower, term) {
			return Analysis{TaskType: TaskCreativeWriting, Confidence: ConfidenceHigh}
		}
	}

	if len(text) > longFormThreshold {
		return Analysis{TaskType: TaskLongForm, Confidence: ConfidenceMedium}
	}

	if (strings.Contains(lower, "task to perform:") && strings.Contains(lower, "requirements:")) ||
		(strings.Contains(lower, "format:") && strings.Contains(lower, "instructions:")) {
		return Analysis{TaskType: TaskStructuredPrompt, Confidence: ConfidenceMedium}
	}

	return Analysis{TaskType: TaskGeneral, Confidence: ConfidenceMedium}
}
