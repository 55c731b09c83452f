package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/vshagun/promptcraft/internal/classify"
)

// PreferenceSource exposes the stored user preference for a task type.
// A nil PreferenceSource means no preference data is available.
type PreferenceSource interface {
	// Preference returns the preferred tool ID for a task type, if any.
	Preference(taskType string) (string, bool)

	// Confidence returns the preference confidence in [0,1].
	Confidence(taskType string) float64
}

// RankedTool is one tool with its computed score for a ranking call.
type RankedTool struct {
	ToolID string `json:"toolId"`
	Score  int    `json:"score"`
}

// preferenceConfidenceFloor is the minimum confidence before a stored
// preference influences scores.
const preferenceConfidenceFloor = 0.3

// Rank scores every configured tool for the given task analysis and returns
// them in descending score order. Ties are broken in favor of the user's
// stored preferred tool for the task type; remaining ties keep roster
// declaration order.
//
// Scores are not clamped and may exceed the nominal 0-100 display range.
func Rank(analysis classify.Analysis, prefs PreferenceSource) []RankedTool {
	var userPref string
	var userConfidence float64
	if prefs != nil {
		if tool, ok := prefs.Preference(analysis.TaskType); ok {
			userPref = tool
			userConfidence = prefs.Confidence(analysis.TaskType)
		}
	}
	userPrefBoost := int(math.Floor(15 * userConfidence))

	ranked := make([]RankedTool, 0, len(Tools))
	for _, tool := range Tools {
		score := tool.Weight

		// Image generation: hard per-product rules. Claude and DeepSeek are
		// text-only; ChatGPT has DALL-E access, Gemini has Imagen, Perplexity
		// can return image references.
		if analysis.TaskType == classify.TaskImageGeneration {
			switch tool.ID {
			case "chatgpt":
				score += 40
			case "gemini":
				score += 15
			case "claude":
				score -= 50
			case "deepseek":
				score -= 40
			case "perplexity":
				score += 10
			}
		}

		if matchesTask(tool, analysis.TaskType) {
			score += 20
		}

		if userPref == tool.ID && userConfidence > preferenceConfidenceFloor {
			score += userPrefBoost
		}

		if strings.HasPrefix(analysis.TaskType, "enterprise-") ||
			analysis.TaskType == "technical-architecture" ||
			analysis.TaskType == "migration-planning" {
			switch tool.ID {
			case "claude":
				score += 25
			case "chatgpt":
				score += 15
			case "deepseek":
				if analysis.TaskType == "technical-architecture" {
					score += 20
				}
			}
		}

		if analysis.TaskType == classify.TaskBusinessWriting {
			switch tool.ID {
			case "chatgpt":
				score += 25
			case "claude":
				score += 10
			}
		}

		if analysis.TaskType == classify.TaskResearch {
			switch tool.ID {
			case "gemini", "perplexity":
				score += 15
			case "chatgpt":
				score += 5
			}
		}

		if analysis.TaskType == classify.TaskCoding {
			switch tool.ID {
			case "deepseek":
				score += 25
			case "chatgpt":
				score += 10
			}
		}

		ranked = append(ranked, RankedTool{ToolID: tool.ID, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score == ranked[j].Score {
			if ranked[i].ToolID == userPref {
				return true
			}
			return false
		}
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// matchesTask reports whether the task type (or one of its aliases) appears in
// the tool's strength tags.
func matchesTask(tool Profile, taskType string) bool {
	for _, s := range tool.Strengths {
		if s == taskType {
			return true
		}
	}
	for _, alias := range taskAliases[taskType] {
		for _, s := range tool.Strengths {
			if s == alias {
				return true
			}
		}
	}
	return false
}
