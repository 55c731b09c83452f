/*
Package ranking scores the supported AI chat tools against a classified task
and produces a total order.

The scoring function is a hand-tuned rule table specific to five named
products. The per-tool deltas (image-generation hard rules, category boosts)
encode known per-product capability and have no generalizable formula: if the
tool roster changes, the rules below must be re-specified by a domain owner,
not inferred.
*/
package ranking

// Profile describes one supported AI tool.
type Profile struct {
	// ID is the stable tool identifier (e.g. "chatgpt").
	ID string

	// Name is the display name.
	Name string

	// Strengths are the capability tags this tool is known to be good at.
	Strengths []string

	// Explanation is the human-readable reason shown when the tool is
	// recommended.
	Explanation string

	// Weight is the base suitability score before any task adjustments.
	Weight int
}

// Tools is the fixed roster, in declaration order. Declaration order is the
// stable tie-break for equal scores.
var Tools = []Profile{
	{
		ID:          "chatgpt",
		Name:        "ChatGPT",
		Strengths:   []string{"structured-prompt", "business-writing", "strategy", "email", "formatting", "instructions"},
		Explanation: "Best for structured prompts and business strategy documents",
		Weight:      92,
	},
	{
		ID:          "claude",
		Name:        "Claude",
		Strengths:   []string{"enterprise-strategy", "long-form", "analysis", "creative-writing", "documentation", "governance"},
		Explanation: "Excellent for enterprise analysis and strategic documentation",
		Weight:      94,
	},
	{
		ID:          "gemini",
		Name:        "Gemini",
		Strengths:   []string{"research", "technical-analysis", "real-time", "multimodal", "fact-checking", "education"},
		Explanation: "Great for technical research and competitive analysis",
		Weight:      88,
	},
	{
		ID:          "perplexity",
		Name:        "Perplexity",
		Strengths:   []string{"research", "citation", "academic", "market-research", "technical-analysis", "fact-checking"},
		Explanation: "Perfect for market research with citations",
		Weight:      90,
	},
	{
		ID:          "deepseek",
		Name:        "DeepSeek",
		Strengths:   []string{"technical-architecture", "coding", "problem-solving", "math", "reasoning", "architecture"},
		Explanation: "Specialized for technical architecture and coding tasks",
		Weight:      95,
	},
}

// taskAliases maps compound task-type labels to simpler tag synonyms used when
// matching against tool strengths.
var taskAliases = map[string][]string{
	"technical-architecture":    {"architecture"},
	"enterprise-strategy":       {"strategy"},
	"migration-planning":        {"migration"},
	"governance-compliance":     {"governance", "compliance"},
	"stakeholder-communication": {"stakeholder", "communication"},
	"digital-transformation":    {"transformation", "digital"},
	"workshop-facilitation":     {"workshop", "facilitation"},
	"risk-assessment":           {"risk", "assessment"},
}

// ByID returns the profile for a tool identifier.
func ByID(id string) (Profile, bool) {
	for _, tool := range Tools {
		if tool.ID == id {
			return tool, true
		}
	}
	return Profile{}, false
}
