/*
Package platform holds the launchable AI platform catalog: every destination
the user can hand a crafted prompt to, with its launch URL and display
metadata. The catalog is a superset of the ranked tool profiles; platforms
like Copilot and Grok are launchable but never ranked.
*/
package platform

// Platform describes one launchable AI destination.
type Platform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	LaunchURL   string   `json:"launchUrl"`
}

// Platforms is the catalog, in display order.
var Platforms = []Platform{
	{
		ID:          "gemini",
		Name:        "Google Gemini",
		Color:       "#8B5CF6",
		Description: "Advanced reasoning and multimodal capabilities",
		Tags:        []string{"Multimodal", "Advanced", "Google"},
		LaunchURL:   "https://gemini.google.com/",
	},
	{
		ID:          "chatgpt",
		Name:        "ChatGPT",
		Color:       "#10A37F",
		Description: "Industry-leading conversational AI",
		Tags:        []string{"Conversational", "Popular", "OpenAI"},
		LaunchURL:   "https://chat.openai.com/",
	},
	{
		ID:          "claude",
		Name:        "Anthropic Claude",
		Color:       "#D4A574",
		Description: "Constitutional AI with safety focus",
		Tags:        []string{"Safe", "Contextual", "Anthropic"},
		LaunchURL:   "https://claude.ai/",
	},
	{
		ID:          "perplexity",
		Name:        "Perplexity AI",
		Color:       "#6B7280",
		Description: "Search-enhanced AI with citations",
		Tags:        []string{"Search", "Citations", "Real-time"},
		LaunchURL:   "https://www.perplexity.ai/",
	},
	{
		ID:          "deepseek",
		Name:        "DeepSeek",
		Color:       "#3B82F6",
		Description: "Code-focused AI with reasoning",
		Tags:        []string{"Code", "Developer", "Reasoning"},
		LaunchURL:   "https://chat.deepseek.com/",
	},
	{
		ID:          "copilot",
		Name:        "Microsoft Copilot",
		Color:       "#0078D4",
		Description: "Microsoft-powered AI assistant",
		Tags:        []string{"Microsoft", "Productivity", "Office"},
		LaunchURL:   "https://copilot.microsoft.com/",
	},
	{
		ID:          "grok",
		Name:        "Grok AI",
		Color:       "#FF6B35",
		Description: "Real-time knowledge AI",
		Tags:        []string{"Real-time", "X", "Elon"},
		LaunchURL:   "https://grok.x.ai/",
	},
}

// ByID returns the platform with the given ID.
func ByID(id string) (Platform, bool) {
	for _, p := range Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// FilterByTags returns platforms carrying at least one of the given tags.
func FilterByTags(tags []string) []Platform {
	var out []Platform
	for _, p := range Platforms {
		if hasAnyTag(p, tags) {
			out = append(out, p)
		}
	}
	return out
}

func hasAnyTag(p Platform, tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
