/*
Package generator implements the remote prompt-generation client.

It sends task descriptions to the worker endpoint, repairs truncated or
malformed JSON responses, validates that the returned text is an instructional
prompt rather than generated end-user content, retries with fallback models,
and synthesizes a deterministic local template when every remote attempt
fails. Every failure mode is recoverable: Generate returns a structured Result
and only errors on empty input or API misuse.
*/
package generator

// ModelCapability describes one model in the capability table.
type ModelCapability struct {
	// Name is the display name.
	Name string `json:"name"`

	// Executable indicates the model may be used for prompt generation in
	// strict mode. Chat-only models are disallowed there.
	Executable bool `json:"executable"`

	// Chat indicates the model supports chat usage.
	Chat bool `json:"chat"`

	// Description is a short capability summary.
	Description string `json:"description"`

	// Provider is the upstream provider identifier.
	Provider string `json:"provider"`

	// Default marks the model substituted when a disallowed model is requested.
	Default bool `json:"default"`
}

// modelOrder fixes a deterministic listing order for the capability table.
var modelOrder = []string{
	"gemini-3-flash-preview",
	"gpt-4o-mini",
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash",
	"llama-3.1-8b-instant",
}

// ModelCapabilities is the single source of truth for model selection.
var ModelCapabilities = map[string]ModelCapability{
	"gemini-3-flash-preview": {
		Name:        "Gemini 3 Flash",
		Executable:  true,
		Chat:        true,
		Description: "Fast, reliable prompt generation",
		Provider:    "google",
		Default:     true,
	},
	"gpt-4o-mini": {
		Name:        "GPT-4o Mini",
		Executable:  true,
		Chat:        true,
		Description: "OpenAI's fast model",
		Provider:    "openai",
	},
	"gemini-1.5-flash-latest": {
		Name:        "Gemini 1.5 Flash Latest",
		Executable:  true,
		Chat:        true,
		Description: "Latest Gemini Flash",
		Provider:    "google",
	},
	"gemini-1.5-flash": {
		Name:        "Gemini 1.5 Flash",
		Executable:  true,
		Chat:        true,
		Description: "Stable Gemini Flash",
		Provider:    "google",
	},
	"llama-3.1-8b-instant": {
		Name:        "LLaMA 3.1 Instant",
		Executable:  false,
		Chat:        true,
		Description: "Fast chat & execution (not for prompt generation)",
		Provider:    "groq",
	},
}

// AllowedModels returns the model IDs usable under the given mode, in table
// order. In strict mode only executable models qualify.
func AllowedModels(strict bool) []string {
	var allowed []string
	for _, id := range modelOrder {
		if strict && !ModelCapabilities[id].Executable {
			continue
		}
		allowed = append(allowed, id)
	}
	return allowed
}

// DefaultModelFor returns the default model for the given mode.
func DefaultModelFor(strict bool) string {
	allowed := AllowedModels(strict)
	for _, id := range allowed {
		if ModelCapabilities[id].Default {
			return id
		}
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return "gemini-3-flash-preview"
}

// ModelValidation is the outcome of validating a requested model against the
// capability table.
type ModelValidation struct {
	// Valid is true when the requested model is allowed as-is.
	Valid bool

	// Model is the model to use (the requested one, or the substitute).
	Model string

	// Reason explains the substitution; empty when Valid.
	Reason string

	// Corrected is true when the model was substituted.
	Corrected bool
}

// ValidateModelSelection checks a requested model against the capability
// table. A disallowed model is never used silently: the default model is
// substituted and the reason surfaced to the caller.
func ValidateModelSelection(model string, strict bool) ModelValidation {
	for _, id := range AllowedModels(strict) {
		if id == model {
			return ModelValidation{Valid: true, Model: model}
		}
	}

	mode := "Chat"
	if strict {
		mode = "Executable Prompt"
	}
	name := model
	if cap, ok := ModelCapabilities[model]; ok {
		name = cap.Name
	}

	return ModelValidation{
		Valid:     false,
		Model:     DefaultModelFor(strict),
		Reason:    "\"" + name + "\" is not available in " + mode + " mode.",
		Corrected: true,
	}
}
