package generator

import (
	"strings"
	"testing"
)

func TestIsLikelyImagePrompt(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"draw a cat sitting on a windowsill", true},
		{"a photo of mountains at sunset", true},
		{"adjust the lighting and composition", true},
		{"an anime style character", true},
		{"write a business plan for a bakery", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsLikelyImagePrompt(tc.text); got != tc.want {
			t.Errorf("IsLikelyImagePrompt(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func executableFixture() string {
	return "Task to perform: Summarize the quarterly sales report for the leadership team\n\n" +
		"Requirements:\n" +
		"1. Highlight revenue trends across regions\n" +
		"2. Call out anomalies with supporting figures\n" +
		"3. Keep the summary under one page\n\n" +
		"Format: Structured summary with headed sections."
}

func TestIsExecutablePrompt(t *testing.T) {
	c := NewClient(DefaultConfig("http://worker.test"))

	if !c.isExecutablePrompt(executableFixture()) {
		t.Error("well-formed prompt rejected")
	}
	if c.isExecutablePrompt("") {
		t.Error("empty text accepted")
	}
	if c.isExecutablePrompt("Summarize the report.\n\nRequirements:\n1. Be brief") {
		t.Error("missing entry point accepted")
	}
	if c.isExecutablePrompt("Task to perform: something short") {
		t.Error("prompt without structure sections accepted")
	}

	meta := strings.Replace(executableFixture(), "Summarize", "Can you write a prompt for summarizing", 1)
	if c.isExecutablePrompt(meta) {
		t.Error("meta-commentary accepted")
	}
}

func TestValidatePromptNotContent(t *testing.T) {
	c := NewClient(DefaultConfig("http://worker.test"))

	if got := c.validatePromptNotContent(executableFixture()); !got.valid {
		t.Errorf("valid prompt rejected: %s", got.reason)
	}

	short := c.validatePromptNotContent("Task to perform: x")
	if short.valid {
		t.Error("short text accepted")
	}
	if !strings.Contains(short.reason, "too short") {
		t.Errorf("reason = %q, want mention of length", short.reason)
	}

	content := c.validatePromptNotContent(strings.Repeat("Here is your essay about penguins. ", 10))
	if content.valid {
		t.Error("end-user content accepted as prompt")
	}
	if !strings.HasPrefix(content.cleaned, "Task to perform:") {
		t.Error("cleaned text is not a prompt skeleton")
	}
	if !strings.Contains(content.cleaned, "Context: ") || !strings.HasSuffix(content.cleaned, "...") {
		t.Error("cleaned text does not carry the original content excerpt")
	}
}

func TestConvertContentToPrompt_TruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("Z", 500)
	out := convertContentToPrompt(long)
	if strings.Count(out, "Z") != 200 {
		t.Errorf("excerpt length = %d, want 200", strings.Count(out, "Z"))
	}
}

func TestEnsureCompletePrompt(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Do the thing.", "Do the thing."},
		{"List the results:", "List the results:"},
		{"Do the thing,", "Do the thing."},
		{"Analyze the data carefully. Then pro", "Analyze the data carefully."},
		{"Describe the full architecture in detail", "Describe the full architecture in detail."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ensureCompletePrompt(tc.in); got != tc.want {
			t.Errorf("ensureCompletePrompt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSuggestions(t *testing.T) {
	got := generateSuggestions("short prompt")
	if len(got) != 3 {
		t.Fatalf("suggestions = %v, want 3 entries", got)
	}

	full := executableFixture()
	got = generateSuggestions(full)
	for _, s := range got {
		if s == "Specify the expected output format" || s == "Add numbered steps for clarity" {
			t.Errorf("suggestion %q given for a prompt that already satisfies it", s)
		}
	}
}
