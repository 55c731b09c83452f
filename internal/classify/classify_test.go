package classify

import (
	"strings"
	"testing"
)

func TestClassify_BusinessWriting(t *testing.T) {
	a := Classify("Write a follow-up email to the client about the demo")

	if a.TaskType != TaskBusinessWriting {
		t.Errorf("expected %q, got %q", TaskBusinessWriting, a.TaskType)
	}
	if a.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", a.Confidence)
	}
}

func TestClassify_EnterpriseCategoryOrder(t *testing.T) {
	// "roadmap" alone leaves enterprise-strategy below its threshold;
	// "architecture" + "infrastructure" qualify technical-architecture.
	a := Classify("Design the system architecture and infrastructure for our migration roadmap")

	if a.TaskType != "technical-architecture" {
		t.Errorf("expected technical-architecture, got %q", a.TaskType)
	}
	if a.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", a.Confidence)
	}
}

func TestClassify_EnterpriseThreshold(t *testing.T) {
	// One governance term is not enough.
	a := Classify("we need a governance doc")
	if a.TaskType == "governance-compliance" {
		t.Errorf("single term must not trigger an enterprise category, got %q", a.TaskType)
	}

	// Two distinct terms qualify.
	a = Classify("governance and compliance review")
	if a.TaskType != "governance-compliance" {
		t.Errorf("expected governance-compliance, got %q", a.TaskType)
	}
}

func TestClassify_ImagePriority(t *testing.T) {
	// Image terms short-circuit enterprise, business, and coding rules.
	a := Classify("Generate an image for the client email about our migration strategy code")

	if a.TaskType != TaskImageGeneration {
		t.Errorf("expected %q, got %q", TaskImageGeneration, a.TaskType)
	}
	if a.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %q", a.Confidence)
	}
}

func TestClassify_Coding(t *testing.T) {
	a := Classify("debug this python function")
	if a.TaskType != TaskCoding {
		t.Errorf("expected %q, got %q", TaskCoding, a.TaskType)
	}
}

func TestClassify_Research(t *testing.T) {
	a := Classify("investigate the competitor landscape")
	if a.TaskType != TaskResearch {
		t.Errorf("expected %q, got %q", TaskResearch, a.TaskType)
	}
}

func TestClassify_CreativeWriting(t *testing.T) {
	a := Classify("a short fiction narrative")
	if a.TaskType != TaskCreativeWriting {
		t.Errorf("expected %q, got %q", TaskCreativeWriting, a.TaskType)
	}
}

func TestClassify_LongFormFallback(t *testing.T) {
	// 850 neutral characters, no keyword category matching.
	text := strings.Repeat("zq ", 283) + "z"
	if len(text) <= 800 {
		t.Fatalf("test text too short: %d", len(text))
	}

	a := Classify(text)
	if a.TaskType != TaskLongForm {
		t.Errorf("expected %q, got %q", TaskLongForm, a.TaskType)
	}
	if a.Confidence != ConfidenceMedium {
		t.Errorf("expected medium confidence, got %q", a.Confidence)
	}
}

func TestClassify_LongFormCountsBytes(t *testing.T) {
	// 401 two-byte runes: 802 bytes crosses the threshold even though the
	// rune count stays under it.
	text := strings.Repeat("é", 401)
	if len(text) != 802 {
		t.Fatalf("test text is %d bytes, want 802", len(text))
	}

	a := Classify(text)
	if a.TaskType != TaskLongForm {
		t.Errorf("expected %q, got %q", TaskLongForm, a.TaskType)
	}
}

func TestClassify_StructuredPromptFallback(t *testing.T) {
	a := Classify("Task to perform: xyz\n\nRequirements:\n- one")
	if a.TaskType != TaskStructuredPrompt {
		t.Errorf("expected %q, got %q", TaskStructuredPrompt, a.TaskType)
	}

	a = Classify("Format: plain\nInstructions: do the thing")
	if a.TaskType != TaskStructuredPrompt {
		t.Errorf("expected %q, got %q", TaskStructuredPrompt, a.TaskType)
	}
}

func TestClassify_Default(t *testing.T) {
	a := Classify("hello there")
	if a.TaskType != TaskGeneral {
		t.Errorf("expected %q, got %q", TaskGeneral, a.TaskType)
	}
	if a.Confidence != ConfidenceMedium {
		t.Errorf("expected medium confidence, got %q", a.Confidence)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{
		"Write a follow-up email to the client about the demo",
		"governance and compliance review",
		"hello there",
		"",
	}
	for _, in := range inputs {
		first := Classify(in)
		second := Classify(in)
		if first != second {
			t.Errorf("classification of %q not deterministic: %v vs %v", in, first, second)
		}
	}
}
