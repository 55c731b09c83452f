package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vshagun/promptcraft/internal/generator"
	"github.com/vshagun/promptcraft/internal/session"
)

func TestCraftOutput_JSONShape(t *testing.T) {
	out := craftOutput{
		CraftResult: session.CraftResult{
			Generation:      generator.Result{Success: true, Prompt: "Task to perform: x"},
			RecommendedTool: "chatgpt",
		},
		Metrics: generator.Metrics{Requests: 1, LocalFallbacks: 1},
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)

	for _, key := range []string{`"generatorMetrics"`, `"requests":1`, `"localFallbacks":1`, `"recommendedTool":"chatgpt"`} {
		if !strings.Contains(s, key) {
			t.Errorf("output %s missing %s", s, key)
		}
	}
	if strings.Contains(s, `"CraftResult"`) {
		t.Error("embedded result not flattened")
	}
}
