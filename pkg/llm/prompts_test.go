package llm

import (
	"strings"
	"testing"

	"github.com/hmandava/career-compass/pkg/plan"
)

func TestBuildPlanPromptInterpolatesInputsVerbatim(t *testing.T) {
	req := plan.Request{
		Goal:       "Data Scientist",
		SkillLevel: "Beginner",
		Skills:     "Python, SQL",
		Hours:      "10",
	}

	prompt := buildPlanPrompt(req)

	inputs := []string{"Data Scientist", "Beginner", "Python, SQL", "10"}
	for _, input := range inputs {
		if !strings.Contains(prompt, input) {
			t.Errorf("Prompt missing input '%s'", input)
		}
	}
}

func TestBuildPlanPromptDeclaresOutputShape(t *testing.T) {
	prompt := buildPlanPrompt(plan.Request{
		Goal:       "Backend Engineer",
		SkillLevel: "Intermediate",
		Skills:     "Go",
		Hours:      "8",
	})

	required := []string{
		`"weekly_plan"`,
		`"week"`,
		`"topic"`,
		`"details"`,
		`"resources"`,
		"exactly 8",
		"ONLY a valid JSON object",
	}

	for _, fragment := range required {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("Prompt missing required fragment '%s'", fragment)
		}
	}
}

func TestBuildPlanPromptNoEscaping(t *testing.T) {
	// Inputs are embedded as-is, quotes and all.
	req := plan.Request{
		Goal:       `DevOps "SRE" Engineer`,
		SkillLevel: "Advanced",
		Skills:     "Kubernetes & Terraform",
		Hours:      "12",
	}

	prompt := buildPlanPrompt(req)

	if !strings.Contains(prompt, `DevOps "SRE" Engineer`) {
		t.Error("Prompt should contain goal verbatim, including quotes")
	}

	if !strings.Contains(prompt, "Kubernetes & Terraform") {
		t.Error("Prompt should contain skills verbatim")
	}
}
