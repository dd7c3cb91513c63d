package llm

import (
	"fmt"

	"github.com/hmandava/career-compass/pkg/plan"
)

// buildPlanPrompt creates the learning plan generation prompt. The four user
// inputs are interpolated verbatim.
func buildPlanPrompt(req plan.Request) (prompt string) {
	prompt = fmt.Sprintf(`You are an expert career development coach. Your task is to generate a response containing ONLY a valid JSON object. Do not include markdown code fences or any text before or after the JSON object.

The JSON object must have a single root key "weekly_plan". This key must contain an array of exactly 8 objects, where each object represents a week.
Each weekly object must have the following keys: "week", "topic", "details" (as a list of strings), and "resources" (as a list of strings).

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "weekly_plan": [
    {
      "week": "Week 1",
      "topic": "topic for the week",
      "details": ["what to study", "what to practice"],
      "resources": ["suggested resource"]
    }
  ]
}

Create this JSON for a user with the following details:
- Goal: "%s"
- Skill Level: %s
- Skills to Learn: %s
- Weekly Time: %s hours`,
		req.Goal, req.SkillLevel, req.Skills, req.Hours)

	return prompt
}
