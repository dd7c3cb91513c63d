package plan

import (
	"github.com/pkg/errors"
)

// Request carries the four user inputs that drive plan generation.
type Request struct {
	Goal       string `json:"goal"`
	SkillLevel string `json:"skillLevel"`
	Skills     string `json:"skills"`
	Hours      string `json:"hours"`
}

// LearningPlan is the 8-week learning schedule returned by the AI service.
type LearningPlan struct {
	WeeklyPlan []WeekEntry `json:"weekly_plan"`
}

// WeekEntry represents a single week of the plan.
type WeekEntry struct {
	Week      string   `json:"week"`
	Topic     string   `json:"topic"`
	Details   []string `json:"details"`
	Resources []string `json:"resources"`
}

// Validate checks that the plan carries the weekly_plan array. Per-entry
// validation is deferred to rendering.
func (p *LearningPlan) Validate() (err error) {
	if p.WeeklyPlan == nil {
		err = errors.New("plan is missing the weekly_plan array")
		return err
	}

	return err
}

// Validate checks that a week entry has everything rendering needs. A nil
// Details or Resources slice means the key was absent from the source JSON;
// an empty list is acceptable, a missing one is not.
func (e *WeekEntry) Validate() (err error) {
	if e.Week == "" {
		err = errors.New("week entry missing week label")
		return err
	}

	if e.Topic == "" {
		err = errors.Errorf("week entry %s missing topic", e.Week)
		return err
	}

	if e.Details == nil {
		err = errors.Errorf("week entry %s missing details list", e.Week)
		return err
	}

	if e.Resources == nil {
		err = errors.Errorf("week entry %s missing resources list", e.Week)
		return err
	}

	return err
}
