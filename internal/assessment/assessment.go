package assessment

import "fmt"

// Category separates personality instruments from clinical screening tools.
const (
	CategoryPersonality = "personality"
	CategoryClinical    = "clinical"
)

// Question is one scored item. Reverse items are reflected across the
// response-scale midpoint before aggregation.
type Question struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Scale   string `json:"scale"`
	Reverse bool   `json:"reverse,omitempty"`
}

// ResponseOption is one point on the instrument's answer scale.
type ResponseOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ScoringRange maps a raw-score interval to a named severity band for
// clinical tools.
type ScoringRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// Assessment is one scored instrument: a personality quiz or a validated
// clinical screening tool.
type Assessment struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	EstimatedMinutes int              `json:"estimated_minutes"`
	ClinicalTool     bool             `json:"clinical_tool,omitempty"`
	Scales           []string         `json:"scales"`
	ScoringRanges    []ScoringRange   `json:"scoring_ranges,omitempty"`
	Instructions     string           `json:"instructions,omitempty"`
	Questions        []Question       `json:"questions"`
	ResponseOptions  []ResponseOption `json:"response_options"`
}

// optionBounds returns the min and max values on the response scale.
func (a *Assessment) optionBounds() (min, max int) {
	min, max = a.ResponseOptions[0].Value, a.ResponseOptions[0].Value
	for _, opt := range a.ResponseOptions[1:] {
		if opt.Value < min {
			min = opt.Value
		}
		if opt.Value > max {
			max = opt.Value
		}
	}
	return min, max
}

// ByID returns the assessment with the given id.
func ByID(id string) (*Assessment, bool) {
	a, ok := library[id]
	return a, ok
}

// All returns every assessment in declaration order.
func All() []*Assessment {
	out := make([]*Assessment, 0, len(libraryOrder))
	for _, id := range libraryOrder {
		out = append(out, library[id])
	}
	return out
}

// ByCategory returns assessments in the given category, in declaration order.
func ByCategory(category string) []*Assessment {
	var out []*Assessment
	for _, id := range libraryOrder {
		if library[id].Category == category {
			out = append(out, library[id])
		}
	}
	return out
}

// ClinicalTools returns the validated screening instruments.
func ClinicalTools() []*Assessment {
	var out []*Assessment
	for _, id := range libraryOrder {
		if library[id].ClinicalTool {
			out = append(out, library[id])
		}
	}
	return out
}

// validate enforces the library invariants: every question scale is
// declared, response options exist, and clinical scoring ranges are
// contiguous, non-overlapping, and cover the full raw-score domain.
func (a *Assessment) validate() error {
	if len(a.ResponseOptions) == 0 {
		return fmt.Errorf("assessment %s: no response options", a.ID)
	}
	declared := map[string]bool{}
	for _, s := range a.Scales {
		declared[s] = true
	}
	for _, q := range a.Questions {
		if !declared[q.Scale] {
			return fmt.Errorf("assessment %s: question %s uses undeclared scale %q", a.ID, q.ID, q.Scale)
		}
	}
	if a.ClinicalTool {
		if len(a.ScoringRanges) == 0 {
			return fmt.Errorf("assessment %s: clinical tool without scoring ranges", a.ID)
		}
		_, maxOpt := a.optionBounds()
		maxRaw := maxOpt * len(a.Questions)
		next := 0
		for _, r := range a.ScoringRanges {
			if r.Min != next {
				return fmt.Errorf("assessment %s: scoring ranges not contiguous at %d", a.ID, r.Min)
			}
			if r.Max < r.Min {
				return fmt.Errorf("assessment %s: inverted scoring range %d-%d", a.ID, r.Min, r.Max)
			}
			next = r.Max + 1
		}
		if next != maxRaw+1 {
			return fmt.Errorf("assessment %s: scoring ranges cover 0-%d, want 0-%d", a.ID, next-1, maxRaw)
		}
	}
	return nil
}

func init() {
	for id, a := range library {
		a.ID = id
		if err := a.validate(); err != nil {
			panic(err)
		}
	}
}
