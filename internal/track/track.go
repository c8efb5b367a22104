package track

// Option is a value/label pair used to populate selection UIs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Features flags which optional note-taking sections apply to a practice
// vertical. Sections absent from a vertical are simply not rendered.
type Features struct {
	ShowRiskAssessment       bool `json:"show_risk_assessment"`
	ShowEmotionalThemes      bool `json:"show_emotional_themes"`
	ShowLifeDomains          bool `json:"show_life_domains"`
	ShowInterventions        bool `json:"show_interventions"`
	ShowHomework             bool `json:"show_homework"`
	ShowClinicalObservations bool `json:"show_clinical_observations"`
	ShowPerformanceMetrics   bool `json:"show_performance_metrics,omitempty"`
	ShowExerciseTracking     bool `json:"show_exercise_tracking,omitempty"`
	ShowTestTracking         bool `json:"show_test_tracking,omitempty"`
	ShowAssignments          bool `json:"show_assignments,omitempty"`
	ShowDeliverables         bool `json:"show_deliverables,omitempty"`
	ShowTimeTracking         bool `json:"show_time_tracking,omitempty"`
	ShowProjectInfo          bool `json:"show_project_info,omitempty"`
}

// Track carries the terminology and vocabulary configuration for one
// practice vertical (therapy, training, tutoring, freelance).
type Track struct {
	Key                string   `json:"key"`
	Label              string   `json:"label"`
	ClientTerm         string   `json:"client_term"`
	ClientTermPlural   string   `json:"client_term_plural"`
	SessionTerm        string   `json:"session_term"`
	SessionTermPlural  string   `json:"session_term_plural"`
	Domains            []Option `json:"domains"`
	Themes             []Option `json:"themes"`
	Interventions      []Option `json:"interventions"`
	Fields             Features `json:"fields"`
	DomainLabel        string   `json:"domain_label"`
	ThemesLabel        string   `json:"themes_label"`
	InterventionsLabel string   `json:"interventions_label"`
}

// Config returns the track configuration for the given practice type.
// Unknown or empty practice types fall back to the therapy track, so the
// function is total over all inputs.
func Config(practiceType string) Track {
	if t, ok := configs[practiceType]; ok {
		return t
	}
	return configs[TypeTherapy]
}

// Known reports whether the practice type has its own track configuration.
func Known(practiceType string) bool {
	_, ok := configs[practiceType]
	return ok
}

// PracticeTypes returns all available practice types in declaration order.
func PracticeTypes() []Option {
	out := make([]Option, 0, len(order))
	for _, key := range order {
		out = append(out, Option{Value: key, Label: configs[key].Label})
	}
	return out
}

// Known practice type keys.
const (
	TypeTherapy   = "therapy"
	TypeTraining  = "training"
	TypeTutoring  = "tutoring"
	TypeFreelance = "freelance"
)

var order = []string{TypeTherapy, TypeTraining, TypeTutoring, TypeFreelance}
