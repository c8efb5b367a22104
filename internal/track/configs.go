package track

// configs holds one immutable track per practice vertical. Domains, themes
// and interventions keep their declared order; selection UIs render them
// as-is.
var configs = map[string]Track{
	TypeTherapy: {
		Key:               TypeTherapy,
		Label:             "Therapist",
		ClientTerm:        "Client",
		ClientTermPlural:  "Clients",
		SessionTerm:       "Session",
		SessionTermPlural: "Sessions",
		Domains: []Option{
			{Value: "relationships", Label: "Relationships"},
			{Value: "career", Label: "Career"},
			{Value: "self_esteem", Label: "Self Esteem"},
			{Value: "family", Label: "Family"},
			{Value: "physical_health", Label: "Physical Health"},
			{Value: "financial", Label: "Financial"},
			{Value: "substance_use", Label: "Substance Use"},
			{Value: "trauma", Label: "Trauma"},
		},
		Themes: []Option{
			{Value: "anxiety", Label: "Anxiety"},
			{Value: "depression", Label: "Depression"},
			{Value: "anger", Label: "Anger"},
			{Value: "shame", Label: "Shame"},
			{Value: "guilt", Label: "Guilt"},
			{Value: "grief", Label: "Grief"},
			{Value: "fear", Label: "Fear"},
			{Value: "loneliness", Label: "Loneliness"},
			{Value: "joy", Label: "Joy"},
		},
		Interventions: []Option{
			{Value: "CBT", Label: "CBT"},
			{Value: "DBT", Label: "DBT"},
			{Value: "Mindfulness", Label: "Mindfulness"},
			{Value: "Exposure Therapy", Label: "Exposure Therapy"},
			{Value: "EMDR", Label: "EMDR"},
			{Value: "Psychoeducation", Label: "Psychoeducation"},
			{Value: "Behavioral Activation", Label: "Behavioral Activation"},
			{Value: "Cognitive Restructuring", Label: "Cognitive Restructuring"},
			{Value: "Grounding Techniques", Label: "Grounding Techniques"},
			{Value: "Relaxation Exercises", Label: "Relaxation Exercises"},
		},
		Fields: Features{
			ShowRiskAssessment:       true,
			ShowEmotionalThemes:      true,
			ShowLifeDomains:          true,
			ShowInterventions:        true,
			ShowHomework:             true,
			ShowClinicalObservations: true,
		},
		DomainLabel:        "Life Domains",
		ThemesLabel:        "Emotional Themes",
		InterventionsLabel: "Interventions Used",
	},

	TypeTraining: {
		Key:               TypeTraining,
		Label:             "Personal Trainer",
		ClientTerm:        "Client",
		ClientTermPlural:  "Clients",
		SessionTerm:       "Workout",
		SessionTermPlural: "Workouts",
		Domains: []Option{
			{Value: "cardio", Label: "Cardio"},
			{Value: "strength", Label: "Strength"},
			{Value: "flexibility", Label: "Flexibility"},
			{Value: "endurance", Label: "Endurance"},
			{Value: "recovery", Label: "Recovery"},
			{Value: "nutrition", Label: "Nutrition"},
			{Value: "form", Label: "Form"},
			{Value: "motivation", Label: "Motivation"},
		},
		Themes: []Option{
			{Value: "fatigue", Label: "Fatigue"},
			{Value: "soreness", Label: "Soreness"},
			{Value: "improvement", Label: "Improvement"},
			{Value: "confidence", Label: "Confidence"},
			{Value: "plateau", Label: "Plateau"},
			{Value: "pain", Label: "Pain"},
			{Value: "energy", Label: "Energy"},
			{Value: "motivation", Label: "Motivation"},
		},
		Interventions: []Option{
			{Value: "Strength Training", Label: "Strength Training"},
			{Value: "HIIT", Label: "HIIT"},
			{Value: "Flexibility Work", Label: "Flexibility Work"},
			{Value: "Nutrition Coaching", Label: "Nutrition Coaching"},
			{Value: "Form Correction", Label: "Form Correction"},
			{Value: "Cardio Training", Label: "Cardio Training"},
			{Value: "Recovery Techniques", Label: "Recovery Techniques"},
			{Value: "Goal Setting", Label: "Goal Setting"},
			{Value: "Motivation Techniques", Label: "Motivation Techniques"},
		},
		Fields: Features{
			ShowLifeDomains:        true,
			ShowInterventions:      true,
			ShowHomework:           true,
			ShowPerformanceMetrics: true,
			ShowExerciseTracking:   true,
		},
		DomainLabel:        "Training Focus",
		ThemesLabel:        "Physical Themes",
		InterventionsLabel: "Training Methods",
	},

	TypeTutoring: {
		Key:               TypeTutoring,
		Label:             "Tutor",
		ClientTerm:        "Student",
		ClientTermPlural:  "Students",
		SessionTerm:       "Lesson",
		SessionTermPlural: "Lessons",
		Domains: []Option{
			{Value: "math", Label: "Math"},
			{Value: "english", Label: "English"},
			{Value: "science", Label: "Science"},
			{Value: "history", Label: "History"},
			{Value: "languages", Label: "Languages"},
			{Value: "test_prep", Label: "Test Prep"},
			{Value: "coding", Label: "Coding"},
			{Value: "writing", Label: "Writing"},
		},
		Themes: []Option{
			{Value: "confusion", Label: "Confusion"},
			{Value: "breakthrough", Label: "Breakthrough"},
			{Value: "engagement", Label: "Engagement"},
			{Value: "frustration", Label: "Frustration"},
			{Value: "progress", Label: "Progress"},
			{Value: "mastery", Label: "Mastery"},
			{Value: "comprehension", Label: "Comprehension"},
			{Value: "retention", Label: "Retention"},
		},
		Interventions: []Option{
			{Value: "Lecture", Label: "Lecture"},
			{Value: "Socratic Questioning", Label: "Socratic Questioning"},
			{Value: "Problem Solving", Label: "Problem Solving"},
			{Value: "Spaced Repetition", Label: "Spaced Repetition"},
			{Value: "Practice Problems", Label: "Practice Problems"},
			{Value: "Concept Mapping", Label: "Concept Mapping"},
			{Value: "Visual Aids", Label: "Visual Aids"},
			{Value: "Study Techniques", Label: "Study Techniques"},
			{Value: "Test Strategies", Label: "Test Strategies"},
		},
		Fields: Features{
			ShowLifeDomains:   true,
			ShowInterventions: true,
			ShowHomework:      true,
			ShowTestTracking:  true,
			ShowAssignments:   true,
		},
		DomainLabel:        "Subject Areas",
		ThemesLabel:        "Learning Themes",
		InterventionsLabel: "Teaching Methods",
	},

	TypeFreelance: {
		Key:               TypeFreelance,
		Label:             "Freelancer/Consultant",
		ClientTerm:        "Client",
		ClientTermPlural:  "Clients",
		SessionTerm:       "Meeting",
		SessionTermPlural: "Meetings",
		Domains: []Option{
			{Value: "scope", Label: "Scope"},
			{Value: "timeline", Label: "Timeline"},
			{Value: "budget", Label: "Budget"},
			{Value: "deliverables", Label: "Deliverables"},
			{Value: "communication", Label: "Communication"},
			{Value: "stakeholder_management", Label: "Stakeholder Management"},
			{Value: "risk", Label: "Risk"},
			{Value: "quality", Label: "Quality"},
		},
		Themes: []Option{
			{Value: "blockers", Label: "Blockers"},
			{Value: "decisions", Label: "Decisions"},
			{Value: "progress", Label: "Progress"},
			{Value: "issues", Label: "Issues"},
			{Value: "approvals", Label: "Approvals"},
			{Value: "revisions", Label: "Revisions"},
			{Value: "scope_creep", Label: "Scope Creep"},
			{Value: "alignment", Label: "Alignment"},
		},
		Interventions: []Option{
			{Value: "Status Update", Label: "Status Update"},
			{Value: "Design Review", Label: "Design Review"},
			{Value: "Code Review", Label: "Code Review"},
			{Value: "Testing", Label: "Testing"},
			{Value: "Feedback Session", Label: "Feedback Session"},
			{Value: "Scope Adjustment", Label: "Scope Adjustment"},
			{Value: "Risk Mitigation", Label: "Risk Mitigation"},
			{Value: "Stakeholder Alignment", Label: "Stakeholder Alignment"},
			{Value: "Planning", Label: "Planning"},
		},
		Fields: Features{
			ShowLifeDomains:   true,
			ShowInterventions: true,
			ShowDeliverables:  true,
			ShowTimeTracking:  true,
			ShowProjectInfo:   true,
		},
		DomainLabel:        "Project Areas",
		ThemesLabel:        "Session Themes",
		InterventionsLabel: "Work Methods",
	},
}
