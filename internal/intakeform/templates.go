package intakeform

// templates holds the built-in intake forms, keyed by
// "<practiceType>_<variant>". Quick forms cover initial onboarding;
// comprehensive forms are optional deep dives sent later.
var templates = map[string]*Template{
	"therapy_quick": {
		Name:        "Therapy Intake Form",
		Description: "Quick intake to get started",
		Type:        VariantQuick,
		Sections: []Section{
			{
				ID:    "basic_info",
				Title: "Basic Information",
				Fields: []Field{
					{ID: "preferred_name", Label: "Preferred Name", Type: FieldText, Required: true},
					{ID: "pronouns", Label: "Pronouns", Type: FieldSelect, Options: []string{"he/him", "she/her", "they/them", "other", "prefer not to say"}},
					{ID: "age", Label: "Age", Type: FieldText, Required: true},
					{ID: "occupation", Label: "Occupation", Type: FieldText},
					{ID: "phone", Label: "Phone Number", Type: FieldText},
				},
			},
			{
				ID:    "presenting_concerns",
				Title: "What Brings You Here",
				Fields: []Field{
					{ID: "primary_concern", Label: "What is the main reason you are seeking therapy?", Type: FieldTextarea, Required: true, Placeholder: "Please describe in your own words..."},
					{ID: "concern_duration", Label: "How long have you been experiencing this?", Type: FieldSelect, Required: true, Options: []string{"Less than a month", "1-3 months", "3-6 months", "6-12 months", "1-2 years", "More than 2 years", "As long as I can remember"}},
					{ID: "therapy_goals", Label: "What would you like to achieve in therapy?", Type: FieldTextarea, Required: true, Placeholder: "What would success look like for you?"},
					{ID: "previous_therapy", Label: "Have you been in therapy before?", Type: FieldRadio, Options: []string{"Yes", "No"}},
					{ID: "urgent_concerns", Label: "Are you currently in crisis or experiencing urgent safety concerns?", Type: FieldRadio, Required: true, Options: []string{"Yes", "No"}},
					{ID: "urgent_details", Label: "Please describe", Type: FieldTextarea, Conditional: &Condition{Field: "urgent_concerns", Value: "Yes"}},
				},
			},
			{
				ID:    "practical_info",
				Title: "Practical Information",
				Fields: []Field{
					{ID: "session_frequency", Label: "How often would you like to meet?", Type: FieldSelect, Options: []string{"Weekly", "Every 2 weeks", "Monthly", "Not sure"}},
					{ID: "preferred_times", Label: "Preferred times for sessions", Type: FieldCheckbox, Options: []string{"Mornings", "Midday", "Afternoons", "Evenings", "Weekends"}},
					{ID: "additional_info", Label: "Anything else you want your therapist to know?", Type: FieldTextarea},
				},
			},
		},
	},

	"training_quick": {
		Name:        "Training Intake Form",
		Description: "Quick fitness intake",
		Type:        VariantQuick,
		Sections: []Section{
			{
				ID:    "basic_info",
				Title: "Basic Information",
				Fields: []Field{
					{ID: "preferred_name", Label: "Preferred Name", Type: FieldText, Required: true},
					{ID: "age", Label: "Age", Type: FieldText, Required: true},
					{ID: "phone", Label: "Phone Number", Type: FieldText, Required: true},
				},
			},
			{
				ID:    "fitness_goals",
				Title: "Your Goals",
				Fields: []Field{
					{ID: "primary_goal", Label: "What is your primary fitness goal?", Type: FieldTextarea, Required: true},
					{ID: "timeline", Label: "What is your timeline?", Type: FieldSelect, Options: []string{"1-3 months", "3-6 months", "6-12 months", "Ongoing"}},
					{ID: "current_activity", Label: "Current activity level", Type: FieldSelect, Required: true, Options: []string{"Sedentary", "Lightly active", "Moderately active", "Very active"}},
					{ID: "injuries", Label: "Any current or past injuries?", Type: FieldTextarea},
					{ID: "doctor_clearance", Label: "Has your doctor cleared you for exercise?", Type: FieldRadio, Required: true, Options: []string{"Yes", "No", "N/A - no restrictions"}},
				},
			},
			{
				ID:    "schedule",
				Title: "Schedule",
				Fields: []Field{
					{ID: "available_days", Label: "Days available for training", Type: FieldCheckbox, Options: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
					{ID: "session_frequency", Label: "Desired training frequency", Type: FieldSelect, Options: []string{"1x per week", "2x per week", "3x per week", "4+ per week"}},
				},
			},
		},
	},

	"tutoring_quick": {
		Name:        "Tutoring Intake Form",
		Description: "Quick academic intake",
		Type:        VariantQuick,
		Sections: []Section{
			{
				ID:    "basic_info",
				Title: "Basic Information",
				Fields: []Field{
					{ID: "student_name", Label: "Student Name", Type: FieldText, Required: true},
					{ID: "grade_level", Label: "Current Grade Level", Type: FieldSelect, Required: true, Options: []string{"Elementary (K-5)", "Middle School (6-8)", "High School (9-12)", "College"}},
					{ID: "parent_name", Label: "Parent/Guardian Name", Type: FieldText},
					{ID: "parent_contact", Label: "Parent/Guardian Phone", Type: FieldText},
				},
			},
			{
				ID:    "academic_needs",
				Title: "Academic Needs",
				Fields: []Field{
					{ID: "subjects", Label: "Which subjects need support?", Type: FieldCheckbox, Required: true, Options: []string{"Math", "Science", "English", "History", "Foreign Language", "Test Prep", "Other"}},
					{ID: "specific_topics", Label: "Specific topics or areas of difficulty", Type: FieldTextarea, Required: true},
					{ID: "goals", Label: "What are your academic goals?", Type: FieldTextarea, Required: true},
					{ID: "upcoming_tests", Label: "Any upcoming tests or deadlines?", Type: FieldTextarea},
				},
			},
			{
				ID:    "schedule",
				Title: "Schedule",
				Fields: []Field{
					{ID: "available_days", Label: "Available days", Type: FieldCheckbox, Options: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
					{ID: "session_frequency", Label: "Desired frequency", Type: FieldSelect, Options: []string{"1x per week", "2x per week", "3+ per week"}},
				},
			},
		},
	},

	"freelance_quick": {
		Name:        "Project Intake Form",
		Description: "Quick project intake",
		Type:        VariantQuick,
		Sections: []Section{
			{
				ID:    "basic_info",
				Title: "Basic Information",
				Fields: []Field{
					{ID: "company_name", Label: "Company/Organization Name", Type: FieldText, Required: true},
					{ID: "contact_person", Label: "Primary Contact Person", Type: FieldText, Required: true},
					{ID: "email", Label: "Email", Type: FieldText, Required: true},
					{ID: "website", Label: "Website", Type: FieldText},
				},
			},
			{
				ID:    "project_details",
				Title: "Project Overview",
				Fields: []Field{
					{ID: "project_type", Label: "Type of project", Type: FieldText, Required: true, Placeholder: "Website, app, consulting, design..."},
					{ID: "project_description", Label: "Describe your project", Type: FieldTextarea, Required: true},
					{ID: "goals", Label: "What are your goals for this project?", Type: FieldTextarea, Required: true},
					{ID: "timeline", Label: "Desired timeline", Type: FieldSelect, Required: true, Options: []string{"ASAP", "2-4 weeks", "1-2 months", "2-3 months", "Flexible"}},
					{ID: "budget", Label: "Budget range", Type: FieldSelect, Options: []string{"< $1,000", "$1,000 - $5,000", "$5,000 - $10,000", "$10,000+", "Not sure"}},
				},
			},
		},
	},

	"therapy_comprehensive": {
		Name:        "Comprehensive Therapy Assessment",
		Description: "In-depth clinical history and background",
		Type:        VariantComprehensive,
		Sections: []Section{
			{
				ID:    "mental_health_history",
				Title: "Mental Health History",
				Fields: []Field{
					{ID: "previous_diagnoses", Label: "Have you been diagnosed with any mental health conditions?", Type: FieldTextarea},
					{ID: "current_medications", Label: "Current medications", Type: FieldTextarea},
					{ID: "hospitalizations", Label: "Any psychiatric hospitalizations?", Type: FieldRadio, Options: []string{"Yes", "No"}},
					{ID: "substance_use", Label: "Do you use alcohol or other substances?", Type: FieldSelect, Options: []string{"Never", "Occasionally", "Regularly", "Daily"}},
					{ID: "self_harm", Label: "History of self-harm?", Type: FieldRadio, Options: []string{"Yes", "No", "Prefer not to say"}},
					{ID: "suicidal_thoughts", Label: "Have you experienced thoughts of ending your life?", Type: FieldRadio, Options: []string{"Never", "In the past", "Recently", "Currently"}},
					{ID: "family_mental_health", Label: "Family history of mental health issues?", Type: FieldTextarea},
				},
			},
			{
				ID:    "life_history",
				Title: "Life History & Background",
				Fields: []Field{
					{ID: "childhood", Label: "Tell us about your childhood and family", Type: FieldTextarea},
					{ID: "trauma_history", Label: "Have you experienced trauma?", Type: FieldTextarea},
					{ID: "relationship_history", Label: "Relationship history", Type: FieldTextarea},
					{ID: "significant_events", Label: "Major life events or transitions", Type: FieldTextarea},
				},
			},
			{
				ID:    "current_life",
				Title: "Current Life Situation",
				Fields: []Field{
					{ID: "support_system", Label: "Who do you have for support?", Type: FieldTextarea},
					{ID: "coping_strategies", Label: "What do you do to cope with stress?", Type: FieldTextarea},
					{ID: "strengths", Label: "What are your strengths?", Type: FieldTextarea},
					{ID: "sleep_patterns", Label: "How would you describe your sleep?", Type: FieldSelect, Options: []string{"Good", "Fair", "Poor", "Very poor"}},
				},
			},
		},
	},
}
