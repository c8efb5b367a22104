package assessment

// libraryOrder fixes the presentation order of the built-in instruments.
var libraryOrder = []string{
	"big-five",
	"attachment-style",
	"phq-9",
	"gad-7",
	"masculine-archetypes",
}

var library = map[string]*Assessment{
	"big-five": {
		Name:             "Big Five Personality Assessment",
		Description:      "Measures five major dimensions of personality: Openness, Conscientiousness, Extraversion, Agreeableness, and Neuroticism",
		Category:         CategoryPersonality,
		EstimatedMinutes: 10,
		Scales:           []string{"Openness", "Conscientiousness", "Extraversion", "Agreeableness", "Neuroticism"},
		Questions: []Question{
			{ID: "bf1", Text: "I am the life of the party", Scale: "Extraversion"},
			{ID: "bf2", Text: "I feel comfortable around people", Scale: "Extraversion"},
			{ID: "bf3", Text: "I start conversations", Scale: "Extraversion"},
			{ID: "bf4", Text: "I talk to a lot of different people at parties", Scale: "Extraversion"},
			{ID: "bf5", Text: "I don't talk a lot", Scale: "Extraversion", Reverse: true},
			{ID: "bf6", Text: "I keep in the background", Scale: "Extraversion", Reverse: true},

			{ID: "bf7", Text: "I feel others' emotions", Scale: "Agreeableness"},
			{ID: "bf8", Text: "I am interested in people", Scale: "Agreeableness"},
			{ID: "bf9", Text: "I make people feel at ease", Scale: "Agreeableness"},
			{ID: "bf10", Text: "I have a soft heart", Scale: "Agreeableness"},
			{ID: "bf11", Text: "I am not interested in other people's problems", Scale: "Agreeableness", Reverse: true},
			{ID: "bf12", Text: "I insult people", Scale: "Agreeableness", Reverse: true},

			{ID: "bf13", Text: "I am always prepared", Scale: "Conscientiousness"},
			{ID: "bf14", Text: "I pay attention to details", Scale: "Conscientiousness"},
			{ID: "bf15", Text: "I get chores done right away", Scale: "Conscientiousness"},
			{ID: "bf16", Text: "I like order", Scale: "Conscientiousness"},
			{ID: "bf17", Text: "I leave my belongings around", Scale: "Conscientiousness", Reverse: true},
			{ID: "bf18", Text: "I make a mess of things", Scale: "Conscientiousness", Reverse: true},

			{ID: "bf19", Text: "I get stressed out easily", Scale: "Neuroticism"},
			{ID: "bf20", Text: "I worry about things", Scale: "Neuroticism"},
			{ID: "bf21", Text: "I am easily disturbed", Scale: "Neuroticism"},
			{ID: "bf22", Text: "I get upset easily", Scale: "Neuroticism"},
			{ID: "bf23", Text: "I am relaxed most of the time", Scale: "Neuroticism", Reverse: true},
			{ID: "bf24", Text: "I seldom feel blue", Scale: "Neuroticism", Reverse: true},

			{ID: "bf25", Text: "I have a rich vocabulary", Scale: "Openness"},
			{ID: "bf26", Text: "I have a vivid imagination", Scale: "Openness"},
			{ID: "bf27", Text: "I have excellent ideas", Scale: "Openness"},
			{ID: "bf28", Text: "I spend time reflecting on things", Scale: "Openness"},
			{ID: "bf29", Text: "I have difficulty understanding abstract ideas", Scale: "Openness", Reverse: true},
			{ID: "bf30", Text: "I am not interested in abstract ideas", Scale: "Openness", Reverse: true},
		},
		ResponseOptions: []ResponseOption{
			{Value: 1, Label: "Strongly Disagree"},
			{Value: 2, Label: "Disagree"},
			{Value: 3, Label: "Neutral"},
			{Value: 4, Label: "Agree"},
			{Value: 5, Label: "Strongly Agree"},
		},
	},

	"attachment-style": {
		Name:             "Attachment Style Assessment",
		Description:      "Identifies your attachment patterns in relationships: Secure, Anxious, Avoidant, or Fearful",
		Category:         CategoryPersonality,
		EstimatedMinutes: 5,
		Scales:           []string{"Secure", "Anxious", "Avoidant", "Fearful"},
		Questions: []Question{
			{ID: "as1", Text: "I find it easy to get close to others", Scale: "Secure"},
			{ID: "as2", Text: "I am comfortable depending on others and having others depend on me", Scale: "Secure"},
			{ID: "as3", Text: "I don't worry about being alone or others not accepting me", Scale: "Secure"},
			{ID: "as4", Text: "I am comfortable expressing my needs and emotions", Scale: "Secure"},

			{ID: "as5", Text: "I worry that others don't really love me", Scale: "Anxious"},
			{ID: "as6", Text: "I often worry that my partner will leave me", Scale: "Anxious"},
			{ID: "as7", Text: "I need a lot of reassurance that I am loved", Scale: "Anxious"},
			{ID: "as8", Text: "I find that others are reluctant to get as close as I would like", Scale: "Anxious"},
			{ID: "as9", Text: "I worry that I want to merge completely with someone and this may scare them away", Scale: "Anxious"},

			{ID: "as10", Text: "I am comfortable without close emotional relationships", Scale: "Avoidant"},
			{ID: "as11", Text: "It is very important to me to feel independent and self-sufficient", Scale: "Avoidant"},
			{ID: "as12", Text: "I prefer not to depend on others or have others depend on me", Scale: "Avoidant"},
			{ID: "as13", Text: "I am nervous when anyone gets too close", Scale: "Avoidant"},
			{ID: "as14", Text: "I find it difficult to trust others completely", Scale: "Avoidant"},

			{ID: "as15", Text: "I want emotionally close relationships but find it difficult to trust or depend on others", Scale: "Fearful"},
			{ID: "as16", Text: "I worry that I will be hurt if I allow myself to become too close to others", Scale: "Fearful"},
			{ID: "as17", Text: "I want to be close to others but I feel uncomfortable being vulnerable", Scale: "Fearful"},
			{ID: "as18", Text: "I find myself pulling away when relationships start to get close", Scale: "Fearful"},
		},
		ResponseOptions: []ResponseOption{
			{Value: 1, Label: "Not at all like me"},
			{Value: 2, Label: "Slightly like me"},
			{Value: 3, Label: "Somewhat like me"},
			{Value: 4, Label: "Very much like me"},
			{Value: 5, Label: "Exactly like me"},
		},
	},

	"phq-9": {
		Name:             "PHQ-9 Depression Screening",
		Description:      "Patient Health Questionnaire - screens for depression severity",
		Category:         CategoryClinical,
		EstimatedMinutes: 3,
		ClinicalTool:     true,
		Scales:           []string{"Depression"},
		ScoringRanges: []ScoringRange{
			{Min: 0, Max: 4, Label: "Minimal", Severity: "none"},
			{Min: 5, Max: 9, Label: "Mild", Severity: "mild"},
			{Min: 10, Max: 14, Label: "Moderate", Severity: "moderate"},
			{Min: 15, Max: 19, Label: "Moderately Severe", Severity: "moderate-severe"},
			{Min: 20, Max: 27, Label: "Severe", Severity: "severe"},
		},
		Instructions: "Over the last 2 weeks, how often have you been bothered by any of the following problems?",
		Questions: []Question{
			{ID: "phq1", Text: "Little interest or pleasure in doing things", Scale: "Depression"},
			{ID: "phq2", Text: "Feeling down, depressed, or hopeless", Scale: "Depression"},
			{ID: "phq3", Text: "Trouble falling or staying asleep, or sleeping too much", Scale: "Depression"},
			{ID: "phq4", Text: "Feeling tired or having little energy", Scale: "Depression"},
			{ID: "phq5", Text: "Poor appetite or overeating", Scale: "Depression"},
			{ID: "phq6", Text: "Feeling bad about yourself - or that you are a failure or have let yourself or your family down", Scale: "Depression"},
			{ID: "phq7", Text: "Trouble concentrating on things, such as reading the newspaper or watching television", Scale: "Depression"},
			{ID: "phq8", Text: "Moving or speaking so slowly that other people could have noticed. Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual", Scale: "Depression"},
			{ID: "phq9", Text: "Thoughts that you would be better off dead, or of hurting yourself in some way", Scale: "Depression"},
		},
		ResponseOptions: []ResponseOption{
			{Value: 0, Label: "Not at all"},
			{Value: 1, Label: "Several days"},
			{Value: 2, Label: "More than half the days"},
			{Value: 3, Label: "Nearly every day"},
		},
	},

	"gad-7": {
		Name:             "GAD-7 Anxiety Screening",
		Description:      "Generalized Anxiety Disorder - screens for anxiety severity",
		Category:         CategoryClinical,
		EstimatedMinutes: 3,
		ClinicalTool:     true,
		Scales:           []string{"Anxiety"},
		ScoringRanges: []ScoringRange{
			{Min: 0, Max: 4, Label: "Minimal", Severity: "none"},
			{Min: 5, Max: 9, Label: "Mild", Severity: "mild"},
			{Min: 10, Max: 14, Label: "Moderate", Severity: "moderate"},
			{Min: 15, Max: 21, Label: "Severe", Severity: "severe"},
		},
		Instructions: "Over the last 2 weeks, how often have you been bothered by the following problems?",
		Questions: []Question{
			{ID: "gad1", Text: "Feeling nervous, anxious, or on edge", Scale: "Anxiety"},
			{ID: "gad2", Text: "Not being able to stop or control worrying", Scale: "Anxiety"},
			{ID: "gad3", Text: "Worrying too much about different things", Scale: "Anxiety"},
			{ID: "gad4", Text: "Trouble relaxing", Scale: "Anxiety"},
			{ID: "gad5", Text: "Being so restless that it is hard to sit still", Scale: "Anxiety"},
			{ID: "gad6", Text: "Becoming easily annoyed or irritable", Scale: "Anxiety"},
			{ID: "gad7", Text: "Feeling afraid, as if something awful might happen", Scale: "Anxiety"},
		},
		ResponseOptions: []ResponseOption{
			{Value: 0, Label: "Not at all"},
			{Value: 1, Label: "Several days"},
			{Value: 2, Label: "More than half the days"},
			{Value: 3, Label: "Nearly every day"},
		},
	},

	"masculine-archetypes": {
		Name:             "Four Masculine Archetypes",
		Description:      "Assesses expression of King, Warrior, Magician, and Lover archetypes (Moore & Gillette)",
		Category:         CategoryPersonality,
		EstimatedMinutes: 8,
		Scales:           []string{"King", "Warrior", "Magician", "Lover"},
		Questions: []Question{
			{ID: "ma1", Text: "I take responsibility for creating order in my life and work", Scale: "King"},
			{ID: "ma2", Text: "I am comfortable making important decisions", Scale: "King"},
			{ID: "ma3", Text: "I bless and empower others to reach their potential", Scale: "King"},
			{ID: "ma4", Text: "I see the big picture and can envision the future", Scale: "King"},
			{ID: "ma5", Text: "I create structures and boundaries that serve the greater good", Scale: "King"},
			{ID: "ma6", Text: "I struggle with indecision or giving my power away", Scale: "King", Reverse: true},

			{ID: "ma7", Text: "I set clear goals and follow through with discipline", Scale: "Warrior"},
			{ID: "ma8", Text: "I can detach emotionally when action is needed", Scale: "Warrior"},
			{ID: "ma9", Text: "I stand up for what I believe in, even when it's difficult", Scale: "Warrior"},
			{ID: "ma10", Text: "I have strong personal boundaries", Scale: "Warrior"},
			{ID: "ma11", Text: "I am strategic and tactical in pursuing my objectives", Scale: "Warrior"},
			{ID: "ma12", Text: "I avoid confrontation and have difficulty saying no", Scale: "Warrior", Reverse: true},

			{ID: "ma13", Text: "I enjoy learning and mastering new skills", Scale: "Magician"},
			{ID: "ma14", Text: "I can see patterns and connections others miss", Scale: "Magician"},
			{ID: "ma15", Text: "I value knowledge and understanding", Scale: "Magician"},
			{ID: "ma16", Text: "I am comfortable with ritual, symbolism, and the unseen", Scale: "Magician"},
			{ID: "ma17", Text: "I use knowledge to transform myself and help others", Scale: "Magician"},
			{ID: "ma18", Text: "I avoid deep reflection or study", Scale: "Magician", Reverse: true},

			{ID: "ma19", Text: "I am passionate about life and my pursuits", Scale: "Lover"},
			{ID: "ma20", Text: "I deeply appreciate beauty, art, music, and nature", Scale: "Lover"},
			{ID: "ma21", Text: "I feel emotions deeply and can connect with others' feelings", Scale: "Lover"},
			{ID: "ma22", Text: "I value sensory experience and being fully present", Scale: "Lover"},
			{ID: "ma23", Text: "I connect easily with my body and physical pleasure", Scale: "Lover"},
			{ID: "ma24", Text: "I feel disconnected from my emotions or body", Scale: "Lover", Reverse: true},
		},
		ResponseOptions: []ResponseOption{
			{Value: 1, Label: "Not like me"},
			{Value: 2, Label: "Slightly like me"},
			{Value: 3, Label: "Somewhat like me"},
			{Value: 4, Label: "Very much like me"},
			{Value: 5, Label: "Extremely like me"},
		},
	},
}
