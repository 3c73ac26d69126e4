package catalog

import "github.com/google/uuid"

// SeedVersion is the semver of the bundled content. Bump it when the seed
// data changes so stale persisted catalogs reseed on next load.
const SeedVersion = "v1.0.0"

// seedID derives a stable id for bundled content. Reseeding must not change
// ids: challenge scores and completion sets are keyed by them.
func seedID(kind, title string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("lingualearn/"+kind+"/"+title))
}

func intPtr(v int) *int { return &v }

// SeedCourses returns the bundled language courses.
func SeedCourses() []Course {
	return []Course{
		{
			ID:          seedID("course", "Spanish Essentials"),
			Title:       "Spanish Essentials",
			Language:    "Spanish",
			Description: "Learn the fundamentals of Spanish with real-life scenarios",
			Difficulty:  DifficultyBeginner,
			Lessons: []Lesson{
				{
					ID:      seedID("lesson", "Greetings & Introductions"),
					Title:   "Greetings & Introductions",
					Content: "Learn how to greet people and introduce yourself in Spanish",
					Exercises: []Exercise{
						{
							ID:            seedID("exercise", "es-hello"),
							Question:      "How do you say 'Hello' in Spanish?",
							Options:       []string{"Hola", "Adiós", "Gracias", "Por favor"},
							CorrectAnswer: 0,
							Explanation:   "'Hola' is the most common way to say hello in Spanish",
							Type:          ExerciseMultipleChoice,
						},
					},
					Duration: 15,
				},
			},
			EstimatedTime: "2 weeks",
			Flag:          "🇪🇸",
		},
		{
			ID:          seedID("course", "Business French"),
			Title:       "Business French",
			Language:    "French",
			Description: "Professional French for business communication",
			Difficulty:  DifficultyIntermediate,
			Lessons: []Lesson{
				{
					ID:      seedID("lesson", "Business Meetings"),
					Title:   "Business Meetings",
					Content: "Learn professional vocabulary for business meetings",
					Exercises: []Exercise{
						{
							ID:            seedID("exercise", "fr-meeting"),
							Question:      "How do you say 'meeting' in French?",
							Options:       []string{"Réunion", "Bureau", "Travail", "Projet"},
							CorrectAnswer: 0,
							Explanation:   "'Réunion' means meeting in French",
							Type:          ExerciseMultipleChoice,
						},
					},
					Duration: 20,
				},
			},
			EstimatedTime: "3 weeks",
			Flag:          "🇫🇷",
		},
		{
			ID:          seedID("course", "Japanese Culture & Language"),
			Title:       "Japanese Culture & Language",
			Language:    "Japanese",
			Description: "Immerse yourself in Japanese culture while learning the language",
			Difficulty:  DifficultyAdvanced,
			Lessons: []Lesson{
				{
					ID:      seedID("lesson", "Honorific Language"),
					Title:   "Honorific Language",
					Content: "Understanding keigo (honorific language) in Japanese",
					Exercises: []Exercise{
						{
							ID:            seedID("exercise", "ja-keigo"),
							Question:      "Which is the polite form of 'to eat'?",
							Options:       []string{"食べる", "召し上がる", "飲む", "見る"},
							CorrectAnswer: 1,
							Explanation:   "召し上がる (meshiagaru) is the honorific form of 'to eat'",
							Type:          ExerciseMultipleChoice,
						},
					},
					Duration: 25,
				},
			},
			EstimatedTime: "4 weeks",
			Flag:          "🇯🇵",
		},
	}
}

// SeedSkills returns the bundled business skills.
func SeedSkills() []BusinessSkill {
	return []BusinessSkill{
		{
			ID:          seedID("skill", "International Business Communication"),
			Title:       "International Business Communication",
			Category:    CategoryCommunication,
			Description: "Master professional communication across cultures",
			Modules: []SkillModule{
				{
					ID:      seedID("module", "Email Etiquette"),
					Title:   "Email Etiquette",
					Content: "Learn proper email communication in different cultures",
					Scenarios: []PracticeScenario{
						{
							ID:              seedID("scenario", "Formal Business Email"),
							Title:           "Formal Business Email",
							Situation:       "Writing a formal proposal to a Japanese client",
							CulturalContext: "Japanese business culture values formality and respect",
							KeyPhrases:      []string{"いつもお世話になっております", "ご検討のほど", "よろしくお願いいたします"},
							Tips:            []string{"Use honorific language", "Be indirect and humble", "Include proper greetings"},
							Language:        "Japanese",
						},
					},
					Duration: 30,
				},
			},
			EstimatedTime: "1 week",
			Icon:          "✉️",
		},
		{
			ID:          seedID("skill", "Cross-Cultural Negotiation"),
			Title:       "Cross-Cultural Negotiation",
			Category:    CategoryNegotiation,
			Description: "Navigate negotiations across different cultural contexts",
			Modules: []SkillModule{
				{
					ID:      seedID("module", "German Business Style"),
					Title:   "German Business Style",
					Content: "Understanding direct communication in German business culture",
					Scenarios: []PracticeScenario{
						{
							ID:              seedID("scenario", "Contract Negotiation"),
							Title:           "Contract Negotiation",
							Situation:       "Negotiating terms with a German supplier",
							CulturalContext: "Germans prefer direct, fact-based communication",
							KeyPhrases:      []string{"Können wir über die Bedingungen sprechen?", "Das ist nicht akzeptabel", "Wir brauchen eine bessere Lösung"},
							Tips:            []string{"Be direct and honest", "Come prepared with facts", "Respect punctuality"},
							Language:        "German",
						},
					},
					Duration: 45,
				},
			},
			EstimatedTime: "2 weeks",
			Icon:          "🤝",
		},
		{
			ID:          seedID("skill", "Global Presentation Skills"),
			Title:       "Global Presentation Skills",
			Category:    CategoryPresentation,
			Description: "Deliver compelling presentations to international audiences",
			Modules: []SkillModule{
				{
					ID:      seedID("module", "French Presentation Style"),
					Title:   "French Presentation Style",
					Content: "Adapt your presentation style for French business culture",
					Scenarios: []PracticeScenario{
						{
							ID:              seedID("scenario", "Product Launch Presentation"),
							Title:           "Product Launch Presentation",
							Situation:       "Presenting a new product to French stakeholders",
							CulturalContext: "French audiences appreciate intellectual discourse and detailed analysis",
							KeyPhrases:      []string{"Permettez-moi de vous présenter", "Comme vous pouvez le voir", "En conclusion"},
							Tips:            []string{"Use sophisticated language", "Include detailed analysis", "Engage in intellectual discussion"},
							Language:        "French",
						},
					},
					Duration: 40,
				},
			},
			EstimatedTime: "1.5 weeks",
			Icon:          "📊",
		},
	}
}

// SeedChallenges returns the bundled entertainment challenges.
func SeedChallenges() []EntertainmentChallenge {
	return []EntertainmentChallenge{
		{
			ID:              seedID("challenge", "Studio Ghibli Cinema"),
			Title:           "Studio Ghibli Cinema",
			Type:            ChallengeMovie,
			Language:        "Japanese",
			Description:     "Test your knowledge of Studio Ghibli films and Japanese culture",
			CulturalContext: "Studio Ghibli films reflect Japanese values, folklore, and environmental consciousness",
			Questions: []ChallengeQuestion{
				{
					ID:            seedID("question", "ghibli-sen"),
					Question:      "In 'Spirited Away', what does Chihiro's name change to?",
					Options:       []string{"Sen", "Rin", "Yuki", "Hana"},
					CorrectAnswer: 0,
					Explanation:   "Yubaba changes Chihiro's name to Sen (千) as part of her control over the spirit world workers",
					CulturalNote:  "Name changing represents loss of identity, a common theme in Japanese folklore",
				},
				{
					ID:            seedID("question", "ghibli-totoro"),
					Question:      "What does 'totoro' mean in Japanese?",
					Options:       []string{"Forest spirit", "Big belly", "Friendly giant", "It's a made-up word"},
					CorrectAnswer: 3,
					Explanation:   "Miyazaki created the word 'totoro' specifically for the character",
					CulturalNote:  "Many Japanese words in anime are created for artistic effect",
				},
			},
			Difficulty: ChallengeMedium,
			Points:     150,
			TimeLimit:  120,
			MediaReference: &MediaReference{
				Title:       "My Neighbor Totoro",
				Year:        intPtr(1988),
				Creator:     "Hayao Miyazaki",
				Genre:       "Animation",
				Description: "A beloved Japanese animated film about two sisters who discover forest spirits",
			},
		},
		{
			ID:              seedID("challenge", "French Chanson Classics"),
			Title:           "French Chanson Classics",
			Type:            ChallengeMusic,
			Language:        "French",
			Description:     "Explore French music culture through classic chansons",
			CulturalContext: "French chanson represents the poetic soul of French culture and language",
			Questions: []ChallengeQuestion{
				{
					ID:            seedID("question", "chanson-piaf"),
					Question:      "Who sang 'La Vie en Rose'?",
					Options:       []string{"Brigitte Bardot", "Édith Piaf", "Françoise Hardy", "Sylvie Vartan"},
					CorrectAnswer: 1,
					Explanation:   "Édith Piaf wrote and performed this iconic song in 1947",
					CulturalNote:  "Piaf is considered the voice of France and represents resilience through hardship",
				},
				{
					ID:            seedID("question", "chanson-meaning"),
					Question:      "What does 'chanson' literally mean?",
					Options:       []string{"Dance", "Song", "Story", "Love"},
					CorrectAnswer: 1,
					Explanation:   "'Chanson' simply means 'song' in French",
					CulturalNote:  "French chanson is characterized by lyrical sophistication and emotional depth",
				},
			},
			Difficulty: ChallengeEasy,
			Points:     100,
			TimeLimit:  90,
			MediaReference: &MediaReference{
				Title:       "La Vie en Rose",
				Year:        intPtr(1947),
				Creator:     "Édith Piaf",
				Genre:       "Chanson",
				Description: "One of the most famous French songs of all time",
			},
		},
		{
			ID:              seedID("challenge", "Spanish Cinema Golden Age"),
			Title:           "Spanish Cinema Golden Age",
			Type:            ChallengeMovie,
			Language:        "Spanish",
			Description:     "Discover the masterpieces of Spanish and Latin American cinema",
			CulturalContext: "Spanish cinema reflects the rich cultural diversity of Spain and Latin America",
			Questions: []ChallengeQuestion{
				{
					ID:            seedID("question", "cine-laberinto"),
					Question:      "Who directed 'El Laberinto del Fauno' (Pan's Labyrinth)?",
					Options:       []string{"Pedro Almodóvar", "Guillermo del Toro", "Luis Buñuel", "Alejandro Amenábar"},
					CorrectAnswer: 1,
					Explanation:   "Guillermo del Toro directed this acclaimed fantasy film in 2006",
					CulturalNote:  "The film blends Spanish Civil War history with dark fantasy elements",
				},
				{
					ID:            seedID("question", "cine-meaning"),
					Question:      "What does 'cine' mean in Spanish?",
					Options:       []string{"Theater", "Cinema", "Art", "Culture"},
					CorrectAnswer: 1,
					Explanation:   "'Cine' is short for 'cinematógrafo' and means cinema",
					CulturalNote:  "Spanish cinema has a rich tradition dating back to the early 1900s",
				},
			},
			Difficulty: ChallengeHard,
			Points:     200,
			TimeLimit:  150,
			MediaReference: &MediaReference{
				Title:       "Pan's Labyrinth",
				Year:        intPtr(2006),
				Creator:     "Guillermo del Toro",
				Genre:       "Fantasy Drama",
				Description: "A dark fantasy film set against the backdrop of the Spanish Civil War",
			},
		},
	}
}
