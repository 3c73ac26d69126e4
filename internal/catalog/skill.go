package catalog

import "github.com/google/uuid"

// SkillCategory groups business skills.
type SkillCategory string

const (
	CategoryCommunication SkillCategory = "Communication"
	CategoryNegotiation   SkillCategory = "Negotiation"
	CategoryPresentation  SkillCategory = "Presentation"
	CategoryNetworking    SkillCategory = "Networking"
	CategoryLeadership    SkillCategory = "Leadership"
	CategoryEtiquette     SkillCategory = "Cultural Etiquette"
)

// AllSkillCategories returns skill categories in display order.
func AllSkillCategories() []SkillCategory {
	return []SkillCategory{
		CategoryCommunication,
		CategoryNegotiation,
		CategoryPresentation,
		CategoryNetworking,
		CategoryLeadership,
		CategoryEtiquette,
	}
}

// Icon returns the display glyph for the category.
func (c SkillCategory) Icon() string {
	switch c {
	case CategoryCommunication:
		return "💬"
	case CategoryNegotiation:
		return "🤝"
	case CategoryPresentation:
		return "📊"
	case CategoryNetworking:
		return "🌐"
	case CategoryLeadership:
		return "👑"
	case CategoryEtiquette:
		return "🎓"
	default:
		return "✦"
	}
}

// BusinessSkill is a professional-communication track: ordered modules plus
// display metadata. Same value-record rules as Course.
type BusinessSkill struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Category      SkillCategory `json:"category"`
	Description   string        `json:"description"`
	Modules       []SkillModule `json:"modules"`
	Progress      float64       `json:"progress"`
	EstimatedTime string        `json:"estimatedTime"`
	Icon          string        `json:"icon"`
}

// SkillModule is one unit of a business skill with its practice scenarios.
type SkillModule struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Scenarios []PracticeScenario `json:"practiceScenarios"`
	Completed bool               `json:"isCompleted"`
	Duration  int                `json:"duration"` // minutes
}

// PracticeScenario is a situational drill with cultural context and key phrases.
type PracticeScenario struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Situation       string    `json:"situation"`
	CulturalContext string    `json:"culturalContext"`
	KeyPhrases      []string  `json:"keyPhrases"`
	Tips            []string  `json:"tips"`
	Language        string    `json:"language"`
}

// WithProgress returns a copy of the skill with its progress replaced,
// clamped to [0,1]. The id is unchanged.
func (s BusinessSkill) WithProgress(p float64) BusinessSkill {
	s.Progress = ClampProgress(p)
	return s
}
