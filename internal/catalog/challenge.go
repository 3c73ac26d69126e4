package catalog

import "github.com/google/uuid"

// ChallengeType identifies the cultural theme of a challenge.
type ChallengeType string

const (
	ChallengeMovie      ChallengeType = "Movie"
	ChallengeMusic      ChallengeType = "Music"
	ChallengeLiterature ChallengeType = "Literature"
	ChallengeCulture    ChallengeType = "Culture"
	ChallengeHistory    ChallengeType = "History"
)

// AllChallengeTypes returns challenge types in display order.
func AllChallengeTypes() []ChallengeType {
	return []ChallengeType{
		ChallengeMovie,
		ChallengeMusic,
		ChallengeLiterature,
		ChallengeCulture,
		ChallengeHistory,
	}
}

// Icon returns the display glyph for the challenge type.
func (t ChallengeType) Icon() string {
	switch t {
	case ChallengeMovie:
		return "🎬"
	case ChallengeMusic:
		return "🎵"
	case ChallengeLiterature:
		return "📖"
	case ChallengeCulture:
		return "🌍"
	case ChallengeHistory:
		return "🏛"
	default:
		return "✦"
	}
}

// ChallengeDifficulty grades a challenge.
type ChallengeDifficulty string

const (
	ChallengeEasy   ChallengeDifficulty = "Easy"
	ChallengeMedium ChallengeDifficulty = "Medium"
	ChallengeHard   ChallengeDifficulty = "Hard"
)

// EntertainmentChallenge is a timed cultural quiz. Points is the pot for the
// whole challenge; TimeLimit is the per-question countdown in seconds.
type EntertainmentChallenge struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Type            ChallengeType       `json:"type"`
	Language        string              `json:"language"`
	Description     string              `json:"description"`
	CulturalContext string              `json:"culturalContext"`
	Questions       []ChallengeQuestion `json:"questions"`
	Difficulty      ChallengeDifficulty `json:"difficulty"`
	Points          int                 `json:"points"`
	TimeLimit       int                 `json:"timeLimit"` // seconds
	MediaReference  *MediaReference     `json:"mediaReference,omitempty"`
}

// ChallengeQuestion is one quiz question, optionally annotated with a
// cultural note shown alongside the explanation.
type ChallengeQuestion struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	CulturalNote  string    `json:"culturalNote,omitempty"`
}

// MediaReference points at the film, song, or work a challenge is built around.
type MediaReference struct {
	Title       string `json:"title"`
	Year        *int   `json:"year,omitempty"`
	Creator     string `json:"creator"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}
