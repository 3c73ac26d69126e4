package catalog

import "github.com/google/uuid"

// Difficulty grades a course for learners.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties returns course difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// ExerciseType identifies the interaction style of an exercise.
type ExerciseType string

const (
	ExerciseMultipleChoice ExerciseType = "Multiple Choice"
	ExerciseFillInBlank    ExerciseType = "Fill in the Blank"
	ExercisePronunciation  ExerciseType = "Pronunciation"
	ExerciseTranslation    ExerciseType = "Translation"
)

// Course is a language course: an ordered set of lessons plus display metadata.
// Courses are value records; progress updates go through WithProgress so the
// id survives the copy.
type Course struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Language      string     `json:"language"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	Lessons       []Lesson   `json:"lessons"`
	Progress      float64    `json:"progress"`
	EstimatedTime string     `json:"estimatedTime"`
	Flag          string     `json:"flag"`
}

// Lesson is one unit of a course with its exercises.
type Lesson struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Exercises []Exercise `json:"exercises"`
	Completed bool       `json:"isCompleted"`
	Duration  int        `json:"duration"` // minutes
}

// Exercise is a single question with at least two options.
type Exercise struct {
	ID            uuid.UUID    `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Type          ExerciseType `json:"type"`
}

// WithProgress returns a copy of the course with its progress replaced,
// clamped to [0,1]. All other fields, including the id, are unchanged.
func (c Course) WithProgress(p float64) Course {
	c.Progress = ClampProgress(p)
	return c
}

// ClampProgress clamps a completion fraction to [0,1].
func ClampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
