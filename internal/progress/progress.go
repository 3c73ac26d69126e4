package progress

import (
	"time"

	"github.com/google/uuid"
)

// PointsPerLevel is the point span of one level.
const PointsPerLevel = 1000

// UserProgress is the single mutable record of everything the learner has
// earned. It is created zero-valued on first launch and mutated in place for
// the lifetime of the installation; only an explicit reset destroys it.
type UserProgress struct {
	TotalPoints      int               `json:"totalPoints"`
	ChallengeScores  map[uuid.UUID]int `json:"challengeScores"`
	CompletedCourses []uuid.UUID       `json:"completedCourses"`
	CompletedSkills  []uuid.UUID       `json:"completedSkills"`
	CurrentStreak    int               `json:"currentStreak"`
	LastStudyDate    time.Time         `json:"lastStudyDate"`
	StudyTimeMinutes int               `json:"studyTimeMinutes"`
}

// New returns a zero-valued progress record with initialized maps.
func New() *UserProgress {
	return &UserProgress{
		ChallengeScores: make(map[uuid.UUID]int),
		LastStudyDate:   time.Now(),
	}
}

// Level is derived from total points: 1000 points per level, 1-based.
func (p *UserProgress) Level() int {
	return p.TotalPoints/PointsPerLevel + 1
}

// NextLevelProgress is the fraction of the current level completed, in [0,1).
func (p *UserProgress) NextLevelProgress() float64 {
	within := p.TotalPoints - (p.Level()-1)*PointsPerLevel
	return float64(within) / float64(PointsPerLevel)
}

// SetChallengeScore records the score for a challenge, overwriting any prior
// score for that id, and adds it to the running total. Scores are not
// best-of: the most recent attempt wins the per-challenge slot while every
// attempt still feeds the total.
func (p *UserProgress) SetChallengeScore(challengeID uuid.UUID, score int) {
	if p.ChallengeScores == nil {
		p.ChallengeScores = make(map[uuid.UUID]int)
	}
	p.ChallengeScores[challengeID] = score
	p.AddPoints(score)
}

// AddPoints adds to the running total. Negative amounts are ignored: points
// only ever increase.
func (p *UserProgress) AddPoints(points int) {
	if points <= 0 {
		return
	}
	p.TotalPoints += points
}

// MarkCourseCompleted adds the course id to the completed set, once.
func (p *UserProgress) MarkCourseCompleted(id uuid.UUID) {
	p.CompletedCourses = appendUnique(p.CompletedCourses, id)
}

// MarkSkillCompleted adds the skill id to the completed set, once.
func (p *UserProgress) MarkSkillCompleted(id uuid.UUID) {
	p.CompletedSkills = appendUnique(p.CompletedSkills, id)
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
