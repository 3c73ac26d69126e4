package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLeveling(t *testing.T) {
	tests := []struct {
		points       int
		wantLevel    int
		wantNextProg float64
	}{
		{0, 1, 0.0},
		{999, 1, 0.999},
		{1000, 2, 0.0},
		{2500, 3, 0.5},
		{15420, 16, 0.42},
	}

	for _, tt := range tests {
		p := &UserProgress{TotalPoints: tt.points}
		assert.Equal(t, tt.wantLevel, p.Level(), "points=%d", tt.points)
		assert.InDelta(t, tt.wantNextProg, p.NextLevelProgress(), 1e-9, "points=%d", tt.points)
	}
}

func TestSetChallengeScoreOverwrites(t *testing.T) {
	p := New()
	id := uuid.New()

	p.SetChallengeScore(id, 100)
	p.SetChallengeScore(id, 40)

	assert.Equal(t, 40, p.ChallengeScores[id])
	assert.Equal(t, 140, p.TotalPoints)
}

func TestPointsOnlyIncrease(t *testing.T) {
	p := New()
	p.AddPoints(50)
	p.AddPoints(-20)
	p.AddPoints(0)
	assert.Equal(t, 50, p.TotalPoints)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	p := New()
	id := uuid.New()

	p.MarkCourseCompleted(id)
	p.MarkCourseCompleted(id)
	p.MarkSkillCompleted(id)
	p.MarkSkillCompleted(id)

	assert.Len(t, p.CompletedCourses, 1)
	assert.Len(t, p.CompletedSkills, 1)
}

func TestRecordStudyStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 10, d, 20, 0, 0, 0, time.UTC)
	}

	p := New()
	p.LastStudyDate = day(1)

	// First recorded study starts the streak.
	p.RecordStudy(15, day(1))
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 15, p.StudyTimeMinutes)

	// Same day: minutes accumulate, streak holds.
	p.RecordStudy(10, day(1))
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 25, p.StudyTimeMinutes)

	// Next day extends.
	p.RecordStudy(20, day(2))
	assert.Equal(t, 2, p.CurrentStreak)

	// A study early the following morning still extends.
	p.RecordStudy(5, time.Date(2025, 10, 3, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, p.CurrentStreak)

	// A gap restarts at 1.
	p.RecordStudy(30, day(10))
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 80, p.StudyTimeMinutes)
}
