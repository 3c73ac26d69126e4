package progress

import "time"

// RecordStudy adds study minutes and advances the day streak. Same-day study
// accumulates minutes without touching the streak; studying on the day after
// the last recorded one extends it; any longer gap restarts it at 1.
func (p *UserProgress) RecordStudy(minutes int, now time.Time) {
	if minutes > 0 {
		p.StudyTimeMinutes += minutes
	}

	last := dayOf(p.LastStudyDate)
	today := dayOf(now)

	switch {
	case p.CurrentStreak == 0:
		p.CurrentStreak = 1
	case today.Equal(last):
		// Already counted today.
	case today.Equal(last.AddDate(0, 0, 1)):
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	p.LastStudyDate = now
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
