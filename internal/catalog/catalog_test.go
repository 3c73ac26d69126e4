package catalog

import (
	"encoding/json"
	"testing"
)

func TestSeedPassesOwnSchemas(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		validate func([]byte) error
	}{
		{"courses", SeedCourses(), ValidateCourses},
		{"skills", SeedSkills(), ValidateSkills},
		{"challenges", SeedChallenges(), ValidateChallenges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if err := tt.validate(raw); err != nil {
				t.Errorf("seed %s rejected by own schema: %v", tt.name, err)
			}
		})
	}
}

func TestSchemaRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"wrong shape", `{"title":"x"}`},
		{"missing required", `[{"title":"x"}]`},
		{"single option", `[{"id":"a","title":"t","type":"Movie","points":10,"timeLimit":30,"questions":[{"question":"q","options":["only"],"correctAnswer":0}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateChallenges([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSeedIDsAreStable(t *testing.T) {
	a := SeedCourses()
	b := SeedCourses()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("course %d id differs between seedings", i)
		}
	}

	ca := SeedChallenges()
	cb := SeedChallenges()
	for i := range ca {
		if ca[i].ID != cb[i].ID {
			t.Errorf("challenge %d id differs between seedings", i)
		}
	}
}

func TestWithProgressPreservesIdentity(t *testing.T) {
	course := SeedCourses()[0]
	updated := course.WithProgress(0.6)

	if updated.ID != course.ID {
		t.Error("course id lost across WithProgress")
	}
	if updated.Progress != 0.6 {
		t.Errorf("progress = %v, want 0.6", updated.Progress)
	}
	if updated.Title != course.Title || len(updated.Lessons) != len(course.Lessons) {
		t.Error("unrelated fields changed")
	}

	skill := SeedSkills()[0]
	if skill.WithProgress(2.0).Progress != 1.0 {
		t.Error("WithProgress must clamp above 1")
	}
	if skill.WithProgress(-1.0).Progress != 0.0 {
		t.Error("WithProgress must clamp below 0")
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.37, 0.37},
		{1, 1},
		{1.01, 1},
	}
	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Errorf("ClampProgress(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQueries(t *testing.T) {
	courses := SeedCourses()

	beginners := CoursesByDifficulty(courses, DifficultyBeginner)
	if len(beginners) != 1 || beginners[0].Language != "Spanish" {
		t.Errorf("beginner courses = %+v", beginners)
	}

	langs := Languages(courses)
	want := []string{"French", "Japanese", "Spanish"}
	if len(langs) != len(want) {
		t.Fatalf("languages = %v", langs)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("languages[%d] = %q, want %q", i, langs[i], want[i])
		}
	}

	challenges := SeedChallenges()
	if got := len(ChallengesByType(challenges, ChallengeMovie)); got != 2 {
		t.Errorf("movie challenges = %d, want 2", got)
	}
	if got := len(ChallengesByLanguage(challenges, "French")); got != 1 {
		t.Errorf("french challenges = %d, want 1", got)
	}
	if got := len(ChallengesByDifficulty(challenges, ChallengeHard)); got != 1 {
		t.Errorf("hard challenges = %d, want 1", got)
	}

	skills := SeedSkills()
	if got := len(SkillsByCategory(skills, CategoryNegotiation)); got != 1 {
		t.Errorf("negotiation skills = %d, want 1", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{15, "15 min"},
		{59, "59 min"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{65, "1:05"},
		{120, "2:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestLanguageFlag(t *testing.T) {
	if got := LanguageFlag("Japanese"); got != "🇯🇵" {
		t.Errorf("flag = %q", got)
	}
	if got := LanguageFlag("klingon"); got != "🌍" {
		t.Errorf("unknown language flag = %q", got)
	}
}
