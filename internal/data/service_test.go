package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/store"
)

func openTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc, err := NewService(context.Background(), st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, st
}

func TestLoadSeedsFreshStore(t *testing.T) {
	svc, _ := openTestService(t)

	if got := len(svc.Courses()); got != 3 {
		t.Errorf("courses = %d, want 3", got)
	}
	if got := len(svc.Skills()); got != 3 {
		t.Errorf("skills = %d, want 3", got)
	}
	if got := len(svc.Challenges()); got != 3 {
		t.Errorf("challenges = %d, want 3", got)
	}
	if svc.Progress().TotalPoints != 0 {
		t.Errorf("totalPoints = %d, want 0", svc.Progress().TotalPoints)
	}
}

func TestPersistedStateSurvivesReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	svc, err := NewService(ctx, st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	courseID := svc.Courses()[1].ID
	if err := svc.UpdateCourseProgress(ctx, courseID, 0.5); err != nil {
		t.Fatalf("update course progress: %v", err)
	}
	if err := svc.AddChallengeScore(ctx, svc.Challenges()[0].ID, 125); err != nil {
		t.Fatalf("add challenge score: %v", err)
	}
	st.Close()

	st2, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st2.Close()
	svc2, err := NewService(ctx, st2)
	if err != nil {
		t.Fatalf("reload service: %v", err)
	}

	course, ok := svc2.CourseByID(courseID)
	if !ok {
		t.Fatal("course missing after reload")
	}
	if course.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", course.Progress)
	}
	if svc2.Progress().TotalPoints != 125 {
		t.Errorf("totalPoints = %d, want 125", svc2.Progress().TotalPoints)
	}
}

func TestCorruptPayloadReseeds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	// Valid version but garbage payloads: load must degrade to seed data.
	if err := st.Put(ctx, "catalog_version", []byte(catalog.SeedVersion)); err != nil {
		t.Fatalf("put version: %v", err)
	}
	if err := st.Put(ctx, "saved_courses", []byte("{not json")); err != nil {
		t.Fatalf("put courses: %v", err)
	}
	if err := st.Put(ctx, "user_progress", []byte("[]")); err != nil {
		t.Fatalf("put progress: %v", err)
	}

	svc, err := NewService(ctx, st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if len(svc.Courses()) != 3 {
		t.Errorf("courses = %d, want seed data", len(svc.Courses()))
	}
	if svc.Progress().TotalPoints != 0 {
		t.Errorf("totalPoints = %d, want fresh progress", svc.Progress().TotalPoints)
	}

	// The reseed must also self-heal the persisted payload.
	raw, ok, err := st.Get(ctx, "saved_courses")
	if err != nil || !ok {
		t.Fatalf("saved_courses missing after reseed (ok=%v err=%v)", ok, err)
	}
	if err := catalog.ValidateCourses(raw); err != nil {
		t.Errorf("reseeded payload invalid: %v", err)
	}
}

func TestSchemaViolationReseeds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if err := st.Put(ctx, "catalog_version", []byte(catalog.SeedVersion)); err != nil {
		t.Fatalf("put version: %v", err)
	}
	// Well-formed JSON that fails the schema (missing required fields).
	if err := st.Put(ctx, "saved_challenges", []byte(`[{"title":"x"}]`)); err != nil {
		t.Fatalf("put challenges: %v", err)
	}

	svc, err := NewService(ctx, st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if len(svc.Challenges()) != 3 {
		t.Errorf("challenges = %d, want seed data", len(svc.Challenges()))
	}
}

func TestStaleCatalogVersionReseeds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	svc, err := NewService(ctx, st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.UpdateCourseProgress(ctx, svc.Courses()[0].ID, 0.7); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Roll the stored version back; the next load must reseed the catalog.
	if err := st.Put(ctx, "catalog_version", []byte("v0.9.0")); err != nil {
		t.Fatalf("put version: %v", err)
	}
	svc2, err := NewService(ctx, st)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := svc2.Courses()[0].Progress; got != 0 {
		t.Errorf("progress = %v, want reseeded 0", got)
	}

	raw, _, err := st.Get(ctx, "catalog_version")
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if string(raw) != catalog.SeedVersion {
		t.Errorf("stored version = %s, want %s", raw, catalog.SeedVersion)
	}
}

func TestUpdateCourseProgress(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	original := svc.Courses()[0]

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"mid", 0.4, 0.4},
		{"clamp high", 1.7, 1.0},
		{"clamp low", -0.2, 0.0},
		{"exact one", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.UpdateCourseProgress(ctx, original.ID, tt.in); err != nil {
				t.Fatalf("update: %v", err)
			}
			got, ok := svc.CourseByID(original.ID)
			if !ok {
				t.Fatal("course id lost across update")
			}
			if got.Progress != tt.want {
				t.Errorf("progress = %v, want %v", got.Progress, tt.want)
			}
			if got.Title != original.Title || got.Language != original.Language {
				t.Error("non-progress fields changed across update")
			}
			if len(got.Lessons) != len(original.Lessons) {
				t.Error("lessons changed across update")
			}
		})
	}
}

func TestUpdateProgressUnknownIDIsNoop(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	before := svc.Courses()
	if err := svc.UpdateCourseProgress(ctx, uuid.New(), 0.9); err != nil {
		t.Fatalf("update: %v", err)
	}
	for i, c := range svc.Courses() {
		if c.Progress != before[i].Progress {
			t.Errorf("course %d progress changed by unknown-id update", i)
		}
	}

	if err := svc.UpdateSkillProgress(ctx, uuid.New(), 0.9); err != nil {
		t.Fatalf("update skill: %v", err)
	}
}

func TestFullProgressMarksCompleted(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	courseID := svc.Courses()[0].ID
	if err := svc.UpdateCourseProgress(ctx, courseID, 1.0); err != nil {
		t.Fatalf("update: %v", err)
	}

	found := false
	for _, id := range svc.Progress().CompletedCourses {
		if id == courseID {
			found = true
		}
	}
	if !found {
		t.Error("course not marked completed at progress 1.0")
	}

	// A second completion must not duplicate the entry.
	if err := svc.UpdateCourseProgress(ctx, courseID, 1.0); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := len(svc.Progress().CompletedCourses); got != 1 {
		t.Errorf("completedCourses = %d entries, want 1", got)
	}
}

func TestAddChallengeScoreOverwrites(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	id := svc.Challenges()[0].ID
	if err := svc.AddChallengeScore(ctx, id, 100); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddChallengeScore(ctx, id, 60); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Per-challenge slot holds the most recent score; the total keeps both.
	if got := svc.Progress().ChallengeScores[id]; got != 60 {
		t.Errorf("challenge score = %d, want 60", got)
	}
	if got := svc.Progress().TotalPoints; got != 160 {
		t.Errorf("totalPoints = %d, want 160", got)
	}
}

func TestResetAll(t *testing.T) {
	svc, st := openTestService(t)
	ctx := context.Background()

	if err := svc.UpdateCourseProgress(ctx, svc.Courses()[0].ID, 0.8); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.AddChallengeScore(ctx, svc.Challenges()[0].ID, 500); err != nil {
		t.Fatalf("add score: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	seed := catalog.SeedCourses()
	for i, c := range svc.Courses() {
		if c.ID != seed[i].ID || c.Progress != 0 {
			t.Errorf("course %d not reset to seed (id=%v progress=%v)", i, c.ID, c.Progress)
		}
	}
	if svc.Progress().TotalPoints != 0 || len(svc.Progress().ChallengeScores) != 0 {
		t.Error("progress not zero-valued after reset")
	}

	// All four keys must be persisted again after the reset.
	for _, key := range []string{"saved_courses", "saved_skills", "saved_challenges", "user_progress"} {
		_, ok, err := st.Get(ctx, key)
		if err != nil || !ok {
			t.Errorf("key %s missing after reset (ok=%v err=%v)", key, ok, err)
		}
	}
}

func TestOnboardingFlag(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	if svc.OnboardingComplete(ctx) {
		t.Error("onboarding complete on fresh install")
	}
	if err := svc.SetOnboardingComplete(ctx); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !svc.OnboardingComplete(ctx) {
		t.Error("onboarding flag not persisted")
	}
}

func TestUsername(t *testing.T) {
	svc, _ := openTestService(t)
	ctx := context.Background()

	if got := svc.Username(ctx, "You"); got != "You" {
		t.Errorf("username = %q, want fallback", got)
	}
	if err := svc.SetUsername(ctx, "PolyglotPam"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := svc.Username(ctx, "You"); got != "PolyglotPam" {
		t.Errorf("username = %q", got)
	}
}
