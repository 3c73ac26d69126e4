package courses

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/store"
)

func openTestService(t *testing.T) *data.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc, err := data.NewService(context.Background(), st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testCourse(t *testing.T, svc *data.Service) catalog.Course {
	t.Helper()
	course := catalog.Course{
		ID:         uuid.New(),
		Title:      "Test Course",
		Language:   "Spanish",
		Difficulty: catalog.DifficultyBeginner,
		Lessons: []catalog.Lesson{
			{
				ID:    uuid.New(),
				Title: "Lesson One",
				Exercises: []catalog.Exercise{
					{
						ID:            uuid.New(),
						Question:      "How do you say hello?",
						Options:       []string{"Hola", "Adiós", "Gracias"},
						CorrectAnswer: 0,
						Explanation:   "Hola is the greeting.",
						Type:          catalog.ExerciseMultipleChoice,
					},
				},
				Duration: 10,
			},
		},
	}
	if err := svc.ReplaceCourses(context.Background(), []catalog.Course{course}); err != nil {
		t.Fatalf("replace courses: %v", err)
	}
	return course
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLessonViewRendersExerciseOptions(t *testing.T) {
	svc := openTestService(t)
	course := testCourse(t, svc)
	l := newLesson(svc, course, course.Lessons[0])

	view := l.View(100, 40)
	if !strings.Contains(view, "How do you say hello?") {
		t.Error("expected question text in view")
	}
	for _, label := range []string{"A)", "B)", "C)"} {
		if !strings.Contains(view, label) {
			t.Errorf("expected option label %q in view", label)
		}
	}
}

func TestLessonViewShowsResultAfterAnswer(t *testing.T) {
	svc := openTestService(t)
	course := testCourse(t, svc)
	l := newLesson(svc, course, course.Lessons[0])

	l.Update(specialKey(tea.KeyEnter))

	view := l.View(100, 40)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected verdict in view")
	}
	if !strings.Contains(view, "Hola is the greeting.") {
		t.Error("expected explanation in view")
	}
}
