package courses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/session"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// lessonScreen steps through one lesson's exercises.
type lessonScreen struct {
	svc      *data.Service
	sess     *session.CourseSession
	selected int
	done     bool
}

var _ screen.Screen = (*lessonScreen)(nil)
var _ screen.KeyHintProvider = (*lessonScreen)(nil)

func newLesson(svc *data.Service, course catalog.Course, lesson catalog.Lesson) *lessonScreen {
	sess := session.NewCourseSession(svc)
	sess.Course = &course
	sess.StartLesson(lesson)
	return &lessonScreen{svc: svc, sess: sess}
}

func (l *lessonScreen) Init() tea.Cmd {
	return nil
}

func (l *lessonScreen) Title() string {
	if l.sess.Lesson != nil {
		return l.sess.Lesson.Title
	}
	return "Lesson"
}

func (l *lessonScreen) KeyHints() []layout.KeyHint {
	if l.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	if l.sess.ShowingResult {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (l *lessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.done {
		if kmsg.String() == "enter" {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	if l.sess.ShowingResult {
		if kmsg.String() == "enter" {
			l.sess.NextExercise(context.Background())
			l.selected = 0
			if l.sess.Lesson == nil {
				l.done = true
			}
		}
		return l, nil
	}

	ex := l.sess.Exercise
	if ex == nil {
		// Lesson with no exercises: nothing to answer, back out.
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch kmsg.String() {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(ex.Options)-1 {
			l.selected++
		}
	case "enter":
		l.sess.SubmitAnswer(l.selected)
	}

	return l, nil
}

func (l *lessonScreen) View(width, height int) string {
	if l.done {
		return l.renderDone(width, height)
	}

	ex := l.sess.Exercise
	if ex == nil || l.sess.Lesson == nil {
		return theme.Hint.Render("This lesson has no exercises yet.")
	}

	var b strings.Builder

	counter := fmt.Sprintf("Exercise %d of %d", l.sess.ExerciseIndex+1, len(l.sess.Lesson.Exercises))
	b.WriteString(theme.Subtitle.Width(width).Render(counter) + "\n")

	bar := components.NewProgressBar("", l.sess.LessonProgress, false, 40)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	mc := components.MultiChoice{
		Question:     ex.Question,
		Options:      ex.Options,
		CorrectIndex: ex.CorrectAnswer,
		Selected:     l.selected,
		Submitted:    l.sess.ShowingResult,
		ChosenIndex:  l.sess.SelectedAnswer,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View()))

	if l.sess.ShowingResult {
		var verdict string
		if l.sess.Correct {
			verdict = theme.Correct.Render("Correct!")
		} else {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		if ex.Explanation != "" {
			verdict += "  " + theme.Hint.Render(ex.Explanation)
		}
		b.WriteString("\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (l *lessonScreen) renderDone(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Lesson complete!") + "\n\n")
	// Re-read the course so the panel shows the stored progress, not
	// the stale copy the session was started with.
	if l.sess.Course != nil {
		if course, ok := l.svc.CourseByID(l.sess.Course.ID); ok {
			bar := components.NewProgressBar("Course progress", course.Progress, true, 50)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n")
		}
	}
	if l.sess.ErrMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(l.sess.ErrMsg) + "\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
