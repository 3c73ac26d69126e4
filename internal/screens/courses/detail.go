package courses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// detailScreen shows one course's lessons. The course is re-read by id on
// every view so progress written by a finished lesson shows up on return.
type detailScreen struct {
	svc      *data.Service
	courseID uuid.UUID
	selected int
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetail(svc *data.Service, courseID uuid.UUID) *detailScreen {
	return &detailScreen{svc: svc, courseID: courseID}
}

func (d *detailScreen) Init() tea.Cmd {
	return nil
}

func (d *detailScreen) Title() string {
	course, ok := d.svc.CourseByID(d.courseID)
	if !ok {
		return "Course"
	}
	return course.Title
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	course, ok := d.svc.CourseByID(d.courseID)
	if !ok {
		return d, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(course.Lessons)-1 {
			d.selected++
		}
	case "enter":
		if d.selected >= len(course.Lessons) {
			return d, nil
		}
		lesson := course.Lessons[d.selected]
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: newLesson(d.svc, course, lesson)}
		}
	}

	return d, nil
}

func (d *detailScreen) View(width, height int) string {
	course, ok := d.svc.CourseByID(d.courseID)
	if !ok {
		return theme.Hint.Render("Course not found")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(course.Title) + "\n")
	b.WriteString(theme.Subtitle.Width(width).Render(course.Description) + "\n\n")

	bar := components.NewProgressBar("Course progress", course.Progress, true, 50)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	for i, lesson := range course.Lessons {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderLessonRow(lesson, i == d.selected)) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func renderLessonRow(lesson catalog.Lesson, selected bool) string {
	prefix := "   "
	if selected {
		prefix = " ▸ "
	}

	title := lesson.Title
	meta := fmt.Sprintf("%s · %d exercises",
		catalog.FormatDuration(lesson.Duration), len(lesson.Exercises))

	line := fmt.Sprintf("%s%-40s %s", prefix, title, meta)

	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}
