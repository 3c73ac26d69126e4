package courses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/remote"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// CoursesScreen lists the course catalog with per-course progress.
type CoursesScreen struct {
	svc      *data.Service
	client   *remote.Client
	selected int
	loading  bool
	fetchGen int
	errMsg   string
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a new CoursesScreen.
func New(svc *data.Service, client *remote.Client) *CoursesScreen {
	return &CoursesScreen{svc: svc, client: client}
}

func (c *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (c *CoursesScreen) Title() string {
	return "Courses"
}

func (c *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesFetchedMsg:
		if msg.gen != c.fetchGen {
			return c, nil
		}
		c.loading = false
		if msg.err != nil {
			c.errMsg = fmt.Sprintf("refresh failed: %v", msg.err)
			return c, nil
		}
		if err := c.svc.ReplaceCourses(context.Background(), msg.courses); err != nil {
			c.errMsg = fmt.Sprintf("save courses: %v", err)
		}
		return c, nil

	case tea.KeyMsg:
		courses := c.svc.Courses()
		switch msg.String() {
		case "up", "k":
			if c.selected > 0 {
				c.selected--
			}
		case "down", "j":
			if c.selected < len(courses)-1 {
				c.selected++
			}
		case "enter":
			if c.loading || c.selected >= len(courses) {
				return c, nil
			}
			course := courses[c.selected]
			return c, func() tea.Msg {
				return router.PushScreenMsg{Screen: newDetail(c.svc, course.ID)}
			}
		case "r":
			if c.loading {
				return c, nil
			}
			c.loading = true
			c.errMsg = ""
			c.fetchGen++
			return c, c.fetchCourses(c.fetchGen)
		}
	}

	return c, nil
}

// fetchCourses runs the simulated network refresh off the update loop.
func (c *CoursesScreen) fetchCourses(gen int) tea.Cmd {
	return func() tea.Msg {
		courses, err := c.client.FetchCourses(context.Background())
		return coursesFetchedMsg{gen: gen, courses: courses, err: err}
	}
}

func (c *CoursesScreen) View(width, height int) string {
	courses := c.svc.Courses()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Language Courses") + "\n\n")

	if c.loading {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Refreshing catalog...") + "\n\n")
	}
	if c.errMsg != "" {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(c.errMsg) + "\n\n")
	}

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	for i, course := range courses {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderCourseCard(course, cardWidth, i == c.selected)) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func renderCourseCard(course catalog.Course, width int, selected bool) string {
	flag := course.Flag
	if flag == "" {
		flag = catalog.LanguageFlag(course.Language)
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s  %s", flag, course.Title))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %d lessons",
			course.Difficulty, course.EstimatedTime, len(course.Lessons)))

	bar := components.NewProgressBar("", course.Progress, true, width-6)

	body := title + "\n" + meta + "\n" + bar.View()

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(body)
}
