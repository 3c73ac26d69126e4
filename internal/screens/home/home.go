package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/remote"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/screens/challenges"
	"github.com/dafoma/lingualearn/internal/screens/courses"
	"github.com/dafoma/lingualearn/internal/screens/settings"
	"github.com/dafoma/lingualearn/internal/screens/skills"
	"github.com/dafoma/lingualearn/internal/screens/stats"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// HomeScreen is the main navigation hub.
type HomeScreen struct {
	svc    *data.Service
	client *remote.Client
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *data.Service, client *remote.Client) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LANGUAGE COURSES", Detail: courseDetail(svc), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: courses.New(svc, client)}
			}
		}},
		{Label: "BUSINESS SKILLS", Detail: skillDetail(svc), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skills.New(svc)}
			}
		}},
		{Label: "CHALLENGES", Detail: challengeDetail(svc), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: challenges.New(svc)}
			}
		}},
		{Label: "STATS & LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(svc, client)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(svc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:    svc,
		client: client,
		menu:   components.NewMenu(items),
	}
}

func courseDetail(svc *data.Service) string {
	done := len(svc.Progress().CompletedCourses)
	return fmt.Sprintf("%d/%d completed", done, len(svc.Courses()))
}

func skillDetail(svc *data.Service) string {
	done := len(svc.Progress().CompletedSkills)
	return fmt.Sprintf("%d/%d completed", done, len(svc.Skills()))
}

func challengeDetail(svc *data.Service) string {
	return fmt.Sprintf("%d/%d played", len(svc.Progress().ChallengeScores), len(svc.Challenges()))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	prog := h.svc.Progress()
	name := h.svc.Username(context.Background(), "You")

	// Completion counts change while the hub sits under pushed screens,
	// so refresh them every render.
	h.menu.Items[0].Detail = courseDetail(h.svc)
	h.menu.Items[1].Detail = skillDetail(h.svc)
	h.menu.Items[2].Detail = challengeDetail(h.svc)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("LinguaLearn") + "\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Hola, "+name+"!") + "\n\n")

	level := fmt.Sprintf("Level %d", prog.Level())
	points := fmt.Sprintf("%d points", prog.TotalPoints)
	streak := fmt.Sprintf("%d day streak", prog.CurrentStreak)
	statsLine := lipgloss.NewStyle().Foreground(theme.Accent).Render(level) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(points) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(streak)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine) + "\n")

	bar := components.NewProgressBar("", prog.NextLevelProgress(), true, 40)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	menuBox := theme.Card.Render(h.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menuBox))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
