package skills

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

// scenariosScreen runs one module's practice scenarios. Scenarios complete
// in any order; covering the whole set completes the module and awards
// points based on the module duration.
type scenariosScreen struct {
	sess     *session.SkillSession
	selected int
	reading  bool
}

var _ screen.Screen = (*scenariosScreen)(nil)
var _ screen.KeyHintProvider = (*scenariosScreen)(nil)

func newScenarios(svc *data.Service, skill catalog.BusinessSkill, module catalog.SkillModule) *scenariosScreen {
	sess := session.NewSkillSession(svc)
	sess.Skill = &skill
	sess.StartModule(module)
	return &scenariosScreen{sess: sess}
}

func (s *scenariosScreen) Init() tea.Cmd {
	return nil
}

func (s *scenariosScreen) Title() string {
	if s.sess.Module != nil {
		return s.sess.Module.Title
	}
	return "Practice"
}

func (s *scenariosScreen) moduleDone() bool {
	return s.sess.ModuleProgress >= 1.0
}

func (s *scenariosScreen) KeyHints() []layout.KeyHint {
	if s.moduleDone() {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	if s.reading {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Mark practiced"},
			{Key: "←", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open scenario"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *scenariosScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.moduleDone() {
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	module := s.sess.Module
	if module == nil {
		return s, nil
	}

	if s.reading {
		switch kmsg.String() {
		case "enter":
			if s.selected < len(module.Scenarios) {
				s.sess.CompleteScenario(context.Background(), module.Scenarios[s.selected])
			}
			s.reading = false
		case "left", "h":
			s.reading = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(module.Scenarios)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(module.Scenarios) {
			s.sess.SelectScenario(module.Scenarios[s.selected])
			s.reading = true
		}
	}

	return s, nil
}

func (s *scenariosScreen) View(width, height int) string {
	if s.moduleDone() {
		return s.renderDone(width, height)
	}
	if s.reading {
		return s.renderScenario(width, height)
	}
	return s.renderList(width, height)
}

func (s *scenariosScreen) renderList(width, height int) string {
	module := s.sess.Module
	if module == nil {
		return theme.Hint.Render("No module selected")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(module.Title) + "\n")
	b.WriteString(theme.Subtitle.Width(width).Render(module.Content) + "\n\n")

	bar := components.NewProgressBar("Module progress", s.sess.ModuleProgress, true, 50)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	for i, sc := range module.Scenarios {
		check := "○"
		if s.sess.Completed[sc.ID] {
			check = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
		}
		prefix := "   "
		if i == s.selected {
			prefix = " ▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, check, sc.Title)
		if i == s.selected {
			line = theme.Selected.Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *scenariosScreen) renderScenario(width, height int) string {
	sc := s.sess.Scenario
	if sc == nil {
		return theme.Hint.Render("No scenario selected")
	}

	textWidth := width - 12
	if textWidth > 66 {
		textWidth = 66
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(sc.Title) + "\n\n")

	var card strings.Builder
	card.WriteString(heading.Render("Situation") + "\n")
	card.WriteString(body.Render(sc.Situation) + "\n\n")
	card.WriteString(heading.Render("Cultural context") + "\n")
	card.WriteString(dim.Render(sc.CulturalContext) + "\n\n")

	if len(sc.KeyPhrases) > 0 {
		card.WriteString(heading.Render("Key phrases") + "\n")
		for _, p := range sc.KeyPhrases {
			card.WriteString(body.Render("· "+p) + "\n")
		}
		card.WriteString("\n")
	}
	if len(sc.Tips) > 0 {
		card.WriteString(heading.Render("Tips") + "\n")
		for _, tip := range sc.Tips {
			card.WriteString(dim.Render("· "+tip) + "\n")
		}
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card.String())))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *scenariosScreen) renderDone(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Module complete!") + "\n\n")

	if s.sess.Module != nil {
		points := s.sess.Module.Duration * session.PointsPerMinute
		award := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("+%d points", points))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, award) + "\n")
	}
	if s.sess.ErrMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.sess.ErrMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
