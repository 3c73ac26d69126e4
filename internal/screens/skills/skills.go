package skills

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// SkillsScreen lists the business skill catalog.
type SkillsScreen struct {
	svc      *data.Service
	selected int
}

var _ screen.Screen = (*SkillsScreen)(nil)
var _ screen.KeyHintProvider = (*SkillsScreen)(nil)

// New creates a new SkillsScreen.
func New(svc *data.Service) *SkillsScreen {
	return &SkillsScreen{svc: svc}
}

func (s *SkillsScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillsScreen) Title() string {
	return "Business Skills"
}

func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	skills := s.svc.Skills()
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(skills)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= len(skills) {
			return s, nil
		}
		skill := skills[s.selected]
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: newModules(s.svc, skill.ID)}
		}
	}

	return s, nil
}

func (s *SkillsScreen) View(width, height int) string {
	skills := s.svc.Skills()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Business Skills") + "\n\n")

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	for i, skill := range skills {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderSkillCard(skill, cardWidth, i == s.selected)) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func renderSkillCard(skill catalog.BusinessSkill, width int, selected bool) string {
	icon := skill.Icon
	if icon == "" {
		icon = skill.Category.Icon()
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s  %s", icon, skill.Title))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %d modules",
			skill.Category, skill.EstimatedTime, len(skill.Modules)))

	bar := components.NewProgressBar("", skill.Progress, true, width-6)

	body := title + "\n" + meta + "\n" + bar.View()

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(body)
}
