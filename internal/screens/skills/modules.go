package skills

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

// modulesScreen lists one skill's modules. The skill is re-read by id so
// progress written by a finished module shows up on return.
type modulesScreen struct {
	svc      *data.Service
	skillID  uuid.UUID
	selected int
}

var _ screen.Screen = (*modulesScreen)(nil)
var _ screen.KeyHintProvider = (*modulesScreen)(nil)

func newModules(svc *data.Service, skillID uuid.UUID) *modulesScreen {
	return &modulesScreen{svc: svc, skillID: skillID}
}

func (m *modulesScreen) Init() tea.Cmd {
	return nil
}

func (m *modulesScreen) Title() string {
	skill, ok := m.svc.SkillByID(m.skillID)
	if !ok {
		return "Skill"
	}
	return skill.Title
}

func (m *modulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *modulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	skill, ok := m.svc.SkillByID(m.skillID)
	if !ok {
		return m, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(skill.Modules)-1 {
			m.selected++
		}
	case "enter":
		if m.selected >= len(skill.Modules) {
			return m, nil
		}
		module := skill.Modules[m.selected]
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: newScenarios(m.svc, skill, module)}
		}
	}

	return m, nil
}

func (m *modulesScreen) View(width, height int) string {
	skill, ok := m.svc.SkillByID(m.skillID)
	if !ok {
		return theme.Hint.Render("Skill not found")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(skill.Title) + "\n")
	b.WriteString(theme.Subtitle.Width(width).Render(skill.Description) + "\n\n")

	bar := components.NewProgressBar("Skill progress", skill.Progress, true, 50)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	for i, module := range skill.Modules {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderModuleRow(module, i == m.selected)) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func renderModuleRow(module catalog.SkillModule, selected bool) string {
	prefix := "   "
	if selected {
		prefix = " ▸ "
	}

	line := fmt.Sprintf("%s%-40s %s · %d scenarios",
		prefix, module.Title, catalog.FormatDuration(module.Duration), len(module.Scenarios))

	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}
