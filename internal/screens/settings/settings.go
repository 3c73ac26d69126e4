package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// mode is the settings screen's interaction state.
type mode int

const (
	modeMenu mode = iota
	modeEditName
	modeConfirmReset
)

// SettingsScreen edits the display name and offers a full data reset.
type SettingsScreen struct {
	svc      *data.Service
	mode     mode
	selected int
	input    components.TextInput
	status   string
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(svc *data.Service) *SettingsScreen {
	return &SettingsScreen{svc: svc}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeEditName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Keep my data"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeEditName:
		return s.updateEditName(msg)
	case modeConfirmReset:
		return s.updateConfirmReset(msg)
	}
	return s.updateMenu(msg)
}

func (s *SettingsScreen) updateMenu(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < 1 {
			s.selected++
		}
	case "enter":
		s.status = ""
		s.errMsg = ""
		switch s.selected {
		case 0:
			s.input = components.NewTextInput("Display name", 24)
			s.input.SetValue(s.svc.Username(context.Background(), ""))
			s.mode = modeEditName
			return s, s.input.Init()
		case 1:
			s.mode = modeConfirmReset
		}
	}

	return s, nil
}

func (s *SettingsScreen) updateEditName(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			s.errMsg = "Name cannot be empty"
			return s, nil
		}
		if err := s.svc.SetUsername(context.Background(), name); err != nil {
			s.errMsg = fmt.Sprintf("save name: %v", err)
			return s, nil
		}
		s.status = "Name saved"
		s.mode = modeMenu
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) updateConfirmReset(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "y":
		if err := s.svc.ResetAll(context.Background()); err != nil {
			s.errMsg = fmt.Sprintf("reset: %v", err)
		} else {
			s.status = "All progress reset"
		}
		s.mode = modeMenu
	case "n":
		s.mode = modeMenu
	}

	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Settings") + "\n\n")

	switch s.mode {
	case modeEditName:
		b.WriteString(theme.Subtitle.Width(width).Render("What should we call you?") + "\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()) + "\n")

	case modeConfirmReset:
		warning := theme.Incorrect.Render("Reset all progress and restore the built-in catalog?")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, warning) + "\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Points, streaks, scores, and course progress will be lost.") + "\n")

	default:
		name := s.svc.Username(context.Background(), "You")
		items := []string{
			fmt.Sprintf("Display name: %s", name),
			"Reset all data",
		}
		for i, item := range items {
			prefix := "    "
			if i == s.selected {
				prefix = "  ▸ "
			}
			line := prefix + item
			if i == s.selected {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Selected.Render(line)) + "\n")
			} else {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Text).Render(line)) + "\n")
			}
		}
	}

	if s.status != "" {
		b.WriteString("\n" + theme.Correct.Width(width).Align(lipgloss.Center).Render(s.status) + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
