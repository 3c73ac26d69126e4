package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first"},
		{Label: "second", Disabled: true},
		{Label: "third"},
	})

	if m.Selected != 0 {
		t.Fatalf("expected initial selection 0, got %d", m.Selected)
	}

	m, _ = m.Update(keyPress('j'))
	if m.Selected != 2 {
		t.Errorf("expected selection to skip disabled item to 2, got %d", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 0 {
		t.Errorf("expected selection to skip back to 0, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "only", Action: func() tea.Cmd {
			return func() tea.Msg { ran = true; return nil }
		}},
	})

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	cmd()
	if !ran {
		t.Error("expected the item action to run")
	}
}

func TestMenuInitialSelectionSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
	})
	if m.Selected != 1 {
		t.Errorf("expected initial selection 1, got %d", m.Selected)
	}
}

func TestMultiChoiceSubmit(t *testing.T) {
	mc := NewMultiChoice("Pick B", []string{"a", "b", "c"}, 1)

	mc, _ = mc.Update(keyPress('j'))
	mc, _ = mc.Update(specialKey(tea.KeyEnter))

	if !mc.Submitted {
		t.Fatal("expected submitted state")
	}
	if mc.ChosenIndex != 1 {
		t.Errorf("expected chosen index 1, got %d", mc.ChosenIndex)
	}
	if !mc.IsCorrect() {
		t.Error("expected correct answer")
	}

	// Further input is ignored after submission.
	mc, _ = mc.Update(keyPress('j'))
	if mc.Selected != 1 {
		t.Errorf("expected selection frozen at 1, got %d", mc.Selected)
	}
}

func TestMultiChoiceWrongAnswer(t *testing.T) {
	mc := NewMultiChoice("Pick B", []string{"a", "b"}, 1)
	mc, _ = mc.Update(specialKey(tea.KeyEnter))

	if mc.IsCorrect() {
		t.Error("expected wrong answer")
	}
}

func TestMultiChoiceOptionLabels(t *testing.T) {
	mc := NewMultiChoice("q", []string{"one", "two", "three", "four", "five"}, 0)
	view := mc.View()
	for _, label := range []string{"A)", "B)", "C)", "D)", "E)"} {
		if !strings.Contains(view, label) {
			t.Errorf("expected view to contain %q", label)
		}
	}
}

func TestProgressBarClamps(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"zero", 0},
		{"full", 1},
		{"over", 1.5},
		{"negative", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar("", tt.percent, false, 20)
			// Rendering must not panic and must produce output.
			if bar.View() == "" {
				t.Error("expected non-empty bar")
			}
		})
	}
}

func TestButtonPress(t *testing.T) {
	pressed := false
	b := NewButton("Go", true, func() tea.Cmd {
		return func() tea.Msg { pressed = true; return nil }
	})

	_, cmd := b.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	cmd()
	if !pressed {
		t.Error("expected button press to run")
	}

	inactive := NewButton("Go", false, func() tea.Cmd { return nil })
	if _, cmd := inactive.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command from inactive button")
	}
}
