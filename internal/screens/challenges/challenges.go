package challenges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// ChallengesScreen lists the entertainment challenge catalog with the
// player's best recorded score per challenge.
type ChallengesScreen struct {
	svc      *data.Service
	selected int
}

var _ screen.Screen = (*ChallengesScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengesScreen)(nil)

// New creates a new ChallengesScreen.
func New(svc *data.Service) *ChallengesScreen {
	return &ChallengesScreen{svc: svc}
}

func (c *ChallengesScreen) Init() tea.Cmd {
	return nil
}

func (c *ChallengesScreen) Title() string {
	return "Challenges"
}

func (c *ChallengesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChallengesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	challenges := c.svc.Challenges()
	switch kmsg.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(challenges)-1 {
			c.selected++
		}
	case "enter":
		if c.selected >= len(challenges) {
			return c, nil
		}
		challenge := challenges[c.selected]
		return c, func() tea.Msg {
			return router.PushScreenMsg{Screen: newQuiz(c.svc, challenge)}
		}
	}

	return c, nil
}

func (c *ChallengesScreen) View(width, height int) string {
	challenges := c.svc.Challenges()
	scores := c.svc.Progress().ChallengeScores

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Entertainment Challenges") + "\n\n")

	cardWidth := width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}

	for i, ch := range challenges {
		score, played := scores[ch.ID]
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderChallengeCard(ch, score, played, cardWidth, i == c.selected)) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func renderChallengeCard(ch catalog.EntertainmentChallenge, score int, played bool, width int, selected bool) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s  %s", ch.Type.Icon(), ch.Title))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %d pts · %s",
			ch.Language, ch.Difficulty, ch.Points, catalog.FormatClock(ch.TimeLimit)))

	scoreLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Not played yet")
	if played {
		scoreLine = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Last score: %d", score))
	}

	body := title + "\n" + meta + "\n" + scoreLine

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}
	return style.Render(body)
}
