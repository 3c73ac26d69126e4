package challenges

import (
	"context"
	"fmt"
	"strings"
	"time"

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

// quizTickMsg drives the countdown. Each tick carries the timer generation
// it was scheduled under; the session drops ticks from a stale generation
// so an old countdown can never bleed into a fresh question.
type quizTickMsg struct {
	gen int
}

// quizScreen runs one timed challenge quiz.
type quizScreen struct {
	sess     *session.ChallengeSession
	selected int
}

var _ screen.Screen = (*quizScreen)(nil)
var _ screen.KeyHintProvider = (*quizScreen)(nil)

func newQuiz(svc *data.Service, challenge catalog.EntertainmentChallenge) *quizScreen {
	sess := session.NewChallengeSession(svc)
	sess.Start(challenge)
	return &quizScreen{sess: sess}
}

func (q *quizScreen) Init() tea.Cmd {
	if q.sess.TimerActive {
		return q.tickCmd()
	}
	return nil
}

// tickCmd schedules the next countdown tick under the current generation.
func (q *quizScreen) tickCmd() tea.Cmd {
	gen := q.sess.TimerGen()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return quizTickMsg{gen: gen}
	})
}

func (q *quizScreen) Title() string {
	if q.sess.Challenge != nil {
		return q.sess.Challenge.Title
	}
	return "Challenge"
}

func (q *quizScreen) KeyHints() []layout.KeyHint {
	if q.sess.Completed {
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	if q.sess.ShowingResult {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *quizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizTickMsg:
		if q.sess.Tick(msg.gen) {
			return q, q.tickCmd()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *quizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.sess.Completed {
		if msg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.sess.ShowingResult {
		if msg.String() == "enter" {
			q.sess.NextQuestion(context.Background())
			q.selected = 0
			if q.sess.TimerActive {
				return q, q.tickCmd()
			}
		}
		return q, nil
	}

	question := q.sess.Question
	if question == nil {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(question.Options)-1 {
			q.selected++
		}
	case "enter":
		q.sess.SubmitAnswer(q.selected)
	}

	return q, nil
}

func (q *quizScreen) View(width, height int) string {
	if q.sess.Completed {
		return q.renderDone(width, height)
	}

	question := q.sess.Question
	challenge := q.sess.Challenge
	if question == nil || challenge == nil {
		return theme.Hint.Render("This challenge has no questions yet.")
	}

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", q.sess.QuestionIndex+1, len(challenge.Questions))
	b.WriteString(theme.Subtitle.Width(width).Render(counter) + "\n")

	clockStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if q.sess.TimeRemaining <= 10 {
		clockStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	clock := clockStyle.Render("⏱ " + catalog.FormatClock(q.sess.TimeRemaining))
	score := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d", q.sess.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, clock+"   "+score) + "\n")

	timeFrac := 0.0
	if challenge.TimeLimit > 0 {
		timeFrac = float64(q.sess.TimeRemaining) / float64(challenge.TimeLimit)
	}
	bar := components.NewProgressBar("", timeFrac, false, 40)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n")

	mc := components.MultiChoice{
		Question:     question.Question,
		Options:      question.Options,
		CorrectIndex: question.CorrectAnswer,
		Selected:     q.selected,
		Submitted:    q.sess.ShowingResult,
		ChosenIndex:  q.sess.SelectedAnswer,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View()))

	if q.sess.ShowingResult {
		var verdict string
		switch {
		case q.sess.Correct:
			verdict = theme.Correct.Render("Correct!")
		case q.sess.SelectedAnswer < 0:
			verdict = theme.Incorrect.Render("Time's up!")
		default:
			verdict = theme.Incorrect.Render("Not quite.")
		}
		if question.Explanation != "" {
			verdict += "  " + theme.Hint.Render(question.Explanation)
		}
		b.WriteString("\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict) + "\n")
		if question.CulturalNote != "" {
			note := theme.Hint.Render("🌍 " + question.CulturalNote)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note) + "\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (q *quizScreen) renderDone(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Challenge complete!") + "\n\n")

	award := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Final score: %d", q.sess.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, award) + "\n")

	if ch := q.sess.Challenge; ch != nil && ch.MediaReference != nil {
		media := ch.MediaReference
		desc := media.Title
		if media.Year != nil {
			desc += fmt.Sprintf(" (%d)", *media.Year)
		}
		desc += " · " + media.Creator
		b.WriteString("\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Explore further: "+desc)) + "\n")
	}
	if q.sess.ErrMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(q.sess.ErrMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
