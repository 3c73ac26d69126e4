package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/remote"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// leaderboardMsg is sent when the simulated leaderboard fetch returns.
// Responses carry the generation they were requested under so a reload
// started before the latest one is dropped.
type leaderboardMsg struct {
	gen     int
	entries []remote.LeaderboardEntry
	err     error
}

// syncedMsg is sent when the simulated progress upload returns.
type syncedMsg struct {
	gen int
	err error
}

// StatsScreen shows the learner's progress summary and the leaderboard.
// The fetch and sync requests run independently, so each carries its own
// generation counter; a response only lands if its generation still matches.
type StatsScreen struct {
	svc      *data.Service
	client   *remote.Client
	entries  []remote.LeaderboardEntry
	loading  bool
	syncing  bool
	synced   bool
	fetchGen int
	syncGen  int
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *data.Service, client *remote.Client) *StatsScreen {
	return &StatsScreen{svc: svc, client: client}
}

func (s *StatsScreen) Init() tea.Cmd {
	s.loading = true
	s.fetchGen++
	return s.fetchLeaderboard(s.fetchGen)
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Sync progress"},
		{Key: "R", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) fetchLeaderboard(gen int) tea.Cmd {
	prog := s.svc.Progress()
	name := s.svc.Username(context.Background(), "You")
	points := prog.TotalPoints
	level := prog.Level()
	return func() tea.Msg {
		entries, err := s.client.FetchLeaderboard(context.Background(), name, points, level)
		return leaderboardMsg{gen: gen, entries: entries, err: err}
	}
}

func (s *StatsScreen) syncProgress(gen int) tea.Cmd {
	prog := s.svc.Progress()
	return func() tea.Msg {
		_, err := s.client.SyncProgress(context.Background(), prog)
		return syncedMsg{gen: gen, err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardMsg:
		if msg.gen != s.fetchGen {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("leaderboard: %v", msg.err)
			return s, nil
		}
		entries := msg.entries
		remote.SortLeaderboard(entries)
		s.entries = entries
		return s, nil

	case syncedMsg:
		if msg.gen != s.syncGen {
			return s, nil
		}
		s.syncing = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("sync: %v", msg.err)
			return s, nil
		}
		s.synced = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if s.loading {
				return s, nil
			}
			s.loading = true
			s.errMsg = ""
			s.fetchGen++
			return s, s.fetchLeaderboard(s.fetchGen)
		case "s":
			if s.syncing {
				return s, nil
			}
			s.syncing = true
			s.synced = false
			s.errMsg = ""
			s.syncGen++
			return s, s.syncProgress(s.syncGen)
		}
	}

	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	prog := s.svc.Progress()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Your Progress") + "\n\n")

	var card strings.Builder
	card.WriteString(statLine("Level", fmt.Sprintf("%d", prog.Level())))
	card.WriteString(statLine("Total points", fmt.Sprintf("%d", prog.TotalPoints)))
	card.WriteString(statLine("Current streak", fmt.Sprintf("%d days", prog.CurrentStreak)))
	card.WriteString(statLine("Study time", catalog.FormatDuration(prog.StudyTimeMinutes)))
	card.WriteString(statLine("Courses completed", fmt.Sprintf("%d", len(prog.CompletedCourses))))
	card.WriteString(statLine("Skills completed", fmt.Sprintf("%d", len(prog.CompletedSkills))))
	card.WriteString(statLine("Challenges played", fmt.Sprintf("%d", len(prog.ChallengeScores))))

	bar := components.NewProgressBar("Next level", prog.NextLevelProgress(), true, 44)
	card.WriteString("\n" + bar.View())

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card.String())) + "\n\n")

	b.WriteString(theme.Title.Width(width).Render("Leaderboard") + "\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Loading leaderboard...") + "\n")
	case len(s.entries) == 0:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("No entries yet") + "\n")
	default:
		name := s.svc.Username(context.Background(), "You")
		var rows strings.Builder
		for i, e := range s.entries {
			row := fmt.Sprintf("%2d.  %-20s  Lv %-3d  %6d pts", i+1, e.Username, e.Level, e.Points)
			if e.Username == name {
				rows.WriteString(theme.Selected.Render(row) + "\n")
			} else {
				rows.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(row) + "\n")
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	}

	if s.syncing {
		b.WriteString("\n" + theme.Hint.Width(width).Align(lipgloss.Center).Render("Syncing progress...") + "\n")
	} else if s.synced {
		b.WriteString("\n" + theme.Correct.Width(width).Align(lipgloss.Center).Render("Progress synced ✓") + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-20s", label)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n"
}
