package onboarding

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/router"
	"github.com/dafoma/lingualearn/internal/screen"
	"github.com/dafoma/lingualearn/internal/ui/components"
	"github.com/dafoma/lingualearn/internal/ui/layout"
	"github.com/dafoma/lingualearn/internal/ui/theme"
)

// Page is one panel of the intro carousel.
type Page struct {
	Title       string
	Subtitle    string
	Description string
	Icon        string
}

// Pages is the fixed intro carousel shown on first launch.
var Pages = []Page{
	{
		Title:       "Welcome to LinguaLearn",
		Subtitle:    "Your journey to multilingual mastery begins here",
		Description: "Learn languages through immersive experiences, business scenarios, and cultural entertainment",
		Icon:        "🌎",
	},
	{
		Title:       "Interactive Language Courses",
		Subtitle:    "Real-world conversations await",
		Description: "Master languages through practical scenarios and engaging exercises designed for real-life communication",
		Icon:        "💬",
	},
	{
		Title:       "Business Skills Integration",
		Subtitle:    "Professional communication mastery",
		Description: "Learn business etiquette and communication styles across different cultures to excel globally",
		Icon:        "💼",
	},
	{
		Title:       "Entertainment Challenges",
		Subtitle:    "Culture through movies and music",
		Description: "Discover languages through culturally significant films, music, and entertainment from around the world",
		Icon:        "🎬",
	},
	{
		Title:       "Personalized Learning",
		Subtitle:    "Your unique path to fluency",
		Description: "Learning adapts to your style, pace, and interests for optimal progress",
		Icon:        "🧠",
	},
}

// OnboardingScreen walks the intro carousel and persists completion.
type OnboardingScreen struct {
	svc         *data.Service
	page        int
	homeFactory func() screen.Screen
	errMsg      string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen that transitions to homeFactory's screen
// once the carousel completes.
func New(svc *data.Service, homeFactory func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{svc: svc, homeFactory: homeFactory}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Page"},
	}
	if o.isLastPage() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Get Started"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Next"},
			layout.KeyHint{Key: "S", Description: "Skip"},
		)
	}
	return hints
}

func (o *OnboardingScreen) isLastPage() bool {
	return o.page == len(Pages)-1
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "right", "l", "enter":
		if o.isLastPage() {
			return o, o.complete()
		}
		o.page++
	case "left", "h":
		if o.page > 0 {
			o.page--
		}
	case "s":
		o.page = len(Pages) - 1
	}

	return o, nil
}

// complete persists the onboarding flag and swaps in the home screen.
func (o *OnboardingScreen) complete() tea.Cmd {
	if err := o.svc.SetOnboardingComplete(context.Background()); err != nil {
		o.errMsg = fmt.Sprintf("save onboarding state: %v", err)
		return nil
	}
	home := o.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	p := Pages[o.page]

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(p.Icon+"  "+p.Title) + "\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(p.Subtitle) + "\n\n")

	descWidth := width - 20
	if descWidth < 40 {
		descWidth = 40
	}
	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(descWidth).
		Align(lipgloss.Center).
		Render(p.Description)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(desc) + "\n\n")

	// Page dots
	var dots []string
	for i := range Pages {
		if i == o.page {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(dots, " ")) + "\n\n")

	bar := components.NewProgressBar("", float64(o.page+1)/float64(len(Pages)), false, 30)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()) + "\n")

	if o.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(o.errMsg) + "\n")
	}

	label := "Next"
	if o.isLastPage() {
		label = "Get Started"
	}
	btn := components.NewButton(label, true, nil)
	b.WriteString("\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(btn.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
