package catalog

import (
	"fmt"
	"strings"
)

// FormatDuration renders minutes as "15 min", "2h", or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rem)
}

// FormatClock renders seconds as "m:ss" for countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// LanguageFlag returns the flag glyph for a language name, or a globe when
// the language is unknown.
func LanguageFlag(language string) string {
	switch strings.ToLower(language) {
	case "japanese":
		return "🇯🇵"
	case "french":
		return "🇫🇷"
	case "spanish":
		return "🇪🇸"
	case "german":
		return "🇩🇪"
	case "italian":
		return "🇮🇹"
	case "chinese":
		return "🇨🇳"
	case "korean":
		return "🇰🇷"
	default:
		return "🌍"
	}
}
