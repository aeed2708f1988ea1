// Package theme provides color definitions for gitsub terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used in report output.
type Theme struct {
	Accent    lipgloss.Color // submodule names with a local repository
	MutedFg   lipgloss.Color // paths, untracked entries
	TextFg    lipgloss.Color // plain text
	SuccessFg lipgloss.Color // clean
	WarnFg    lipgloss.Color // unknown
	ErrorFg   lipgloss.Color // dirty, conflicts
	Yellow    lipgloss.Color // renames and copies
}

// Theme names.
const (
	DraculaName    = "dracula"
	CleanLightName = "clean-light"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"), // Purple (primary accent)
		MutedFg:   lipgloss.Color("#6272A4"), // Comment (muted text)
		TextFg:    lipgloss.Color("#F8F8F2"), // Foreground (primary text)
		SuccessFg: lipgloss.Color("#50FA7B"), // Green (success)
		WarnFg:    lipgloss.Color("#FFB86C"), // Orange (warning)
		ErrorFg:   lipgloss.Color("#FF5555"), // Red (error)
		Yellow:    lipgloss.Color("#F1FA8C"), // Yellow (alternative highlight)
	}
}

// CleanLight returns a theme optimized for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#0598BC"), // Cyan
		MutedFg:   lipgloss.Color("#6E7781"), // Muted gray text
		TextFg:    lipgloss.Color("#24292F"), // Deep charcoal
		SuccessFg: lipgloss.Color("#1A7F37"), // Success green
		WarnFg:    lipgloss.Color("#9A6700"), // Warning brown/orange
		ErrorFg:   lipgloss.Color("#CF222E"), // Error red
		Yellow:    lipgloss.Color("#D4A72C"), // Yellow
	}
}

// ByName returns the theme matching name, or nil when unsupported.
func ByName(name string) *Theme {
	switch name {
	case DraculaName:
		return Dracula()
	case CleanLightName:
		return CleanLight()
	default:
		return nil
	}
}

// AvailableThemes lists the supported theme names.
func AvailableThemes() []string {
	return []string{DraculaName, CleanLightName}
}

// DefaultName is the theme used when none is configured.
const DefaultName = DraculaName
