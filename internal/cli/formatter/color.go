package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#b8bb26")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ExperienceColor returns the style used for an experience level.
func ExperienceColor(exp domain.Experience) lipgloss.Style {
	switch exp {
	case domain.ExperienceBeginner:
		return StyleGreen
	case domain.ExperienceIntermediate:
		return StyleYellow
	case domain.ExperienceAdvanced:
		return StylePurple
	default:
		return StyleDim
	}
}

// ExperienceBadge returns a colored indicator such as "● beginner".
func ExperienceBadge(exp domain.Experience) string {
	if exp == domain.ExperienceUnset {
		return StyleDim.Render("○ not set")
	}
	return ExperienceColor(exp).Render("● " + string(exp))
}

// GardenBadge returns the garden type with an icon.
func GardenBadge(g domain.GardenType) string {
	switch g {
	case domain.GardenIndoor:
		return StyleBlue.Render("🏠 indoor")
	case domain.GardenOutdoor:
		return StyleGreen.Render("🌳 outdoor")
	case domain.GardenUrban:
		return StyleYellow.Render("🏙 urban")
	case domain.GardenFarm:
		return StylePurple.Render("🚜 farm")
	default:
		return StyleDim.Render("○ not set")
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
