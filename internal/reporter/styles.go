package reporter

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))
)
