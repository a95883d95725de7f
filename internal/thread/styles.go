package thread

import "github.com/charmbracelet/lipgloss"

var statusColor = lipgloss.Color("243")

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helperStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	optimisticStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	voteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	voteActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true)

	solveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("157"))
	solvedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("157")).Bold(true)
	confirmStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))
	confirmYesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("157")).Bold(true)
	confirmNoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	suggestionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("183")).
				Bold(true)

	suggestionDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	introStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("216")).
			Padding(1, 2)
)
