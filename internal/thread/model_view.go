package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) View() string {
	if m.dialog != dialogNone {
		return m.renderDialog()
	}

	var lines []string
	switch m.activePanel {
	case panelIntroduction:
		lines = append(lines, m.renderIntroduction())
	case panelSuggestions:
		lines = append(lines, m.renderSuggestionPanel())
	case panelThread:
		lines = append(lines, m.viewport.View())
	}

	if !m.composeClosed {
		lines = append(lines, "", m.input.View())
	} else {
		lines = append(lines, "", suggestionDimStyle.Render("This question has been solved."))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(statusColor).Render(m.statusLine()))

	output := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.zoneManager.Scan(output)
}

func (m *Model) renderIntroduction() string {
	intro := strings.Join([]string{
		"Describe your problem above.",
		"",
		"As you type we look for articles and questions that may already",
		"answer it. Press enter to post your question.",
	}, "\n")
	return introStyle.Render(intro)
}

func (m *Model) renderSuggestionPanel() string {
	title := suggestionTitleStyle.Render("Are any of these helpful?")
	return title + "\n\n" + m.renderSuggestionList()
}

func (m *Model) renderDialog() string {
	var body string
	switch m.dialog {
	case dialogAlreadyTaken:
		body = strings.Join([]string{
			fmt.Sprintf("%s is already helping with this question.", m.takenBy),
			"",
			"Press enter to go back.",
		}, "\n")
	case dialogFirstQuestionHelp:
		body = strings.Join([]string{
			"Your question has been posted!",
			"",
			"You'll be notified when someone answers. Helpful answers can",
			"be voted up, and you can mark one as the solution.",
			"",
			"Press enter to continue.",
		}, "\n")
	}

	box := dialogStyle.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m *Model) statusLine() string {
	left := m.status
	if m.loading {
		indicator := m.spin.View() + " working…"
		if left != "" {
			left = fmt.Sprintf("%s · %s", indicator, left)
		} else {
			left = indicator
		}
	}
	right := ""
	if m.questionID != 0 {
		right = fmt.Sprintf("question %d", m.questionID)
	}
	return alignStatusLine(left, right, m.width)
}

func alignStatusLine(left, right string, width int) string {
	if width <= 0 || right == "" {
		return left
	}
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		return left
	}
	spaces := width - leftWidth - rightWidth
	return left + strings.Repeat(" ", spaces) + right
}
