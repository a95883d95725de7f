package thread

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTickMsg(msg)
	case suggestDebounceMsg:
		return m.handleSuggestDebounceMsg(msg)
	case suggestionsMsg:
		return m.handleSuggestionsMsg(msg)
	case threadLoadedMsg:
		return m.handleThreadLoadedMsg(msg)
	case alreadyTakenMsg:
		return m.handleAlreadyTakenMsg(msg)
	case submittedMsg:
		return m.handleSubmittedMsg(msg)
	case voteResultMsg:
		return m.handleVoteResultMsg(msg)
	case solveResultMsg:
		return m.handleSolveResultMsg(msg)
	case takeDoneMsg:
		return m, nil
	case errMsg:
		return m.handleErrMsg(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return m, nil
}

func (m *Model) handleSpinnerTickMsg(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	if m.dialog != dialogNone {
		return m.handleDialogKeyMsg(msg)
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m, m.handleSubmit()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.composeClosed {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	change := m.afterInputChange()
	return m, tea.Batch(cmd, change)
}

// handleDialogKeyMsg processes the single action each dialog offers.
func (m *Model) handleDialogKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
		switch m.dialog {
		case dialogAlreadyTaken:
			// The only action returns the visitor to where they came
			// from; the session's interaction with this question is over.
			return m, tea.Quit
		case dialogFirstQuestionHelp:
			m.dialog = dialogNone
			return m, nil
		}
	}
	return m, nil
}

// afterInputChange runs whenever the compose field may have changed,
// driving the take-question side effect and the suggestion debounce.
func (m *Model) afterInputChange() tea.Cmd {
	value := m.input.Value()
	if value == m.lastInputValue {
		return nil
	}
	prev := m.lastInputValue
	m.lastInputValue = value

	var cmds []tea.Cmd
	if cmd := m.maybeTakeQuestion(prev, value); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.scheduleSuggest(value); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleErrMsg(msg errMsg) (tea.Model, tea.Cmd) {
	// Unexpected store failures are surfaced but not recovered: no
	// retries, and a stalled pipeline leaves the indicator as-is.
	m.status = msg.err.Error()
	return m, nil
}
