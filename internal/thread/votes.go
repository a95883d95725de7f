package thread

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nharmon/threadview/internal/store"
)

// handleMouseMsg dispatches clicks by zone identity. Each control is
// marked with the answer id it belongs to, so hit-testing never inspects
// the rendered layout.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.dialog != dialogNone {
		return m, nil
	}

	for i := range m.items {
		item := &m.items[i]
		if item.IsQuestion || item.Optimistic {
			continue
		}
		switch {
		case m.zoneManager.Get(voteZone(item.ID)).InBounds(msg):
			return m.startVote(item.ID)
		case m.zoneManager.Get(solveZone(item.ID)).InBounds(msg):
			m.confirmSolveID = item.ID
			m.refreshViewport(false)
			return m, nil
		case m.zoneManager.Get(confirmSolveZone(item.ID)).InBounds(msg):
			m.confirmSolveID = 0
			return m, m.solveCmd(item.ID)
		case m.zoneManager.Get(cancelSolveZone(item.ID)).InBounds(msg):
			m.confirmSolveID = 0
			m.refreshViewport(false)
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) startVote(answerID int64) (tea.Model, tea.Cmd) {
	if m.votedAnswers[answerID] {
		// Repeat clicks never produce a second request.
		return m, nil
	}
	return m, m.voteCmd(answerID)
}

// voteCmd submits a helpful vote. A duplicate-vote conflict from the
// store is an expected outcome, not an error.
func (m *Model) voteCmd(answerID int64) tea.Cmd {
	st := m.store
	ctx := m.ctx
	return func() tea.Msg {
		result, err := st.SubmitVote(ctx, answerID)
		if errors.Is(err, store.ErrVoteConflict) {
			return voteResultMsg{answerID: answerID, conflict: true}
		}
		if err != nil {
			return errMsg{err: err}
		}
		return voteResultMsg{answerID: answerID, count: result.NumHelpfulVotes}
	}
}

// handleVoteResultMsg converges success and conflict to the same state:
// the answer is voted. Only a success carries a count worth displaying.
func (m *Model) handleVoteResultMsg(msg voteResultMsg) (tea.Model, tea.Cmd) {
	m.votedAnswers[msg.answerID] = true
	if !msg.conflict && msg.count > 0 {
		m.voteCounts[msg.answerID] = msg.count
	}
	m.refreshViewport(false)
	return m, nil
}

func (m *Model) solveCmd(answerID int64) tea.Cmd {
	st := m.store
	ctx := m.ctx
	questionID := m.questionID
	return func() tea.Msg {
		if err := st.SolveQuestion(ctx, questionID, answerID); err != nil {
			return errMsg{err: err}
		}
		return solveResultMsg{answerID: answerID}
	}
}

func (m *Model) handleSolveResultMsg(msg solveResultMsg) (tea.Model, tea.Cmd) {
	m.solutionID = msg.answerID
	m.closeCompose()
	m.recomputeCapabilities()
	m.refreshViewport(false)
	return m, nil
}
