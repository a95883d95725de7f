package thread

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nharmon/threadview/internal/core"
	"github.com/nharmon/threadview/internal/types"
)

// handleSubmit starts the submission pipeline. The optimistic entry is
// appended before the store round-trip; the composed text stays in the
// input until the server confirms.
func (m *Model) handleSubmit() tea.Cmd {
	if m.composeClosed || m.loading {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	localID := uuid.NewString()
	author := "you"
	helper := false
	if m.user != nil {
		author = m.user.Display()
		helper = m.question != nil && m.user.Username != m.question.Creator.Username
	}
	m.items = append(m.items, threadItem{
		LocalID:    localID,
		Author:     author,
		Created:    core.TimeSince(time.Now()),
		Content:    text,
		Helper:     helper,
		Optimistic: true,
	})

	m.loading = true
	m.showPanel(panelThread)
	m.refreshViewport(true)
	return tea.Batch(m.spin.Tick, m.submitCmd(localID, text))
}

// submitCmd posts the composed text: an answer when a thread exists,
// otherwise a new question carrying the client metadata.
func (m *Model) submitCmd(localID, text string) tea.Cmd {
	store := m.store
	users := m.users
	ctx := m.ctx
	questionID := m.questionID
	return func() tea.Msg {
		user, err := users.CurrentUser(ctx)
		if err != nil {
			return errMsg{err: err}
		}

		if questionID != 0 {
			answer, err := store.PostAnswer(ctx, questionID, text)
			if err != nil {
				return errMsg{err: err}
			}
			return submittedMsg{localID: localID, user: *user, comment: *answer}
		}

		question, err := store.PostQuestion(ctx, text, core.UserMeta())
		if err != nil {
			return errMsg{err: err}
		}
		// A new question doubles as the thread's first comment.
		return submittedMsg{
			localID:  localID,
			user:     *user,
			question: question,
			comment: types.Answer{
				ID:      question.ID,
				Creator: question.Creator,
				Created: question.Updated,
				Content: question.Title,
			},
		}
	}
}

func (m *Model) handleSubmittedMsg(msg submittedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.user = &msg.user

	var cmds []tea.Cmd
	if msg.question != nil {
		// First submission of the session: the compose view becomes a
		// question view for the rest of the session.
		m.setQuestionID(msg.question.ID)
		m.question = msg.question
		m.headerText = m.renderHeader(msg.question)
		if cmd := m.maybeShowFirstQuestionHelp(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.reconcileItem(msg)
	m.recomputeCapabilities()
	m.refreshViewport(true)

	// The draft clears only after the server confirms.
	m.input.Reset()
	m.lastInputValue = ""

	if m.onComment != nil {
		onComment := m.onComment
		questionID := m.questionID
		comment := msg.comment
		cmds = append(cmds, func() tea.Msg {
			onComment(questionID, comment)
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

// reconcileItem replaces the optimistic entry with the confirmed comment,
// matched by local id.
func (m *Model) reconcileItem(msg submittedMsg) {
	confirmed := m.answerItem(msg.comment)
	if msg.question != nil {
		confirmed = m.questionItem(msg.question)
	}
	for i := range m.items {
		if m.items[i].Optimistic && m.items[i].LocalID == msg.localID {
			m.items[i] = confirmed
			return
		}
	}
	m.items = append(m.items, confirmed)
}

// maybeShowFirstQuestionHelp shows the onboarding dialog once per
// install, tracked by a durable flag.
func (m *Model) maybeShowFirstQuestionHelp() tea.Cmd {
	if m.flags == nil {
		return nil
	}
	seen, err := m.flags.GetFlag(flagSeenFirstQuestionHelp)
	if err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}
	if seen != "" {
		return nil
	}
	m.dialog = dialogFirstQuestionHelp
	if err := m.flags.SetFlag(flagSeenFirstQuestionHelp, "1"); err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}
	return nil
}
