package thread

import tea "github.com/charmbracelet/bubbletea"

// maybeTakeQuestion claims the question when a second participant starts
// typing an answer: exactly the empty-to-first-character transition, once
// per transition, and only once the thread has loaded. The current user
// is resolved inside the command and compared against the question's
// creator; the asker never claims their own question. Fire-and-forget.
func (m *Model) maybeTakeQuestion(prev, value string) tea.Cmd {
	if m.questionID == 0 || m.question == nil {
		return nil
	}
	if prev != "" || len([]rune(value)) != 1 {
		return nil
	}
	st := m.store
	users := m.users
	ctx := m.ctx
	questionID := m.questionID
	creator := m.question.Creator.Username
	return func() tea.Msg {
		user, err := users.CurrentUser(ctx)
		if err != nil || user.Username == creator {
			return takeDoneMsg{}
		}
		// Failures are ignored; the claim is advisory.
		_ = st.TakeQuestion(ctx, questionID)
		return takeDoneMsg{}
	}
}
