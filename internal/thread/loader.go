package thread

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nharmon/threadview/internal/core"
	"github.com/nharmon/threadview/internal/render"
	"github.com/nharmon/threadview/internal/types"
)

// loadThreadCmd runs the thread-load pipeline: question and answers are
// fetched concurrently, then the current user is resolved, then the
// taken-by conflict is checked. Ordering within the pipeline is strict;
// it does not serialize against other asynchronous chains.
func (m *Model) loadThreadCmd(id int64) tea.Cmd {
	store := m.store
	users := m.users
	ctx := m.ctx
	return func() tea.Msg {
		var question *types.Question
		var answers []types.Answer
		var questionErr, answersErr error

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			question, questionErr = store.GetQuestion(ctx, id)
		}()
		go func() {
			defer wg.Done()
			answers, answersErr = store.GetAnswers(ctx, id)
		}()
		wg.Wait()

		if questionErr != nil {
			return errMsg{err: questionErr}
		}
		if answersErr != nil {
			return errMsg{err: answersErr}
		}

		user, err := users.CurrentUser(ctx)
		if err != nil {
			return errMsg{err: err}
		}

		if question.TakenBy != nil && question.TakenBy.Username != user.Username {
			// Short-circuit: no rendering, no further store calls for
			// this question.
			return alreadyTakenMsg{takenBy: question.TakenBy.Display()}
		}

		return threadLoadedMsg{question: question, answers: answers, user: *user}
	}
}

func (m *Model) handleThreadLoadedMsg(msg threadLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.user = &msg.user
	m.question = msg.question
	if msg.question.Solution != nil {
		m.solutionID = *msg.question.Solution
		m.closeCompose()
	}

	m.headerText = m.renderHeader(msg.question)
	m.items = m.buildThreadItems(msg.question, msg.answers)
	m.refreshViewport(true)
	return m, nil
}

func (m *Model) handleAlreadyTakenMsg(msg alreadyTakenMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.takenBy = msg.takenBy
	m.dialog = dialogAlreadyTaken
	return m, nil
}

// renderHeader renders the thread header: relative date posted, detected
// handset metadata, and the question's author.
func (m *Model) renderHeader(question *types.Question) string {
	header, err := m.render.Render("thread_header", render.HeaderData{
		DatePosted:  core.TimeSince(question.Updated),
		HandsetType: question.HandsetType(),
		Author:      question.Creator.Display(),
	})
	if err != nil {
		return question.Creator.Display()
	}
	return header
}
