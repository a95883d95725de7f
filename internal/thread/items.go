package thread

import (
	"fmt"
	"strings"

	"github.com/nharmon/threadview/internal/core"
	"github.com/nharmon/threadview/internal/render"
	"github.com/nharmon/threadview/internal/types"
)

// threadItem is the view-model for one rendered thread entry. Vote and
// solve capabilities are explicit per item and resolved by identity,
// never by walking the rendered output.
type threadItem struct {
	ID      int64  // server id; zero for optimistic entries
	LocalID string // local id for optimistic entries

	Author  string
	Created string
	Content string

	IsQuestion   bool
	IsSolution   bool
	Helper       bool
	Optimistic   bool
	HelpfulVotes int

	Votable  bool
	Solvable bool
}

// buildThreadItems produces the display list. The question is the first
// chronological entry: it is appended to the answer list and the whole
// list reversed, so the question renders first and the answers
// newest-first after it.
func (m *Model) buildThreadItems(question *types.Question, answers []types.Answer) []threadItem {
	items := make([]threadItem, 0, len(answers)+1)
	for _, answer := range answers {
		items = append(items, m.answerItem(answer))
	}
	items = append(items, m.questionItem(question))
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func (m *Model) questionItem(question *types.Question) threadItem {
	return threadItem{
		ID:         question.ID,
		IsQuestion: true,
		Author:     question.Creator.Display(),
		Created:    core.TimeSince(question.Updated),
		Content:    question.Title,
	}
}

func (m *Model) answerItem(answer types.Answer) threadItem {
	item := threadItem{
		ID:           answer.ID,
		Author:       answer.Creator.Display(),
		Created:      core.TimeSince(answer.Created),
		Content:      answer.Content,
		IsSolution:   m.solutionID != 0 && answer.ID == m.solutionID,
		HelpfulVotes: answer.NumHelpfulVotes,
		Votable:      true,
	}
	if m.question != nil {
		item.Helper = answer.Creator.Username != m.question.Creator.Username
	}
	item.Solvable = m.canSolve() && !item.IsSolution
	return item
}

// canSolve reports whether the current user may mark solutions: they
// authored the question and no solution exists yet.
func (m *Model) canSolve() bool {
	if m.solutionID != 0 {
		return false
	}
	if m.question == nil || m.user == nil {
		return false
	}
	return m.question.Creator.Username == m.user.Username
}

// recomputeCapabilities refreshes per-item solve affordances after the
// question creator or solution state changes.
func (m *Model) recomputeCapabilities() {
	for i := range m.items {
		item := &m.items[i]
		if item.IsQuestion || item.Optimistic {
			continue
		}
		item.IsSolution = m.solutionID != 0 && item.ID == m.solutionID
		item.Solvable = m.canSolve() && !item.IsSolution
	}
}

func (m *Model) renderThreadBody() string {
	blocks := make([]string, 0, len(m.items)+1)
	if m.headerText != "" {
		blocks = append(blocks, headerStyle.Render(m.headerText))
	}
	for i := range m.items {
		blocks = append(blocks, m.renderItem(&m.items[i]))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderItem(item *threadItem) string {
	body, err := m.render.Render("comment", render.CommentData{
		Author:       item.Author,
		Created:      item.Created,
		Content:      item.Content,
		IsSolution:   item.IsSolution,
		HelpfulVotes: m.displayVoteCount(item),
	})
	if err != nil {
		body = item.Content
	}

	style := commentStyle
	switch {
	case item.Optimistic:
		style = optimisticStyle
	case item.IsQuestion:
		style = questionStyle
	case item.Helper:
		style = helperStyle
	}
	lines := []string{style.Render(body)}

	if controls := m.renderItemControls(item); controls != "" {
		lines = append(lines, controls)
	}
	return strings.Join(lines, "\n")
}

// renderItemControls renders the interactive vote/solve row for an
// answer, each control marked with a click zone keyed by the answer id.
func (m *Model) renderItemControls(item *threadItem) string {
	if item.IsQuestion || item.Optimistic {
		return ""
	}

	var controls []string
	if item.Votable {
		label := "▲ helpful"
		if count := m.displayVoteCount(item); count > 0 {
			label = fmt.Sprintf("▲ %d", count)
		}
		style := voteStyle
		if m.votedAnswers[item.ID] {
			style = voteActiveStyle
		}
		controls = append(controls, m.zoneManager.Mark(voteZone(item.ID), style.Render(label)))
	}

	switch {
	case item.IsSolution:
		controls = append(controls, solvedStyle.Render("Solution ✓"))
	case item.Solvable && m.confirmSolveID == item.ID:
		controls = append(controls,
			confirmStyle.Render("mark as the solution?"),
			m.zoneManager.Mark(confirmSolveZone(item.ID), confirmYesStyle.Render("[yes]")),
			m.zoneManager.Mark(cancelSolveZone(item.ID), confirmNoStyle.Render("[no]")),
		)
	case item.Solvable:
		controls = append(controls, m.zoneManager.Mark(solveZone(item.ID), solveStyle.Render("✓ solve")))
	}

	if len(controls) == 0 {
		return ""
	}
	return "  " + strings.Join(controls, "  ")
}

// displayVoteCount prefers the live count from vote responses over the
// count the answer loaded with.
func (m *Model) displayVoteCount(item *threadItem) int {
	if count, ok := m.voteCounts[item.ID]; ok {
		return count
	}
	return item.HelpfulVotes
}

func voteZone(answerID int64) string {
	return fmt.Sprintf("vote:%d", answerID)
}

func solveZone(answerID int64) string {
	return fmt.Sprintf("solve:%d", answerID)
}

func confirmSolveZone(answerID int64) string {
	return fmt.Sprintf("confirm-solve:%d", answerID)
}

func cancelSolveZone(answerID int64) string {
	return fmt.Sprintf("cancel-solve:%d", answerID)
}

// refreshViewport rebuilds the thread body in the viewport; toBottom
// scrolls the newest entry into view.
func (m *Model) refreshViewport(toBottom bool) {
	m.viewport.SetContent(m.renderThreadBody())
	if toBottom {
		m.viewport.GotoBottom()
	}
}
