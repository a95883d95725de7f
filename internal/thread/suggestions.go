package thread

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nharmon/threadview/internal/render"
)

// suggestDebounce is the quiescence window: rapid keystrokes collapse
// into a single evaluation fired this long after the last one
// (trailing edge only, no leading fire).
const suggestDebounce = 500 * time.Millisecond

// minSuggestQueryLen is the shortest input that triggers a store query.
const minSuggestQueryLen = 3

// scheduleSuggest arms the debounce timer for the current input. Each
// keystroke bumps suggestSeq, so earlier timers expire as no-ops.
func (m *Model) scheduleSuggest(value string) tea.Cmd {
	if m.questionID != 0 {
		// Once a thread exists, suggestions are disabled.
		return nil
	}
	m.suggestSeq++
	seq := m.suggestSeq
	m.pendingSuggestText = value
	return tea.Tick(suggestDebounce, func(time.Time) tea.Msg {
		return suggestDebounceMsg{seq: seq}
	})
}

func (m *Model) handleSuggestDebounceMsg(msg suggestDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.suggestSeq {
		// Superseded by a later keystroke.
		return m, nil
	}
	if m.questionID != 0 {
		return m, nil
	}
	text := m.pendingSuggestText
	if len([]rune(text)) < minSuggestQueryLen {
		m.showPanel(panelIntroduction)
		return m, nil
	}
	return m, m.suggestQueryCmd(text)
}

// suggestQueryCmd issues the store query for the full current text.
// In-flight queries carry no cancellation token: when several overlap,
// whichever response arrives last overwrites the display.
func (m *Model) suggestQueryCmd(query string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		result, err := store.GetSuggestions(ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return suggestionsMsg{result: result}
	}
}

func (m *Model) handleSuggestionsMsg(msg suggestionsMsg) (tea.Model, tea.Cmd) {
	if msg.result == nil || msg.result.Total() == 0 {
		m.showPanel(panelIntroduction)
		return m, nil
	}

	// Documents first, questions second.
	rows := make([]string, 0, msg.result.Total())
	for _, doc := range msg.result.Documents {
		row, err := m.render.Render("kb_item", render.KBItemData{
			Title:   doc.Title,
			Summary: doc.Summary,
		})
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	for _, question := range msg.result.Questions {
		row, err := m.render.Render("question", render.QuestionItemData{
			Title:  question.Title,
			Author: question.Creator.Display(),
		})
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	m.suggestionRows = rows
	m.showPanel(panelSuggestions)
	return m, nil
}

func (m *Model) renderSuggestionList() string {
	if len(m.suggestionRows) == 0 {
		return suggestionDimStyle.Render("no matches")
	}
	return strings.Join(m.suggestionRows, "\n")
}
