package thread

// panel identifies the visible view. Exactly one panel is visible at any
// instant; there is no hidden fourth state.
type panel int

const (
	panelIntroduction panel = iota
	panelSuggestions
	panelThread
)

// dialogKind identifies a modal dialog overlaying the active panel.
type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogAlreadyTaken
	dialogFirstQuestionHelp
)

// showPanel switches the visible panel. It is the only panel mutator;
// re-selecting the current panel is a no-op in effect.
func (m *Model) showPanel(target panel) {
	m.activePanel = target
}
