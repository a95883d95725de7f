package thread

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nharmon/threadview/internal/types"
)

const flagSeenFirstQuestionHelp = "seen_first_question_help"

// Options configure the thread view.
type Options struct {
	Store    QuestionStore
	Users    UserResolver
	Flags    FlagStore
	Renderer Renderer

	// QuestionID selects an existing thread; zero means
	// compose-new-question mode.
	QuestionID int64

	// OnComment is invoked after every successful submission with the
	// active question id and the finalized comment. Registered by the
	// hosting context; may be nil.
	OnComment func(questionID int64, comment types.Answer)
}

// Run starts the thread view UI.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	// Set window title (ANSI OSC sequence)
	title := "threadview"
	if opts.QuestionID != 0 {
		title = fmt.Sprintf("threadview · question %d", opts.QuestionID)
	}
	fmt.Printf("\033]0;%s\007", title)

	program := tea.NewProgram(model, tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

// Model implements the thread view UI. All session view state lives here;
// handlers run serialized on the program loop, so no locking is needed.
type Model struct {
	ctx       context.Context
	store     QuestionStore
	users     UserResolver
	flags     FlagStore
	render    Renderer
	onComment func(int64, types.Answer)

	activePanel panel
	dialog      dialogKind

	// questionID is write-once: assigned at startup or on the first
	// successful post_question, never reassigned for the session.
	questionID int64
	question   *types.Question
	solutionID int64
	user       *types.User
	takenBy    string

	items          []threadItem
	headerText     string
	suggestionRows []string

	input    textarea.Model
	viewport viewport.Model
	spin     spinner.Model
	loading  bool

	// composeClosed disables the compose form once the thread is solved.
	composeClosed bool

	lastInputValue     string
	suggestSeq         int
	pendingSuggestText string

	votedAnswers   map[int64]bool
	voteCounts     map[int64]int
	confirmSolveID int64

	zoneManager *zone.Manager
	status      string
	width       int
	height      int
}

// NewModel creates a thread view model.
func NewModel(opts Options) (*Model, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("thread: store is required")
	}
	if opts.Users == nil {
		return nil, fmt.Errorf("thread: user resolver is required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("thread: renderer is required")
	}

	input := newInputModel()
	vp := viewport.New(0, 0)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	model := &Model{
		ctx:          context.Background(),
		store:        opts.Store,
		users:        opts.Users,
		flags:        opts.Flags,
		render:       opts.Renderer,
		onComment:    opts.OnComment,
		activePanel:  panelIntroduction,
		questionID:   opts.QuestionID,
		input:        input,
		viewport:     vp,
		spin:         spin,
		votedAnswers: make(map[int64]bool),
		voteCounts:   make(map[int64]int),
		zoneManager:  zone.New(),
	}
	return model, nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.questionID != 0 {
		// Question view: force the thread panel and start the load
		// pipeline with the loading indicator up.
		m.loading = true
		m.showPanel(panelThread)
		cmds = append(cmds, m.spin.Tick, m.loadThreadCmd(m.questionID))
	}
	// Compose-new-question mode: no load, indicator stays dismissed.
	return tea.Batch(cmds...)
}

// setQuestionID assigns the session's question identifier. Once set it
// never changes; later calls are ignored.
func (m *Model) setQuestionID(id int64) {
	if m.questionID != 0 {
		return
	}
	m.questionID = id
}

// closeCompose disables the compose form; the thread is closed to new
// answers once a solution exists.
func (m *Model) closeCompose() {
	m.composeClosed = true
	m.input.Blur()
}

func newInputModel() textarea.Model {
	input := textarea.New()
	input.Placeholder = "Ask a question or write an answer…"
	input.Prompt = "┃ "
	input.SetHeight(1)
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.Focus()
	return input
}
