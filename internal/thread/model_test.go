package thread

import (
	"context"
	"testing"
	"time"

	"github.com/nharmon/threadview/internal/render"
	"github.com/nharmon/threadview/internal/types"
)

type fakeStore struct {
	question    *types.Question
	answers     []types.Answer
	suggestions *types.SuggestionResult

	postQuestionResp *types.Question
	postAnswerResp   *types.Answer
	voteResult       *types.VoteResult
	voteErr          error

	questionCalls   int
	answerCalls     int
	suggestQueries  []string
	postedQuestions []string
	postedAnswers   []string
	voteCalls       []int64
	solveCalls      []int64
	takeCalls       int
}

func (f *fakeStore) GetQuestion(ctx context.Context, id int64) (*types.Question, error) {
	f.questionCalls++
	return f.question, nil
}

func (f *fakeStore) GetAnswers(ctx context.Context, questionID int64) ([]types.Answer, error) {
	f.answerCalls++
	return f.answers, nil
}

func (f *fakeStore) PostQuestion(ctx context.Context, content string, meta []types.Meta) (*types.Question, error) {
	f.postedQuestions = append(f.postedQuestions, content)
	return f.postQuestionResp, nil
}

func (f *fakeStore) PostAnswer(ctx context.Context, questionID int64, content string) (*types.Answer, error) {
	f.postedAnswers = append(f.postedAnswers, content)
	return f.postAnswerResp, nil
}

func (f *fakeStore) SubmitVote(ctx context.Context, answerID int64) (*types.VoteResult, error) {
	f.voteCalls = append(f.voteCalls, answerID)
	if f.voteErr != nil {
		return nil, f.voteErr
	}
	return f.voteResult, nil
}

func (f *fakeStore) SolveQuestion(ctx context.Context, questionID, answerID int64) error {
	f.solveCalls = append(f.solveCalls, answerID)
	return nil
}

func (f *fakeStore) TakeQuestion(ctx context.Context, questionID int64) error {
	f.takeCalls++
	return nil
}

func (f *fakeStore) GetSuggestions(ctx context.Context, query string) (*types.SuggestionResult, error) {
	f.suggestQueries = append(f.suggestQueries, query)
	return f.suggestions, nil
}

type fakeUsers struct {
	user  types.User
	calls int
}

func (f *fakeUsers) CurrentUser(ctx context.Context) (*types.User, error) {
	f.calls++
	user := f.user
	return &user, nil
}

type fakeFlags struct {
	values map[string]string
}

func newFakeFlags() *fakeFlags {
	return &fakeFlags{values: map[string]string{}}
}

func (f *fakeFlags) GetFlag(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeFlags) SetFlag(key, value string) error {
	f.values[key] = value
	return nil
}

type harness struct {
	model *Model
	store *fakeStore
	users *fakeUsers
	flags *fakeFlags
}

func newHarness(t *testing.T, questionID int64) *harness {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	st := &fakeStore{}
	users := &fakeUsers{user: types.User{Username: "visitor"}}
	flags := newFakeFlags()
	model, err := NewModel(Options{
		Store:      st,
		Users:      users,
		Flags:      flags,
		Renderer:   renderer,
		QuestionID: questionID,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return &harness{model: model, store: st, users: users, flags: flags}
}

func testQuestion() *types.Question {
	return &types.Question{
		ID:      42,
		Title:   "Why does my phone restart?",
		Creator: types.User{Username: "asker", DisplayName: "Asker"},
		Updated: time.Now().Add(-time.Hour),
		Metadata: []types.Meta{
			{Name: "handset_type", Value: "android/pixel"},
		},
	}
}

func TestNewModelValidation(t *testing.T) {
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	tests := []struct {
		name string
		opts Options
	}{
		{"missing store", Options{Users: &fakeUsers{}, Renderer: renderer}},
		{"missing users", Options{Store: &fakeStore{}, Renderer: renderer}},
		{"missing renderer", Options{Store: &fakeStore{}, Users: &fakeUsers{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewModel(tt.opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSetQuestionIDWriteOnce(t *testing.T) {
	h := newHarness(t, 0)
	h.model.setQuestionID(42)
	h.model.setQuestionID(99)
	if h.model.questionID != 42 {
		t.Fatalf("questionID = %d, want 42", h.model.questionID)
	}
}

func TestInitComposeModeShowsIntroduction(t *testing.T) {
	h := newHarness(t, 0)
	h.model.Init()
	if h.model.activePanel != panelIntroduction {
		t.Fatalf("activePanel = %v, want introduction", h.model.activePanel)
	}
	if h.model.loading {
		t.Fatal("compose mode should not start loading")
	}
}

func TestInitQuestionModeStartsLoad(t *testing.T) {
	h := newHarness(t, 42)
	cmd := h.model.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	if h.model.activePanel != panelThread {
		t.Fatalf("activePanel = %v, want thread", h.model.activePanel)
	}
	if !h.model.loading {
		t.Fatal("question mode should start loading")
	}
}
