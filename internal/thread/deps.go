package thread

import (
	"context"

	"github.com/nharmon/threadview/internal/types"
)

// QuestionStore is the remote question/answer store the controller talks
// to. Implemented by store.Client.
type QuestionStore interface {
	GetQuestion(ctx context.Context, id int64) (*types.Question, error)
	GetAnswers(ctx context.Context, questionID int64) ([]types.Answer, error)
	PostQuestion(ctx context.Context, content string, meta []types.Meta) (*types.Question, error)
	PostAnswer(ctx context.Context, questionID int64, content string) (*types.Answer, error)
	SubmitVote(ctx context.Context, answerID int64) (*types.VoteResult, error)
	SolveQuestion(ctx context.Context, questionID, answerID int64) error
	TakeQuestion(ctx context.Context, questionID int64) error
	GetSuggestions(ctx context.Context, query string) (*types.SuggestionResult, error)
}

// UserResolver resolves the current user. Implemented by store.UserService,
// which caches upstream of the controller.
type UserResolver interface {
	CurrentUser(ctx context.Context) (*types.User, error)
}

// FlagStore is the durable client-local key/value store used for the
// one-time onboarding flag.
type FlagStore interface {
	GetFlag(key string) (string, error)
	SetFlag(key, value string) error
}

// Renderer renders named display templates. Implemented by render.Renderer.
type Renderer interface {
	Render(name string, data any) (string, error)
}
