package thread

import "github.com/nharmon/threadview/internal/types"

type errMsg struct {
	err error
}

// suggestDebounceMsg fires suggestDebounce after a keystroke; only the
// message whose seq still matches the latest keystroke evaluates.
type suggestDebounceMsg struct {
	seq int
}

// suggestionsMsg carries a suggestion query response. Responses carry no
// sequencing; when queries overlap, the last arrival overwrites the
// display.
type suggestionsMsg struct {
	result *types.SuggestionResult
}

// threadLoadedMsg carries the fully loaded thread after the conflict
// check passed.
type threadLoadedMsg struct {
	question *types.Question
	answers  []types.Answer
	user     types.User
}

// alreadyTakenMsg short-circuits the load pipeline: the question is
// claimed by another participant. Terminal for the session.
type alreadyTakenMsg struct {
	takenBy string
}

type submittedMsg struct {
	localID string
	user    types.User
	// question is set on the new-question branch; its answers collection
	// marks the response as a question resource.
	question *types.Question
	comment  types.Answer
}

type voteResultMsg struct {
	answerID int64
	count    int
	conflict bool
}

type solveResultMsg struct {
	answerID int64
}

// takeDoneMsg is the ignored result of the best-effort take-question call.
type takeDoneMsg struct{}
