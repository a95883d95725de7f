package thread

import (
	"testing"

	"github.com/nharmon/threadview/internal/store"
	"github.com/nharmon/threadview/internal/types"
)

func TestVoteIdempotentPerAnswer(t *testing.T) {
	h := newHarness(t, 42)
	h.store.voteResult = &types.VoteResult{NumHelpfulVotes: 3}

	_, cmd := h.model.startVote(9)
	if cmd == nil {
		t.Fatal("first vote should issue a command")
	}
	msg := cmd().(voteResultMsg)
	h.model.handleVoteResultMsg(msg)

	if _, cmd := h.model.startVote(9); cmd != nil {
		t.Fatal("second vote on the same answer must be ignored")
	}
	if len(h.store.voteCalls) != 1 {
		t.Fatalf("store saw %d vote calls, want 1", len(h.store.voteCalls))
	}

	// A different answer is still votable.
	if _, cmd := h.model.startVote(10); cmd == nil {
		t.Fatal("other answers remain votable")
	}
}

func TestVoteSuccessRecordsCount(t *testing.T) {
	h := newHarness(t, 42)
	h.store.voteResult = &types.VoteResult{NumHelpfulVotes: 5}

	msg := h.model.voteCmd(9)().(voteResultMsg)
	h.model.handleVoteResultMsg(msg)

	if !h.model.votedAnswers[9] {
		t.Fatal("answer should be marked voted")
	}
	if h.model.voteCounts[9] != 5 {
		t.Fatalf("voteCounts[9] = %d, want 5", h.model.voteCounts[9])
	}
}

func TestVoteConflictConvergesToVoted(t *testing.T) {
	h := newHarness(t, 42)
	h.store.voteErr = store.ErrVoteConflict

	msg := h.model.voteCmd(9)()
	result, ok := msg.(voteResultMsg)
	if !ok {
		t.Fatalf("got %T, want voteResultMsg", msg)
	}
	if !result.conflict {
		t.Fatal("conflict should be flagged")
	}
	h.model.handleVoteResultMsg(result)

	if !h.model.votedAnswers[9] {
		t.Fatal("conflict must still mark the answer voted")
	}
	if _, recorded := h.model.voteCounts[9]; recorded {
		t.Fatal("conflict carries no count to display")
	}
}

func TestSolveClosesComposeAndMarksSolution(t *testing.T) {
	h := newHarness(t, 42)
	h.store.question = testQuestion()
	h.store.answers = []types.Answer{
		{ID: 7, Creator: types.User{Username: "helper"}, Content: "the fix"},
	}
	msg := h.model.loadThreadCmd(42)()
	h.model.handleThreadLoadedMsg(msg.(threadLoadedMsg))

	solveMsg := h.model.solveCmd(7)().(solveResultMsg)
	h.model.handleSolveResultMsg(solveMsg)

	if h.model.solutionID != 7 {
		t.Fatalf("solutionID = %d, want 7", h.model.solutionID)
	}
	if !h.model.composeClosed {
		t.Fatal("compose should close once solved")
	}
	if len(h.store.solveCalls) != 1 || h.store.solveCalls[0] != 7 {
		t.Fatalf("solve calls = %v, want [7]", h.store.solveCalls)
	}
	for _, item := range h.model.items {
		if item.ID == 7 && !item.IsSolution {
			t.Fatal("solved answer should carry the marker")
		}
		if item.Solvable {
			t.Fatal("no answer remains solvable after a solution exists")
		}
	}
}

func TestCanSolveOnlyForQuestionAuthor(t *testing.T) {
	h := newHarness(t, 42)
	h.model.question = testQuestion()

	h.model.user = &types.User{Username: "visitor"}
	if h.model.canSolve() {
		t.Fatal("non-author must not solve")
	}

	h.model.user = &types.User{Username: "asker"}
	if !h.model.canSolve() {
		t.Fatal("author should be able to solve")
	}

	h.model.solutionID = 7
	if h.model.canSolve() {
		t.Fatal("solved questions cannot be solved again")
	}
}
