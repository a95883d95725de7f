package thread

import (
	"testing"

	"github.com/nharmon/threadview/internal/types"
)

func TestMaybeTakeQuestion(t *testing.T) {
	tests := []struct {
		name     string
		prev     string
		value    string
		wantTake bool
	}{
		{"first character", "", "h", true},
		{"multibyte first character", "", "é", true},
		{"second character", "h", "he", false},
		{"paste of several characters", "", "hello", false},
		{"deletion back to one", "he", "h", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 42)
			h.model.question = testQuestion()
			cmd := h.model.maybeTakeQuestion(tt.prev, tt.value)
			if !tt.wantTake {
				if cmd != nil {
					t.Fatal("unexpected take command")
				}
				return
			}
			if cmd == nil {
				t.Fatal("expected take command")
			}
			cmd()
			if h.store.takeCalls != 1 {
				t.Fatalf("take calls = %d, want 1", h.store.takeCalls)
			}
		})
	}
}

func TestComposeModeNeverTakes(t *testing.T) {
	h := newHarness(t, 0)
	if cmd := h.model.maybeTakeQuestion("", "h"); cmd != nil {
		t.Fatal("compose mode must not claim")
	}
}

func TestNoTakeBeforeThreadLoads(t *testing.T) {
	h := newHarness(t, 42)
	if cmd := h.model.maybeTakeQuestion("", "h"); cmd != nil {
		t.Fatal("typing during the load window must not claim")
	}
	if h.store.takeCalls != 0 {
		t.Fatalf("take calls = %d, want 0", h.store.takeCalls)
	}
}

func TestCreatorNeverTakesOwnQuestion(t *testing.T) {
	h := newHarness(t, 42)
	h.model.question = testQuestion()
	h.users.user = types.User{Username: "asker"}

	cmd := h.model.maybeTakeQuestion("", "h")
	if cmd == nil {
		t.Fatal("expected command resolving the user")
	}
	if msg := cmd(); msg != (takeDoneMsg{}) {
		t.Fatalf("got %v, want takeDoneMsg", msg)
	}
	if h.store.takeCalls != 0 {
		t.Fatalf("take calls = %d, want 0 for the question's own creator", h.store.takeCalls)
	}
}

func TestRetypingAfterClearTakesAgain(t *testing.T) {
	h := newHarness(t, 42)
	h.model.question = testQuestion()
	for i := 0; i < 2; i++ {
		cmd := h.model.maybeTakeQuestion("", "h")
		if cmd == nil {
			t.Fatalf("transition %d: expected take command", i)
		}
		cmd()
	}
	if h.store.takeCalls != 2 {
		t.Fatalf("take calls = %d, want one per transition", h.store.takeCalls)
	}
}
