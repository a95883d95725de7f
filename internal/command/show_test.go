package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShowCommandPrintsThread(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/2/question/42":
			json.NewEncoder(w).Encode(map[string]any{
				"id":    42,
				"title": "Why does my phone restart?",
				"creator": map[string]string{
					"username":     "asker",
					"display_name": "Asker",
				},
			})
		case "/api/2/question/42/answers":
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{"id": 1, "content": "try a reboot", "creator": map[string]string{"username": "helper"}},
				},
			})
		case "/api/2/user/me":
			json.NewEncoder(w).Encode(map[string]string{"username": "visitor"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("THREADVIEW_API_URL", server.URL)
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"show", "42"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Asker's thread", "Why does my phone restart?", "try a reboot"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestShowCommandRejectsBadID(t *testing.T) {
	t.Setenv("THREADVIEW_API_URL", "https://support.example.com")
	root := NewRootCmd("test")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"show", "not-a-number"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
