package types

import "time"

// User identifies a participant. Username is the stable identity;
// DisplayName is preferred for display when set.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

// Display returns the name to show for the user.
func (u User) Display() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Meta is an ordered name/value pair attached to a question.
type Meta struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Question is a support question with its thread metadata.
// Answers carries the answer id collection when the payload represents a
// full question resource (present on post_question responses).
type Question struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content,omitempty"`
	Creator  User      `json:"creator"`
	Updated  time.Time `json:"updated"`
	Metadata []Meta    `json:"metadata"`
	Solution *int64    `json:"solution,omitempty"`
	TakenBy  *User     `json:"taken_by,omitempty"`
	Answers  []int64   `json:"answers,omitempty"`
}

// HandsetType returns the device descriptor from question metadata, if any.
func (q *Question) HandsetType() string {
	for _, item := range q.Metadata {
		if item.Name == "handset_type" {
			return item.Value
		}
	}
	return ""
}

// Answer is a reply posted to a question. It is never mutated after
// creation; the helpful-vote count and solved marker are display-only
// reflections of server state.
type Answer struct {
	ID              int64     `json:"id"`
	Creator         User      `json:"creator"`
	Created         time.Time `json:"created"`
	Content         string    `json:"content"`
	NumHelpfulVotes int       `json:"num_helpful_votes,omitempty"`
}

// Document is a knowledge-base article returned by a suggestion query.
type Document struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary,omitempty"`
}

// SuggestionResult holds the two ordered result lists of a suggestion
// query. Documents are displayed before questions.
type SuggestionResult struct {
	Documents []Document `json:"documents"`
	Questions []Question `json:"questions"`
}

// Total returns the combined result count.
func (s *SuggestionResult) Total() int {
	return len(s.Documents) + len(s.Questions)
}

// VoteResult is the server response to a helpful-vote submission.
type VoteResult struct {
	NumHelpfulVotes int `json:"num_helpful_votes,omitempty"`
}
