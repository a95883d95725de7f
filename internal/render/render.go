package render

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders named display templates against supplied data. It is
// pure: rendering has no side effects on view state.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New("threadview").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template ("thread_header", "comment",
// "thread", "kb_item", "question") with the given data.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// HeaderData is the thread_header template context.
type HeaderData struct {
	DatePosted  string
	HandsetType string
	Author      string
}

// CommentData is the comment template context. Optimistic renders supply
// only Content; reconciled renders fill the rest.
type CommentData struct {
	Author       string
	Created      string
	Content      string
	IsSolution   bool
	HelpfulVotes int
}

// ThreadData is the thread template context.
type ThreadData struct {
	Author       string
	IsMyQuestion bool
	Results      []CommentData
}

// KBItemData is the kb_item template context.
type KBItemData struct {
	Title   string
	Summary string
}

// QuestionItemData is the question template context for suggestion rows.
type QuestionItemData struct {
	Title  string
	Author string
}
