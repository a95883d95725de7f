package command

import (
	"database/sql"
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/nharmon/threadview/internal/db"
	"github.com/nharmon/threadview/internal/render"
	"github.com/nharmon/threadview/internal/store"
	"github.com/nharmon/threadview/internal/thread"
	"github.com/nharmon/threadview/internal/types"
)

// Context bundles the wired collaborators a command needs.
type Context struct {
	Client   *store.Client
	Users    *store.UserService
	DB       *sql.DB
	Renderer *render.Renderer
}

// GetContext wires the store client, user service, local database, and
// template renderer from the environment configuration.
func GetContext() (*Context, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	client, err := store.NewClient(cfg.BaseURL, cfg.Token)
	if err != nil {
		return nil, err
	}
	users := store.NewUserService(client)

	path, err := db.DefaultPath()
	if err != nil {
		return nil, err
	}
	conn, err := db.OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if cached, err := db.GetCachedUser(conn); err == nil && cached != nil {
		users.Prime(*cached)
	}

	renderer, err := render.New()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Context{
		Client:   client,
		Users:    users,
		DB:       conn,
		Renderer: renderer,
	}, nil
}

// Close releases the context's resources.
func (c *Context) Close() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

// flagStore adapts the local database to the thread view's flag store.
type flagStore struct {
	conn *sql.DB
}

func (s *flagStore) GetFlag(key string) (string, error) {
	return db.GetFlag(s.conn, key)
}

func (s *flagStore) SetFlag(key, value string) error {
	return db.SetFlag(s.conn, key, value)
}

// runThreadView launches the TUI for a question (zero id composes a new
// question). Submissions raise an OS notification and refresh the cached
// identity.
func (c *Context) runThreadView(questionID int64) error {
	return thread.Run(thread.Options{
		Store:      c.Client,
		Users:      c.Users,
		Flags:      &flagStore{conn: c.DB},
		Renderer:   c.Renderer,
		QuestionID: questionID,
		OnComment: func(questionID int64, comment types.Answer) {
			_ = db.SetCachedUser(c.DB, comment.Creator)
			title := fmt.Sprintf("Posted to question %d", questionID)
			_ = beeep.Notify(title, comment.Content, "")
		},
	})
}
