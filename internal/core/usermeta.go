package core

import (
	"runtime"

	"github.com/nharmon/threadview/internal/types"
)

// Version is overwritten at build time using -ldflags.
var Version = "dev"

// UserMeta returns the client metadata pairs attached to new questions.
// The store uses these to categorise the question (platform, client
// version, device descriptor).
func UserMeta() []types.Meta {
	return []types.Meta{
		{Name: "platform", Value: runtime.GOOS},
		{Name: "client", Value: "threadview/" + Version},
		{Name: "handset_type", Value: runtime.GOOS + "/" + runtime.GOARCH},
	}
}
