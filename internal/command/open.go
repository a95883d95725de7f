package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewOpenCmd creates the open command: open an existing question thread,
// or compose a new question when no id is given.
func NewOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [question-id]",
		Short: "Open a question thread",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if len(args) == 1 {
				parsed, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || parsed <= 0 {
					return fmt.Errorf("invalid question id '%s'", args[0])
				}
				id = parsed
			}

			ctx, err := GetContext()
			if err != nil {
				return err
			}
			defer ctx.Close()
			return ctx.runThreadView(id)
		},
	}
}
