package command

import "github.com/spf13/cobra"

// NewAskCmd creates the ask command: compose a new question.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Compose and post a new question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext()
			if err != nil {
				return err
			}
			defer ctx.Close()
			return ctx.runThreadView(0)
		},
	}
}
