package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nharmon/threadview/internal/db"
)

// NewWhoamiCmd creates the whoami command: resolve and print the
// authenticated identity.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext()
			if err != nil {
				return err
			}
			defer ctx.Close()

			user, err := ctx.Users.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if err := db.SetCachedUser(ctx.DB, *user); err != nil {
				return err
			}

			if user.DisplayName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.DisplayName, user.Username)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.Username)
			return nil
		},
	}
}
