package command

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nharmon/threadview/internal/core"
)

const AppName = "threadview"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Threadview - terminal client for the question store",
		Long:          "Threadview is a terminal client for asking questions, browsing answer threads, and voting on answers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		NewOpenCmd(),
		NewAskCmd(),
		NewShowCmd(),
		NewSuggestCmd(),
		NewWhoamiCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(core.Version).Execute()
}
