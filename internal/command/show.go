package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nharmon/threadview/internal/core"
	"github.com/nharmon/threadview/internal/render"
)

// NewShowCmd creates the show command: print a question thread without
// entering the TUI.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <question-id>",
		Short: "Print a question thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid question id '%s'", args[0])
			}

			ctx, err := GetContext()
			if err != nil {
				return err
			}
			defer ctx.Close()

			question, err := ctx.Client.GetQuestion(cmd.Context(), id)
			if err != nil {
				return err
			}
			answers, err := ctx.Client.GetAnswers(cmd.Context(), id)
			if err != nil {
				return err
			}
			user, err := ctx.Users.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			header, err := ctx.Renderer.Render("thread_header", render.HeaderData{
				DatePosted:  core.TimeSince(question.Updated),
				HandsetType: question.HandsetType(),
				Author:      question.Creator.Display(),
			})
			if err != nil {
				return err
			}

			results := make([]render.CommentData, 0, len(answers)+1)
			results = append(results, render.CommentData{
				Author:  question.Creator.Display(),
				Created: core.TimeSince(question.Updated),
				Content: question.Title,
			})
			for _, answer := range answers {
				results = append(results, render.CommentData{
					Author:       answer.Creator.Display(),
					Created:      core.TimeSince(answer.Created),
					Content:      answer.Content,
					IsSolution:   question.Solution != nil && answer.ID == *question.Solution,
					HelpfulVotes: answer.NumHelpfulVotes,
				})
			}
			body, err := ctx.Renderer.Render("thread", render.ThreadData{
				Author:       question.Creator.Display(),
				IsMyQuestion: question.Creator.Username == user.Username,
				Results:      results,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header)
			fmt.Fprintln(out)
			fmt.Fprintln(out, body)
			return nil
		},
	}
}
