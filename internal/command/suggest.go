package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nharmon/threadview/internal/render"
)

// NewSuggestCmd creates the suggest command: run a one-off suggestion
// query and print matching documents and questions.
func NewSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Search knowledge-base articles and existing questions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext()
			if err != nil {
				return err
			}
			defer ctx.Close()

			query := strings.Join(args, " ")
			result, err := ctx.Client.GetSuggestions(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Total() == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			for _, doc := range result.Documents {
				row, err := ctx.Renderer.Render("kb_item", render.KBItemData{
					Title:   doc.Title,
					Summary: doc.Summary,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, row)
			}
			for _, question := range result.Questions {
				row, err := ctx.Renderer.Render("question", render.QuestionItemData{
					Title:  question.Title,
					Author: question.Creator.Display(),
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, row)
			}
			return nil
		},
	}
}
