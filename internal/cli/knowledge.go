package cli

import (
	"fmt"
	"strings"

	"github.com/hcstnb2047/lvdash/models"
	"github.com/spf13/cobra"
)

func knowledgeCmd(setup setupFunc) *cobra.Command {
	var category string
	var refresh bool
	var asJSON bool

	c := &cobra.Command{
		Use:   "knowledge",
		Short: "Browse knowledge notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category != models.FilterAll && !models.KnowledgeCategory(category).Valid() {
				return fmt.Errorf("unknown category %q", category)
			}
			return withApp(setup, func(a *app) error {
				files, err := a.knowledge.Tree(cmd.Context(), refresh)
				if err != nil {
					return err
				}
				files = models.FilterKnowledge(files, category)
				if asJSON {
					return printJSON(cmd.OutOrStdout(), files)
				}
				return printKnowledge(cmd.OutOrStdout(), files)
			})
		},
	}

	c.Flags().StringVarP(&category, "category", "c", models.FilterAll, "all, report, book, note, topic or webclip")
	c.Flags().BoolVar(&refresh, "refresh", false, "ignore the cached tree")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	c.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over knowledge notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(setup, func(a *app) error {
				result, err := a.knowledge.Search(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printSearch(cmd.OutOrStdout(), result)
				return nil
			})
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "show <path>",
		Short: "Print a knowledge note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(setup, func(a *app) error {
				content, err := a.knowledge.Content(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			})
		},
	})

	return c
}
