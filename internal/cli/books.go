package cli

import (
	"fmt"
	"strings"

	"github.com/hcstnb2047/lvdash/models"
	"github.com/spf13/cobra"
)

func booksCmd(setup setupFunc) *cobra.Command {
	var tier string
	var status string
	var asJSON bool

	c := &cobra.Command{
		Use:   "books",
		Short: "Show the reading log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(setup, func(a *app) error {
				lib, err := a.books.Library(cmd.Context(), tier, status)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), lib)
				}
				return printLibrary(cmd.OutOrStdout(), lib)
			})
		},
	}

	c.Flags().StringVarP(&tier, "tier", "t", models.FilterAll, "all, A, B or C")
	c.Flags().StringVarP(&status, "status", "s", models.FilterAll, "all, unread, reading or read")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	c.AddCommand(&cobra.Command{
		Use:   "status <file> <unread|reading|read>",
		Short: "Change a book's reading status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(setup, func(a *app) error {
				book, err := a.books.UpdateStatus(cmd.Context(), args[0], models.BookStatus(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", book.Title, book.Status.Label())
				return nil
			})
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "note <file> <text>",
		Short: "Append a dated note to a book",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(setup, func(a *app) error {
				book, err := a.books.AddNote(cmd.Context(), args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d notes\n", book.Title, len(book.Notes))
				return nil
			})
		},
	})

	return c
}
