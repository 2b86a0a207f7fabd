package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func patCmd(setup setupFunc) *cobra.Command {
	c := &cobra.Command{
		Use:   "pat",
		Short: "Manage the stored GitHub personal access token",
	}

	c.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Validate and store a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(setup, func(a *app) error {
				if err := a.auth.SetPAT(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "token saved")
				return nil
			})
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(setup, func(a *app) error {
				if err := a.auth.ClearPAT(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "token removed")
				return nil
			})
		},
	})

	return c
}
