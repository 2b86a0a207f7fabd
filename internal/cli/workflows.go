package cli

import (
	"fmt"

	"github.com/hcstnb2047/lvdash/internal/service"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/spf13/cobra"
)

func workflowsCmd(setup setupFunc) *cobra.Command {
	var filter string
	var refresh bool
	var asJSON bool

	c := &cobra.Command{
		Use:   "workflows",
		Short: "List workflows with their latest run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(setup, func(a *app) error {
				snap, err := a.dashboard.Snapshot(cmd.Context(), refresh)
				if err != nil {
					return err
				}
				view := snap.View(filter)
				if asJSON {
					return printJSON(cmd.OutOrStdout(), view)
				}
				return printWorkflows(cmd.OutOrStdout(), view)
			})
		},
	}

	c.Flags().StringVarP(&filter, "filter", "f", models.FilterAll, "all, favorites or a category")
	c.Flags().BoolVar(&refresh, "refresh", true, "fetch from GitHub instead of the saved status")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return c
}

func dispatchCmd(setup setupFunc) *cobra.Command {
	var pairs []string
	var wait bool

	c := &cobra.Command{
		Use:   "dispatch <workflow-file>",
		Short: "Trigger a workflow_dispatch run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(pairs)
			if err != nil {
				return err
			}

			return withApp(setup, func(a *app) error {
				fileName := args[0]
				if meta := a.catalog.Lookup(fileName); meta != nil {
					defaults := service.DefaultInputs(meta)
					for k, v := range inputs {
						defaults[k] = v
					}
					inputs = defaults
				}

				results, err := a.dashboard.Dispatch(cmd.Context(), fileName, inputs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "dispatched %s\n", fileName)
				if !wait {
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), "waiting for the run to finish...")
				var res service.PollResult
				select {
				case res = <-results:
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				}

				switch {
				case res.Err != nil:
					return res.Err
				case res.Run == nil:
					return fmt.Errorf("no run appeared for %s", fileName)
				}

				printRun(cmd.OutOrStdout(), fileName, *res.Run)
				if res.TimedOut {
					return fmt.Errorf("stopped waiting, run %d is still %s", res.Run.ID, res.Run.Status)
				}
				if res.Run.RunStatus() != models.RunSuccess {
					return fmt.Errorf("run %d finished with %s", res.Run.ID, res.Run.RunStatus())
				}
				return nil
			})
		},
	}

	c.Flags().StringArrayVarP(&pairs, "input", "i", nil, "workflow input as key=value (repeatable)")
	c.Flags().BoolVar(&wait, "wait", false, "poll until the run completes")
	return c
}
