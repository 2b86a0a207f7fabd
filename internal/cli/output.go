package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/hcstnb2047/lvdash/internal/orchestrator"
	"github.com/hcstnb2047/lvdash/models"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printWorkflows(w io.Writer, view orchestrator.View) error {
	if view.Stale {
		fmt.Fprintf(w, "GitHub unreachable, showing status from %s\n\n", humanize.Time(view.UpdatedAt))
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\tWORKFLOW\tCATEGORY\tLAST RUN\tWHEN\tFILE")
	for _, s := range view.Workflows {
		mark := " "
		if s.IsFavorite {
			mark = "*"
		}
		status, when := "-", "-"
		if len(s.LatestRuns) > 0 {
			run := s.LatestRuns[0]
			status = string(run.RunStatus())
			when = humanize.Time(run.CreatedAt)
		}
		if s.IsPolling {
			status += " (watching)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", mark, s.DisplayName(), s.Category().Label(), status, when, s.Workflow.FileName())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d workflows, %d favorites, %d categories\n", view.Stats.Total, view.Stats.Favorites, view.Stats.Categories)
	return nil
}

func printRun(w io.Writer, name string, run models.WorkflowRun) {
	fmt.Fprintf(w, "%s: %s (started %s)\n", name, run.RunStatus(), humanize.Time(run.CreatedAt))
	if run.HTMLURL != "" {
		fmt.Fprintln(w, run.HTMLURL)
	}
}

func printKnowledge(w io.Writer, files []models.KnowledgeFile) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tTITLE\tPATH")
	for _, f := range files {
		date := f.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", date, f.Category.Label(), f.DisplayName, f.Path)
	}
	return tw.Flush()
}

func printSearch(w io.Writer, result models.KnowledgeSearch) {
	if result.RateLimited {
		fmt.Fprintln(w, "search quota nearly exhausted, results may be incomplete for a minute")
	}
	if len(result.Results) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	for _, r := range result.Results {
		fmt.Fprintf(w, "%s  (%s)\n", r.DisplayName, r.Path)
		for _, m := range r.TextMatches {
			fmt.Fprintf(w, "    %s\n", strings.Join(strings.Fields(m), " "))
		}
	}
}

func printLibrary(w io.Writer, lib models.Library) error {
	fmt.Fprintf(w, "read %d / reading %d / total %d (%.0f%%), updated %s\n\n",
		lib.ReadCount, lib.ReadingCount, lib.Total, lib.Progress*100, lib.LastUpdated)

	tw := newTable(w)
	fmt.Fprintln(tw, "TIER\tSTATUS\tTITLE\tNOTES\tFILE")
	for _, b := range lib.Books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", b.Tier, b.Status.Label(), b.Title, len(b.Notes), b.File)
	}
	return tw.Flush()
}

// parseInputs turns repeated key=value flags into dispatch inputs.
func parseInputs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("input %q must be key=value", p)
		}
		inputs[strings.TrimSpace(k)] = v
	}
	return inputs, nil
}
