package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/file-flow/internal/dashboard"
)

const reportTimeLayout = "2006-01-02 15:04"

func newReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print dashboard views",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: table (default) or json")

	cmd.AddCommand(&cobra.Command{
		Use:   "recalls",
		Short: "Documents currently out with a recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDashboard(func(sys dashboard.System) error {
				items, err := sys.DueRecalls(cmd.Context())
				if err != nil {
					return err
				}
				if output == "json" {
					return printJSON(cmd.OutOrStdout(), items)
				}
				renderRecalls(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "overdue",
		Short: "Documents overdue or nearing their deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDashboard(func(sys dashboard.System) error {
				items, err := sys.Overdue(cmd.Context())
				if err != nil {
					return err
				}
				if output == "json" {
					return printJSON(cmd.OutOrStdout(), items)
				}
				renderOverdue(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Daily counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDashboard(func(sys dashboard.System) error {
				stats, err := sys.Statistics(cmd.Context())
				if err != nil {
					return err
				}
				if output == "json" {
					return printJSON(cmd.OutOrStdout(), stats)
				}
				renderStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	})

	return cmd
}

func withDashboard(fn func(dashboard.System) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(dashboard.New(s.infra.Database.Connection(), s.infra.Logger, s.infra.Clock))
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

func renderRecalls(w io.Writer, items []dashboard.DueRecall) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "SERIAL", "NAME", "RECIPIENT", "STAGE", "SENT AT"})
	for _, item := range items {
		tw.AppendRow(table.Row{
			item.ID,
			item.SerialNumber,
			item.Name,
			item.RecipientName,
			item.Stage,
			item.FlowTime.UTC().Format(reportTimeLayout),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "TOTAL", len(items)})
	tw.Render()
}

func renderOverdue(w io.Writer, items []dashboard.DeadlineItem) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "SERIAL", "NAME", "DEADLINE", "URGENCY", "DAYS"})
	for _, item := range items {
		tw.AppendRow(table.Row{
			item.ID,
			item.SerialNumber,
			item.Name,
			item.Deadline,
			item.Urgency,
			item.DaysRemaining,
		})
	}
	tw.Render()
}

func renderStats(w io.Writer, stats *dashboard.Statistics) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"METRIC", "COUNT"})
	tw.AppendRows([]table.Row{
		{"Pending", stats.TotalPending},
		{"Created today", stats.CreatedToday},
		{"Completed today", stats.CompletedToday},
	})
	tw.SetCaption("as of %s UTC", time.Now().UTC().Format(reportTimeLayout))
	tw.Render()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
