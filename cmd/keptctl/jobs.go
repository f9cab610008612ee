package main

import (
	"fmt"
	"io"

	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func saleStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sale-status <jobID>",
		Short: "Show whether a job's sale is currently visible to buyers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			status, err := a.jobs.SaleStatus(ctx, args[0])
			if err != nil {
				return err
			}
			printSaleStatus(cmd.OutOrStdout(), args[0], status)
			return nil
		},
	}
}

func printSaleStatus(w io.Writer, jobID string, s ledger.SaleStatus) {
	visible := color.New(color.FgRed).Sprint("hidden")
	if s.Visible {
		visible = color.New(color.FgGreen).Sprint("visible")
	}
	fmt.Fprintf(w, "Job %s: %s\n", jobID, visible)
	if s.Phase != "" {
		fmt.Fprintf(w, "  phase:   %s\n", s.Phase)
	}
	if s.Message != "" {
		fmt.Fprintf(w, "  message: %s\n", s.Message)
	}
}

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Inspect or repair a job's ledger",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <jobID>",
		Short: "Print the finance summary of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			summary, err := a.finance.Summary(ctx, args[0])
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "recompute <jobID>",
		Short: "Rederive fees and net from the stored aggregates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.finance.Recompute(ctx, args[0]); err != nil {
				return err
			}
			summary, err := a.finance.Summary(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgGreen).Sprint("Recomputed"))
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	})
	return cmd
}

func printSummary(w io.Writer, s usecase.FinanceSummary) {
	deposit := color.New(color.FgYellow).Sprint("unpaid")
	if s.DepositPaid {
		deposit = color.New(color.FgGreen).Sprint("paid")
	}
	net := color.New(color.FgGreen).Sprint(money(s.Net))
	if s.Net < 0 {
		net = color.New(color.FgRed).Sprint(money(s.Net))
	}

	fmt.Fprintf(w, "Job %s\n", color.New(color.FgBlue).Sprint(s.JobID))
	fmt.Fprintf(w, "  gross:        %s\n", money(s.Gross))
	fmt.Fprintf(w, "  commission:   %s (next dollar at %.0f%%)\n", money(s.Fees), s.MarginalRate*100)
	fmt.Fprintf(w, "  hauling:      %s\n", money(s.HaulingCost))
	fmt.Fprintf(w, "  service fee:  %s\n", money(s.ServiceFee))
	fmt.Fprintf(w, "  deposit:      %s (%s)\n", money(s.DepositAmount), deposit)
	fmt.Fprintf(w, "  net:          %s\n", net)
	if len(s.Daily) == 0 {
		return
	}
	fmt.Fprintln(w, "  entries:")
	for _, e := range s.Daily {
		fmt.Fprintf(w, "    %s  %-32s %10s\n", e.At.Format("2006-01-02"), e.Label, money(e.Amount))
	}
}
