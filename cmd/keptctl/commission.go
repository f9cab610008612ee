package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"kept_house/internal/domain/ledger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func commissionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commission <gross>",
		Short: "Show the commission owed on a cumulative gross",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid gross %q: %w", args[0], err)
			}
			if math.IsNaN(gross) || math.IsInf(gross, 0) {
				return fmt.Errorf("gross must be a finite number")
			}
			if gross < 0 {
				return fmt.Errorf("gross must not be negative")
			}
			printCommission(cmd.OutOrStdout(), gross)
			return nil
		},
	}
}

func printCommission(w io.Writer, gross float64) {
	fee := ledger.Commission(gross)
	fmt.Fprintf(w, "Gross:         %s\n", money(gross))
	fmt.Fprintf(w, "Commission:    %s\n", color.New(color.FgYellow).Sprint(money(fee)))
	fmt.Fprintf(w, "Seller keeps:  %s\n", color.New(color.FgGreen).Sprint(money(ledger.RoundCents(gross-fee))))
	fmt.Fprintf(w, "Marginal rate: %.0f%%\n", ledger.MarginalRate(gross)*100)
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}
