package main

import (
	"bytes"
	"testing"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestCommissionCmd(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		want  []string
	}{
		{"first tier", "1000", []string{"Commission:    $500.00", "Seller keeps:  $500.00", "Marginal rate: 50%"}},
		{"second tier", "10000", []string{"Commission:    $4750.00", "Marginal rate: 40%"}},
		{"top tier", "30000", []string{"Commission:    $11750.00", "Marginal rate: 30%"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := commissionCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{tt.gross})

			require.NoError(t, cmd.Execute())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestCommissionCmd_RejectsBadInput(t *testing.T) {
	for _, arg := range []string{"abc", "-5", "NaN", "Inf", "-Inf"} {
		cmd := commissionCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{arg})
		assert.Error(t, cmd.Execute(), arg)
	}
}

func TestPrintSaleStatus(t *testing.T) {
	var out bytes.Buffer
	printSaleStatus(&out, "job-1", ledger.SaleStatus{Visible: true, Phase: entities.SalePhaseOnline})
	assert.Contains(t, out.String(), "Job job-1: visible")
	assert.Contains(t, out.String(), "phase:   online")

	out.Reset()
	printSaleStatus(&out, "job-2", ledger.SaleStatus{Message: "Sale opens Jan 2, 2026"})
	assert.Contains(t, out.String(), "Job job-2: hidden")
	assert.Contains(t, out.String(), "Sale opens Jan 2, 2026")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, usecase.FinanceSummary{
		JobID:        "job-1",
		Gross:        1000,
		Fees:         500,
		HaulingCost:  120,
		Net:          -20,
		MarginalRate: 0.5,
		Daily: []entities.LedgerEntry{
			{Label: "Day 1", Amount: 1000, At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	})

	s := out.String()
	assert.Contains(t, s, "commission:   $500.00 (next dollar at 50%)")
	assert.Contains(t, s, "deposit:      $0.00 (unpaid)")
	assert.Contains(t, s, "net:          -$20.00")
	assert.Contains(t, s, "2026-03-01  Day 1")
}
