package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
	"github.com/gastos-dev/bankmail-importer/pkg/processor"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) RunSummary(
	_ context.Context,
	summary *processor.RunSummary,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Emails fetched: %v", summary.Fetched))
	sb.WriteString(fmt.Sprintf("\nImported: %v 🔥", len(summary.Imported)))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", summary.Duplicates))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v 🚯", summary.Skipped))
	sb.WriteString(fmt.Sprintf("\nUnmatched senders: %v", summary.Unmatched))
	sb.WriteString(fmt.Sprintf("\nErrors: %v 🚒", len(summary.Errors)))

	if len(summary.Errors) == 0 {
		sb.WriteString("\n\nNo errors! 🎉")
	}

	if len(summary.Imported) > 0 {
		sb.WriteString("\n\n")

		for _, tx := range summary.Imported {
			p.FancyPrintTx(tx, &sb)
		}
	}

	if len(summary.Errors) > 0 {
		sb.WriteString("\n\nErrors:\n")

		for _, err := range summary.Errors {
			sb.WriteString(fmt.Sprintf("%s\n", err))
		}
	}

	return sb.String()
}

func (p *Printer) FancyPrintTx(tx *database.Transaction, sb *strings.Builder) {
	sb.WriteString(fmt.Sprintf("Source: %v", tx.Source))

	if tx.Date != nil {
		sb.WriteString(fmt.Sprintf("\nDate: %s", tx.Date.Format("2006-01-02 15:04")))
	}

	sb.WriteString(fmt.Sprintf("\nAmount: %v", tx.Amount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("\nType: %v", tx.Type))
	sb.WriteString(fmt.Sprintf("\nDescription: %s", tx.Description))

	if tx.Merchant != nil {
		sb.WriteString(fmt.Sprintf("\nMerchant: %s", *tx.Merchant))
	}

	sb.WriteString("\n====================\n")
}
