package export

import (
	"bytes"
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tealeg/xlsx"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

type Repo interface {
	ListTransactions(ctx context.Context, from time.Time, to time.Time) ([]*database.Transaction, error)
}

// Exporter renders stored transactions into a spreadsheet for manual
// review and bookkeeping.
type Exporter struct {
	repo Repo
}

func NewExporter(
	repo Repo,
) *Exporter {
	return &Exporter{
		repo: repo,
	}
}

func (e *Exporter) Report(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]byte, error) {
	transactions, err := e.repo.ListTransactions(ctx, from, to)
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return nil, errors.Wrap(err, "unable to add sheet")
	}

	header := sheet.AddRow()
	for _, title := range []string{
		"ID", "Email ID", "Source", "Date", "Amount",
		"Type", "Description", "Merchant", "Reference", "Status",
	} {
		header.AddCell().SetString(title)
	}

	for _, tx := range transactions {
		row := sheet.AddRow()

		row.AddCell().SetString(tx.ID)
		row.AddCell().SetString(tx.EmailID)
		row.AddCell().SetString(string(tx.Source))

		dateCell := row.AddCell()
		if tx.Date != nil {
			dateCell.SetString(tx.Date.Format("2006-01-02 15:04:05"))
		}

		row.AddCell().SetString(tx.Amount.StringFixed(2))
		row.AddCell().SetString(string(tx.Type))
		row.AddCell().SetString(tx.Description)

		merchantCell := row.AddCell()
		if tx.Merchant != nil {
			merchantCell.SetString(*tx.Merchant)
		}

		referenceCell := row.AddCell()
		if tx.Reference != nil {
			referenceCell.SetString(*tx.Reference)
		}

		row.AddCell().SetString(tx.Status)
	}

	var buf bytes.Buffer
	if err = file.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "unable to write spreadsheet")
	}

	return buf.Bytes(), nil
}
