package processor

import (
	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// RunSummary aggregates the outcome of a single import run.
type RunSummary struct {
	Fetched    int
	Unmatched  int
	Skipped    int
	Duplicates int
	Imported   []*database.Transaction
	Errors     []error
}
