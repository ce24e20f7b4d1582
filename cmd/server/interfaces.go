package main

import (
	"context"

	"github.com/gastos-dev/bankmail-importer/pkg/processor"
)

type ImportProcessor interface {
	Run(
		ctx context.Context,
	) (*processor.RunSummary, error)
}
