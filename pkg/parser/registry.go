package parser

import (
	"strings"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// Registry owns one extractor instance per supported bank. Extractors are
// built once here so their pattern sets compile a single time.
type Registry struct {
	extractors map[database.Bank]Extractor
}

func NewRegistry() *Registry {
	return &Registry{
		extractors: map[database.Bank]Extractor{
			database.HeyBanco:    NewHeyBanco(),
			database.Nubank:      NewNubank(),
			database.Rappi:       NewRappi(),
			database.Banorte:     NewBanorte(),
			database.MercadoPago: NewMercadoPago(),
		},
	}
}

// ForSender routes a raw From header to the owning bank's extractor.
// Matching is substring containment over the lower-cased header, checked in
// bank declaration order; real From headers carry display names and
// envelope-format artifacts, so exact address parsing would miss.
// Returns nil for unsupported senders; the caller logs and skips.
func (r *Registry) ForSender(fromHeader string) Extractor {
	fromLower := strings.ToLower(fromHeader)

	for _, bank := range database.Banks {
		for _, sender := range database.BankSenders[bank] {
			if !strings.Contains(fromLower, strings.ToLower(sender)) {
				continue
			}

			return r.extractors[bank]
		}
	}

	return nil
}
