package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
	"github.com/gastos-dev/bankmail-importer/pkg/parser"
)

func TestForSender(t *testing.T) {
	registry := parser.NewRegistry()

	cases := []struct {
		from string
		bank database.Bank
	}{
		{"Hey Banco <noreply@hey.inc>", database.HeyBanco},
		{"Alertas Hey <alertas@heybanco.com>", database.HeyBanco},
		{"Nu <nu@nu.com.mx>", database.Nubank},
		{"RappiCard <no-reply@mailing.rappicard.com.mx>", database.Rappi},
		{"rappi.nreply@rappi.com", database.Rappi},
		{"Banorte <NOTIFICACIONES@BANORTE.COM>", database.Banorte},
		{"Mercado Pago <info@mercadopago.com>", database.MercadoPago},
	}

	for _, tc := range cases {
		extractor := registry.ForSender(tc.from)
		assert.NotNil(t, extractor, tc.from)
		assert.Equal(t, tc.bank, extractor.Type(), tc.from)
	}
}

func TestForSenderUnknown(t *testing.T) {
	registry := parser.NewRegistry()

	assert.Nil(t, registry.ForSender("someone@else.com"))
	assert.Nil(t, registry.ForSender(""))
}

func TestForSenderBankWithoutExtractor(t *testing.T) {
	registry := parser.NewRegistry()

	// routed senders with no registered extractor behave like unknown ones
	assert.Nil(t, registry.ForSender("PayPal <service@paypal.com.mx>"))
}
