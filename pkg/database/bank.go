package database

// Bank identifies a supported financial institution. The set is closed:
// routing, retrieval queries and extractor registration all key off it.
type Bank string

const (
	HeyBanco    = Bank("hey_banco")
	Nubank      = Bank("nubank")
	Rappi       = Bank("rappi")
	PayPal      = Bank("paypal")
	Banorte     = Bank("banorte")
	MercadoPago = Bank("mercado_pago")
	Amex        = Bank("amex")
)

// Banks lists every supported institution in declaration order. Sender
// matching walks this slice, so the order is part of the dispatch contract.
var Banks = []Bank{
	HeyBanco,
	Nubank,
	Rappi,
	PayPal,
	Banorte,
	MercadoPago,
	Amex,
}

// BankSenders maps each bank to the notification addresses it is known to
// send from. Matching is substring-based against the raw From header, since
// real headers carry display names and envelope artifacts.
var BankSenders = map[Bank][]string{
	HeyBanco: {
		"noreply@hey.inc",
		"alertas@hey.inc",
		"noreply@heybanco.com",
		"alertas@heybanco.com",
	},
	Nubank: {"nu@nu.com.mx"},
	Rappi: {
		"rappi.nreply@rappi.com",
		"no-reply@mailing.rappicard.com.mx",
	},
	PayPal:      {"service@paypal.com.mx"},
	Banorte:     {"notificaciones@banorte.com"},
	MercadoPago: {"info@mercadopago.com"},
}
