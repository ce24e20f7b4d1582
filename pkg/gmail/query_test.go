package gmail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gastos-dev/bankmail-importer/pkg/gmail"
)

func TestBuildQuery(t *testing.T) {
	query := gmail.BuildQuery()

	assert.Equal(t,
		"(from:noreply@hey.inc OR from:alertas@hey.inc OR from:noreply@heybanco.com OR from:alertas@heybanco.com)"+
			" OR (from:nu@nu.com.mx)"+
			" OR (from:rappi.nreply@rappi.com OR from:no-reply@mailing.rappicard.com.mx)"+
			" OR (from:service@paypal.com.mx)"+
			" OR (from:notificaciones@banorte.com)"+
			" OR (from:info@mercadopago.com)",
		query)
}
