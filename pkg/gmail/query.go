package gmail

import (
	"strings"

	"github.com/samber/lo"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// BuildQuery produces a single Gmail search expression covering every
// configured bank sender, e.g.
// (from:noreply@hey.inc OR from:alertas@hey.inc) OR (from:nu@nu.com.mx).
func BuildQuery() string {
	queries := lo.FilterMap(database.Banks, func(bank database.Bank, _ int) (string, bool) {
		senders := database.BankSenders[bank]
		if len(senders) == 0 {
			return "", false
		}

		parts := lo.Map(senders, func(sender string, _ int) string {
			if strings.Contains(sender, " ") {
				return "from:\"" + sender + "\""
			}

			return "from:" + sender
		})

		return "(" + strings.Join(parts, " OR ") + ")", true
	})

	return strings.Join(queries, " OR ")
}
