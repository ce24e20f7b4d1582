package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const (
	heyBancoSpeiReceptionSubject = "Recepción de transferencia nacional SPEI"
	heyBancoCardPurchaseSubject  = "Compra realizada con tu tarjeta"

	heyBancoTransferDescription   = "Transferencia"
	heyBancoCardDescription       = "Compra con tarjeta"
	heyBancoDebitCardDescription  = "Compra con tarjeta de débito"
	heyBancoCreditCardDescription = "Compra con tarjeta de crédito"
)

// Card purchase notifications share their subject line with a family of
// rejection and service notices that carry no transaction at all. Phrases
// are compared diacritic-insensitively against the folded body.
var heyBancoRejectionPhrases = []string{
	"fondos insuficientes",
	"saldo insuficiente",
	"cvv invalido",
	"codigo de seguridad incorrecto",
	"tarjeta congelada",
	"recuperacion de contrasena",
	"transferencia no pudo ser procesada",
	"transferencia rechazada",
	"renovacion de tu tarjeta",
	"tarjeta esta por vencer",
}

// HeyBanco extracts SPEI receptions and card purchases. The SPEI template
// is HTML with label/value spans; the purchase template only yields a
// record when the envelope date parses, since purchases without a
// trustworthy timestamp cannot be ordered downstream.
type HeyBanco struct {
	speiAmountRe      *regexp.Regexp
	speiDescriptionRe *regexp.Regexp
	speiDateRe        *regexp.Regexp
	purchaseAmountRe  *regexp.Regexp
	merchantRe        *regexp.Regexp
}

func NewHeyBanco() *HeyBanco {
	return &HeyBanco{
		speiAmountRe: regexp.MustCompile(
			`Cantidad\s*<br\s*/?>\s*<span\b[^>]*>([0-9]+(?:\.[0-9]+)?)</span>`),
		speiDescriptionRe: regexp.MustCompile(
			`Concepto\s+pago\s*:\s*<br\s*/?>\s*<span\b[^>]*>([^<]+)</span>`),
		speiDateRe: regexp.MustCompile(
			`Fecha\s+de\s+aplicaci(?:ón|on|&oacute;n)\s*:\s*<br\s*/?>\s*<span\b[^>]*>([^<]+)</span>`),
		purchaseAmountRe: regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{2})?)`),
		merchantRe: regexp.MustCompile(
			`Comercio\s*:\s*(?:<br\s*/?>\s*)?(?:<span\b[^>]*>)?([^<\r\n]+)`),
	}
}

func (h *HeyBanco) Type() database.Bank {
	return database.HeyBanco
}

func (h *HeyBanco) Parse(
	ctx context.Context,
	email *database.Email,
) (*database.Transaction, error) {
	subject := DecodeSubject(email.Subject)
	body := bodyPreferHTML(email)

	switch {
	case strings.Contains(subject, heyBancoSpeiReceptionSubject):
		return h.parseSpeiReception(ctx, body, email.ID), nil
	case strings.Contains(subject, heyBancoCardPurchaseSubject):
		return h.parseCardPurchase(ctx, body, email), nil
	}

	return nil, nil
}

func (h *HeyBanco) parseSpeiReception(
	ctx context.Context,
	body string,
	emailID string,
) *database.Transaction {
	tx := newTransaction(database.HeyBanco, emailID, database.TransactionTypeIncome)
	tx.Description = heyBancoTransferDescription

	if m := h.speiAmountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	if m := h.speiDescriptionRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Description = strings.TrimSpace(m[1])
	}

	if m := h.speiDateRe.FindStringSubmatch(body); len(m) == 2 {
		rawDate := strings.TrimSpace(m[1])

		parsed, err := ParseLooseSpanishDate(rawDate)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("date", rawDate).
				Msg("failed to parse application date")
		} else {
			tx.Date = &parsed
		}
	}

	return tx
}

func (h *HeyBanco) parseCardPurchase(
	ctx context.Context,
	body string,
	email *database.Email,
) *database.Transaction {
	folded := FoldText(body)

	if rejection, isRejection := lo.Find(heyBancoRejectionPhrases, func(phrase string) bool {
		return strings.Contains(folded, phrase)
	}); isRejection {
		zerolog.Ctx(ctx).Debug().
			Str("phrase", rejection).
			Msg("skipping non-transactional card notice")

		return nil
	}

	date := ParseEnvelopeDate(ctx, email.Date)
	if date == nil {
		return nil
	}

	tx := newTransaction(database.HeyBanco, email.ID, database.TransactionTypeExpense)
	tx.Date = date
	tx.Description = h.cardDescription(folded)

	if m := h.purchaseAmountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	if m := h.merchantRe.FindStringSubmatch(body); len(m) == 2 {
		merchant := strings.TrimSpace(m[1])
		if merchant != "" {
			tx.Merchant = &merchant
		}
	}

	return tx
}

func (h *HeyBanco) cardDescription(foldedBody string) string {
	switch {
	case strings.Contains(foldedBody, "tarjeta de debito"):
		return heyBancoDebitCardDescription
	case strings.Contains(foldedBody, "tarjeta de credito"):
		return heyBancoCreditCardDescription
	}

	return heyBancoCardDescription
}
