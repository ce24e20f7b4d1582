package parser

import (
	"io"
	"mime"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// DecodeSubject reassembles a possibly MIME-word-encoded subject header.
// Fragments that cannot be decoded are kept verbatim instead of failing.
func DecodeSubject(raw string) string {
	if raw == "" {
		return ""
	}

	dec := mime.WordDecoder{CharsetReader: charsetReader}

	decoded, err := dec.DecodeHeader(raw)
	if err != nil {
		return raw
	}

	return decoded
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	default:
		return nil, errors.Newf("unhandled charset %s", charset)
	}
}

// ParseAmount converts a captured currency magnitude to a decimal,
// stripping thousands separators first. A miss degrades to zero since
// field extraction is independently fault-tolerant.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}

	return amount
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldText lower-cases and strips diacritics, so "Tarjeta de Crédito"
// compares equal to "tarjeta de credito".
func FoldText(input string) string {
	folded, _, err := transform.String(foldChain, input)
	if err != nil {
		folded = input
	}

	return strings.ToLower(folded)
}

func bodyPreferHTML(email *database.Email) string {
	if email.BodyHTML != "" {
		return email.BodyHTML
	}

	return email.BodyPlain
}

func bodyPreferPlain(email *database.Email) string {
	if email.BodyPlain != "" {
		return email.BodyPlain
	}

	return email.BodyHTML
}
