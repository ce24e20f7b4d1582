package parser

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/common"
)

// Fixed Spanish to English month tables. Both are closed 12-entry maps;
// an input carrying no known month token fails with common.ErrUnknownMonth
// so callers can tell a bad table lookup from a plain layout mismatch.
var spanishMonthAbbr = map[string]string{
	"ene": "Jan",
	"feb": "Feb",
	"mar": "Mar",
	"abr": "Apr",
	"may": "May",
	"jun": "Jun",
	"jul": "Jul",
	"ago": "Aug",
	"sep": "Sep",
	"oct": "Oct",
	"nov": "Nov",
	"dic": "Dec",
}

var spanishMonthNames = map[string]string{
	"enero":      "January",
	"febrero":    "February",
	"marzo":      "March",
	"abril":      "April",
	"mayo":       "May",
	"junio":      "June",
	"julio":      "July",
	"agosto":     "August",
	"septiembre": "September",
	"octubre":    "October",
	"noviembre":  "November",
	"diciembre":  "December",
}

var monthAbbrOrder = []string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

var monthNameOrder = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// ParseSpanishDatetime substitutes the Spanish month abbreviation in value
// and parses the result with the given layout. Banks embed these dates in
// mixed case ("15/ENE/2026", "15 ene 2026"), so matching is case-folded.
func ParseSpanishDatetime(value string, layout string) (time.Time, error) {
	substituted, err := substituteMonthAbbr(value)
	if err != nil {
		return time.Time{}, err
	}

	parsed, err := time.Parse(layout, substituted)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse datetime %s", value)
	}

	return parsed, nil
}

func substituteMonthAbbr(value string) (string, error) {
	lower := strings.ToLower(value)

	for _, es := range monthAbbrOrder {
		if idx := strings.Index(lower, es); idx >= 0 {
			return value[:idx] + spanishMonthAbbr[es] + value[idx+len(es):], nil
		}
	}

	return "", errors.Mark(
		errors.Newf("no known month abbreviation in %s", value),
		common.ErrUnknownMonth,
	)
}

var looseLayouts = []string{
	"2 January 2006 15:04:05",
	"2 January 2006 3:04:05 PM",
	"2 January 2006 3:04 PM",
	"2 January 2006 15:04",
	"2 January 2006",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 3:04:05 PM",
	"2 Jan 2006 3:04 PM",
	"2 Jan 2006",
}

// ParseLooseSpanishDate normalizes a free-form, day-first Spanish date
// ("15 Enero 2026, 08:30:00 p. m.") to English and tries a lenient ordered
// set of layouts. Used by templates with less rigid date formatting.
func ParseLooseSpanishDate(value string) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer(",", " ", "  ", " ").Replace(normalized)

	found := false
	for _, es := range monthNameOrder {
		if strings.Contains(normalized, es) {
			normalized = strings.ReplaceAll(normalized, es, spanishMonthNames[es])
			found = true
			break
		}
	}

	if !found {
		for _, es := range monthAbbrOrder {
			if idx := strings.Index(normalized, es); idx >= 0 {
				normalized = normalized[:idx] + spanishMonthAbbr[es] + normalized[idx+len(es):]
				found = true
				break
			}
		}
	}

	if !found {
		return time.Time{}, errors.Mark(
			errors.Newf("no known month name in %s", value),
			common.ErrUnknownMonth,
		)
	}

	normalized = strings.NewReplacer(
		"a. m.", "AM",
		"a.m.", "AM",
		"p. m.", "PM",
		"p.m.", "PM",
	).Replace(normalized)
	normalized = strings.Join(strings.Fields(normalized), " ")

	for _, layout := range looseLayouts {
		if parsed, err := time.Parse(layout, normalized); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, errors.Newf("failed to parse loose date %s", value)
}

var envelopeLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05",
}

// ParseEnvelopeDate parses the message's own Date header through the known
// envelope formats, discarding any timezone to yield a naive local time.
// Returns nil after logging when every format fails; callers that require a
// date drop the whole record, the rest keep a nil date.
func ParseEnvelopeDate(ctx context.Context, raw string) *time.Time {
	raw = strings.TrimSpace(raw)

	for _, layout := range envelopeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		naive := stripZone(parsed)

		return &naive
	}

	zerolog.Ctx(ctx).Error().Str("date", raw).Msg("failed to parse envelope date")

	return nil
}

// stripZone keeps the wall clock and throws the offset away. Source banks
// report local time inconsistently, so stored dates are always naive.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
