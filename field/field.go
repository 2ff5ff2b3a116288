// Package field converts the text content of service XML elements into typed values.
//
// The service emits empty, padded and occasionally malformed fields, so every
// parser reports whether it produced a value instead of failing. Callers keep
// their previous value when a parser returns mo.None.
package field

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ListSeparator joins the entries of a normalized pipe list.
const ListSeparator = ", "

var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Int parses a base-10 integer. Surrounding whitespace and a leading sign are allowed.
func Int(text string) mo.Option[int] {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(v)
}

// Int64 is Int for 64-bit values such as unix timestamps.
func Int64(text string) mo.Option[int64] {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return mo.None[int64]()
	}
	return mo.Some(v)
}

// Float parses a decimal number independently of the host locale:
// "." is the decimal point and "," may only group digits.
// Exponents, NaN and infinities are rejected.
func Float(text string) mo.Option[float64] {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if !decimal.MatchString(text) {
		return mo.None[float64]()
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(v)
}

// Text applies only non-empty text.
func Text(text string) mo.Option[string] {
	if text == "" {
		return mo.None[string]()
	}
	return mo.Some(text)
}

// Date parses a calendar date or timestamp, interpreting zone-less input as UTC.
func Date(text string) mo.Option[time.Time] {
	text = strings.TrimSpace(text)
	if text == "" {
		return mo.None[time.Time]()
	}

	t, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return mo.None[time.Time]()
	}
	return mo.Some(t)
}

// Flag decodes a boolean stored as an integer: any positive value is true,
// everything else, unparseable text included, is false.
func Flag(text string) bool {
	return Int(text).OrElse(0) > 0
}

// Bool parses the literals "true" and "false", ignoring case and padding.
func Bool(text string) mo.Option[bool] {
	switch text = strings.TrimSpace(text); {
	case strings.EqualFold(text, "true"):
		return mo.Some(true)
	case strings.EqualFold(text, "false"):
		return mo.Some(false)
	default:
		return mo.None[bool]()
	}
}

// List normalizes a pipe-delimited list such as "|Drama|Crime|" into
// "Drama, Crime". Text without a pipe is returned unchanged.
func List(text string) string {
	if !strings.Contains(text, "|") {
		return text
	}

	entries := lo.Map(strings.Split(text, "|"), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})

	return strings.Join(lo.Compact(entries), ListSeparator)
}
