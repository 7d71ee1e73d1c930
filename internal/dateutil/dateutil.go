// Package dateutil compiles the token date formats used in post front matter.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is the front matter date layout static site
// generators parse without a time zone.
const DefaultDateFormat = "YYYY-MM-DD HH:mm:ss"

// tokens maps format tokens to Go layout components, longest first so
// "MMMM" wins over "MM" and "M".
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats accepted anywhere a token format is.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"post":     DefaultDateFormat,
}

// Layout is a compiled date format.
type Layout struct {
	goLayout string
}

// Compile turns a token format or a preset name (case-insensitive) into a
// Layout. An empty format compiles DefaultDateFormat.
//
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss. Text inside
// brackets is literal, so "[Day] D" renders "Day 12". Anything else
// outside brackets is copied as is.
func Compile(format string) (Layout, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if len(format) > MaxDateFormatLength {
		return Layout{}, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return Layout{}, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}

		n := 1
		if layout, size := matchToken(rest); size > 0 {
			b.WriteString(layout)
			n = size
		} else {
			b.WriteByte(rest[0])
		}
		rest = rest[n:]
	}

	return Layout{goLayout: b.String()}, nil
}

// matchToken returns the Go layout for the token at the start of s and
// the token's length, or 0 when s does not start with a token.
func matchToken(s string) (string, int) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			return t.layout, len(t.token)
		}
	}
	return "", 0
}

// Format renders t with the layout.
func (l Layout) Format(t time.Time) string {
	return t.Format(l.goLayout)
}

// GoLayout returns the equivalent time.Format layout.
func (l Layout) GoLayout() string {
	return l.goLayout
}

// FormatDate compiles format and renders t with it.
func FormatDate(t time.Time, format string) (string, error) {
	l, err := Compile(format)
	if err != nil {
		return "", err
	}
	return l.Format(t), nil
}
