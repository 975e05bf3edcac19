// Package render formats slider labels for every host: names from
// configuration and value labels.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Sanitize removes control characters (except tab/space) and replaces
// invalid UTF-8 bytes with the Unicode replacement character.
// This prevents broken rendering from bad configuration values.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte: skip it
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			// Control character: skip
			i += size
			continue
		}
		// Replace non-breaking space with regular space
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars (except tab)
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 control range / invalid lead bytes
			return true
		}
		if b == 0xc2 { // Potential 2-byte sequence for U+00A0 (NBSP) or C1 controls
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth cells, ending it with
// a single character ellipsis (…) when cut. Styling sequences survive.
func Truncate(s string, maxWidth int) string {
	return ansi.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
// Uses runewidth for proper handling of wide characters.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// maxLabelDigits is the most fractional digits humanize can render.
const maxLabelDigits = 9

// Digits returns how many fractional digits values of r carry.
func Digits(r slider.Range) int {
	return min(max(slider.DecimalDigits(r.Step), slider.DecimalDigits(r.Min)), maxLabelDigits)
}

// FormatValue renders v with thousands separators and digits fractional
// digits.
func FormatValue(v float64, digits int) string {
	return humanize.FormatFloat("#,###."+strings.Repeat("#", digits), v)
}

// Value renders v for a slider over r.
func Value(v float64, r slider.Range) string {
	return FormatValue(v, Digits(r))
}

// ValueWidth is the widest label r can produce, so layouts do not shift
// as the value changes.
func ValueWidth(r slider.Range) int {
	digits := Digits(r)
	return max(
		runewidth.StringWidth(FormatValue(r.Min, digits)),
		runewidth.StringWidth(FormatValue(r.Max, digits)),
	)
}
