// Package normalize maps noisy free-text form fields onto canonical values.
// Every function is pure: the same input always yields the same output and
// no function ever fails. Unparseable input falls back to a default.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

const ellipsis = "..."

var (
	hyphenReplacer  = strings.NewReplacer("−", "-", "‐", "-", "―", "-", "ー", "-", "－", "-")
	trailingPhoneRe = regexp.MustCompile(`\d{10,}$`)
)

// Normalizer canonicalizes addresses and venue names with a Table.
type Normalizer struct {
	table *Table
}

// New creates a Normalizer over table.
func New(table *Table) *Normalizer {
	return &Normalizer{table: table}
}

// NormalizeAddress returns the canonical area for a raw address. The steps
// run in a fixed order: width folding, hyphen unification, whitespace
// removal, trailing phone number removal, exact alias, ordered pattern
// cascade, city bucket, truncation. The result is a fixed point:
// NormalizeAddress(NormalizeAddress(x)) == NormalizeAddress(x).
func (n *Normalizer) NormalizeAddress(raw string) string {
	cleaned := cleanAddress(raw)
	if cleaned == "" {
		return n.table.Unknown
	}

	if area, ok := n.table.Aliases[cleaned]; ok {
		return area
	}

	for _, rule := range n.table.Patterns {
		if rule.re.MatchString(cleaned) {
			return rule.Area
		}
	}

	if n.table.CityMarker != "" && strings.Contains(cleaned, n.table.CityMarker) {
		return n.table.CityBucket
	}

	if n.table.MaxLength > 0 && utf8.RuneCountInString(cleaned) > n.table.MaxLength {
		return string([]rune(cleaned)[:n.table.MaxLength]) + ellipsis
	}

	return cleaned
}

// ExtractLocation maps free-text venue names onto the known pantry
// locations, returning the trimmed input when nothing matches.
func (n *Normalizer) ExtractLocation(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return n.table.UnknownLocation
	}

	for _, rule := range n.table.Locations {
		if strings.Contains(trimmed, rule.Contains) {
			return rule.Location
		}
	}

	return trimmed
}

func cleanAddress(raw string) string {
	s := FoldWidth(strings.TrimSpace(raw))
	s = hyphenReplacer.Replace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	return trailingPhoneRe.ReplaceAllString(s, "")
}

// FoldWidth converts full-width ASCII (digits, letters, symbols) to
// half-width and half-width katakana to full-width.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// NormalizeKanaName unifies spacing in a kana name: ideographic spaces
// become ASCII spaces, runs collapse to one and the ends are trimmed.
func NormalizeKanaName(raw string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(raw, "　", " ")), " ")
}
