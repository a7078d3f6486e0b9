// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract derives a person name and a cheque date from the plain
// text of one pay statement page.
//
// The layout is fixed: a boilerplate header ending in the marker token, the
// payee name on its own line, and a "Cheque Date" label somewhere below it.
package extract

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/paysplit/pkg/types"
)

// Marker ends the boilerplate header. Parsing starts after its first
// occurrence.
const Marker = "4300"

// isoDate is the canonical stored date layout.
const isoDate = "2006-01-02"

// space is the Unicode whitespace set. RE2's \s is ASCII only, and text
// layers often separate words with a no-break space.
const space = `\s\v\x{85}\p{Z}\x1c-\x1f`

var (
	// nameRe is greedy across lines: a run of letter/space lines is
	// captured up to its last line break.
	nameRe = regexp.MustCompile(`([A-Z][A-Za-z` + space + `]+)\n`)
	dateRe = regexp.MustCompile(`(?i)Cheque Date:?[` + space + `]*(.*?)(?:\n|$)`)
)

// dateLayouts is tried in order and the first layout that parses wins, so a
// numeric date such as 03/04/2024 is read day-first. Two-digit years pivot
// at 69: 69-99 map to 19xx, 00-68 to 20xx.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"1/2/2006",
	"1-2-2006",
	"2/1/06",
	"2-1-06",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"2 January 2006",
	"2006-1-2",
}

// Result is the outcome of parsing one page. Name and Date are never empty.
type Result struct {
	// Name is the payee name, or types.UnknownName.
	Name string

	// Date is ISO YYYY-MM-DD, or types.UnknownDate.
	Date string

	// RawDate is the text captured after the date label, trimmed.
	RawDate string

	// DateLabel reports whether the "Cheque Date" label was present. When it
	// was and Date is still the sentinel, RawDate matched no layout.
	DateLabel bool

	// MarkerFound reports whether the header marker was present.
	MarkerFound bool
}

// Parse extracts the name and date from page text. It never fails:
// anything it cannot find falls back to the sentinel values.
func Parse(text string) Result {
	var res Result

	if _, after, found := strings.Cut(text, Marker); found {
		text = after
		res.MarkerFound = true
	}

	res.Name = types.UnknownName
	if m := nameRe.FindStringSubmatch(text); m != nil {
		res.Name = trimSpace(m[1])
	}

	res.Date = types.UnknownDate
	if m := dateRe.FindStringSubmatch(text); m != nil {
		res.DateLabel = true
		res.RawDate = trimSpace(m[1])
		if d, ok := NormalizeDate(res.RawDate); ok {
			res.Date = d
		}
	}

	return res
}

// trimSpace trims the same set the patterns treat as space. It differs from
// strings.TrimSpace only in also trimming the 0x1C-0x1F separators.
func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}

// NormalizeDate parses raw against the layout ladder and returns it as
// YYYY-MM-DD. The second return value is false when no layout matched.
// Day-first layouts are tried first, so 03/04/2023 is read as 3 April.
func NormalizeDate(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.Format(isoDate), true
		}
	}
	return "", false
}

// Filename returns the artifact name for a parsed page. Characters are not
// escaped; the name is used as-is inside the output folder.
func Filename(name, date string) string {
	return name + " " + date + ".pdf"
}
