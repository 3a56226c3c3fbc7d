package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormatISO is the canonical reminder date layout.
const DateFormatISO = "2006-01-02"

var digitRun = regexp.MustCompile(`\d+`)

// monthNames is ordered January..December; the index+1 is the month number.
var monthNames = []string{
	"january", "february", "march", "april",
	"may", "june", "july", "august",
	"september", "october", "november", "december",
}

// Parser normalizes natural-language date strings to canonical
// YYYY-MM-DD strings.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Warsaw"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Normalize converts a date expression to YYYY-MM-DD relative to baseTime.
// It is a total function: input that matches no rule is returned verbatim,
// never an error. Matching is case-insensitive and first match wins:
// "today", "tomorrow", "next week", then a month name combined with the
// first run of digits anywhere in the string.
func (p *Parser) Normalize(input string, baseTime time.Time) string {
	lower := strings.ToLower(input)
	base := baseTime.In(p.location)

	switch {
	case strings.Contains(lower, "today"):
		return base.Format(DateFormatISO)
	case strings.Contains(lower, "tomorrow"):
		return base.AddDate(0, 0, 1).Format(DateFormatISO)
	case strings.Contains(lower, "next week"):
		return base.AddDate(0, 0, 7).Format(DateFormatISO)
	}

	for i, name := range monthNames {
		if !strings.Contains(lower, name) {
			continue
		}
		match := digitRun.FindString(lower)
		if match == "" {
			// Month name without a day number: nothing to extract,
			// fall through to the verbatim path.
			break
		}
		day, _ := strconv.Atoi(match)
		month := i + 1

		// The date already passed this year: assume the user means next year.
		year := base.Year()
		if month < int(base.Month()) || (month == int(base.Month()) && day < base.Day()) {
			year++
		}
		return fmt.Sprintf("%d-%02d-%02d", year, month, day)
	}

	return input
}

// Today returns the canonical date string for baseTime's day.
func (p *Parser) Today(baseTime time.Time) string {
	return baseTime.In(p.location).Format(DateFormatISO)
}

// Tomorrow returns the canonical date string for the day after baseTime.
func (p *Parser) Tomorrow(baseTime time.Time) string {
	return baseTime.In(p.location).AddDate(0, 0, 1).Format(DateFormatISO)
}
