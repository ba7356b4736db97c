package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultHouseholdSize is used when no digits are present. Aggregations
// assume every household has at least one member.
const DefaultHouseholdSize = 1

var (
	eventDateRe = regexp.MustCompile(`(\d+)月(\d+)日`)
	eventDayRe  = regexp.MustCompile(`\d+月\d+日\s*(?:[(（][^)）]*[)）])?`)
	digitsRe    = regexp.MustCompile(`\d+`)
	decimalRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseEventDate extracts "<month>月<day>日" from raw and places it in year.
// ok is false when the text has no such date or the date does not exist.
func ParseEventDate(raw string, year int, loc *time.Location) (date time.Time, ok bool) {
	match := eventDateRe.FindStringSubmatch(FoldWidth(raw))
	if match == nil {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(match[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(match[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.UTC
	}

	date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}

// ParseHouseholdSize returns the first digit run in raw, or
// DefaultHouseholdSize when there is none. "2〜3名" yields 2.
func ParseHouseholdSize(raw string) int {
	match := digitsRe.FindString(FoldWidth(raw))
	if match == "" {
		return DefaultHouseholdSize
	}

	size, err := strconv.Atoi(match)
	if err != nil || size < DefaultHouseholdSize {
		return DefaultHouseholdSize
	}

	return size
}

// ParseCount returns the first digit run in raw. ok is false when raw has
// no digits.
func ParseCount(raw string) (int, bool) {
	match := digitsRe.FindString(FoldWidth(raw))
	if match == "" {
		return 0, false
	}

	count, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	return count, true
}

// EventVenue returns the event text with its "<month>月<day>日(<weekday>)"
// part removed, e.g. "4月12日（土）市役所" yields "市役所".
func EventVenue(raw string) string {
	return strings.TrimSpace(eventDayRe.ReplaceAllString(FoldWidth(raw), ""))
}

// ParseWeight extracts a decimal weight such as "3.5kg" or "１，２００".
func ParseWeight(raw string) (float64, bool) {
	s := strings.ReplaceAll(FoldWidth(raw), ",", "")

	match := decimalRe.FindString(s)
	if match == "" {
		return 0, false
	}

	weight, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return weight, true
}
