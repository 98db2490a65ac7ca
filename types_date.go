package wealth

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 form.
const DateFormat = "2006-01-02" // write date format

// Date represents a calendar day, the granularity of the transaction log.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// YearMonth returns the "YYYY-MM" prefix of the date, the cashflow bucket key.
func (d Date) YearMonth() string { return d.time().Format("2006-01") }

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1.
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshaller/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

var (
	isoDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	euDateRE  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	usDateRE  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// genericDateLayouts are tried, in order, for values that match none of the
// three recognized shapes. Time parts are truncated to the calendar day.
var genericDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-1-2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// NormalizeDate resolves a raw cell value into a Date for import. It accepts,
// in priority order: strict ISO "YYYY-MM-DD", European "DD.MM.YYYY", US
// "MM/DD/YYYY", then any generic layout. Unparseable or absent values fall
// back to today, so the import never rejects a row over its date. The second
// return value is false when the fallback was used.
//
// The US shape reuses the three captured groups positionally as
// year/month/day = third/first/second, matching the historic behavior.
func NormalizeDate(v string) (Date, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return Today(), false
	}
	if isoDateRE.MatchString(s) {
		if d, err := ParseDate(s); err == nil {
			return d, true
		}
	}
	if euDateRE.MatchString(s) {
		parts := strings.Split(s, ".")
		if d, err := ParseDate(parts[2] + "-" + parts[1] + "-" + parts[0]); err == nil {
			return d, true
		}
	}
	if usDateRE.MatchString(s) {
		parts := strings.Split(s, "/")
		if d, err := ParseDate(parts[2] + "-" + parts[0] + "-" + parts[1]); err == nil {
			return d, true
		}
	}
	for _, layout := range genericDateLayouts {
		if on, err := time.Parse(layout, s); err == nil {
			return NewDate(on.Date()), true
		}
	}
	return Today(), false
}
