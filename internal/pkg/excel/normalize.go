package excel

import (
	"math"
	"strings"
	"time"
)

// serialEpoch is the conventional spreadsheet day-zero: 1899-12-30 at local
// midnight. Serial day-numbers convert by adding value x 86,400,000 ms.
func serialEpoch() time.Time {
	return time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)
}

const msPerDay = 86400000

// maxSerialOffsetMs bounds the serial conversion to offsets representable as
// a time.Duration, roughly 292 years either side of the epoch. Non-finite
// values and larger magnitudes cannot yield a valid instant.
const maxSerialOffsetMs = float64(math.MaxInt64 / int64(time.Millisecond))

// Free-text date layouts tried in order. US-style month-first variants come
// first to mirror how the upstream exports render dates.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeDate converts a loose cell into an absolute timestamp.
// Temporal cells pass through unchanged, numeric cells are treated as serial
// day-counts from the spreadsheet epoch, and text cells go through the layout
// list. Everything else reports invalid.
func NormalizeDate(c Cell) (time.Time, bool) {
	switch c.Kind {
	case KindTemporal:
		if c.Time.IsZero() {
			return time.Time{}, false
		}
		return c.Time, true
	case KindNumeric:
		ms := c.Number * msPerDay
		if math.IsNaN(ms) || math.Abs(ms) > maxSerialOffsetMs {
			return time.Time{}, false
		}
		return serialEpoch().Add(time.Duration(int64(ms)) * time.Millisecond), true
	case KindText:
		value := strings.TrimSpace(c.Text)
		if value == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// TimeOfDay places a fraction-of-day clock reading on base's calendar day.
// The fraction is floored to whole minutes with zero seconds. Non-finite
// fractions, or ones whose minute count overflows, report false and are
// treated by callers as no time recorded.
func TimeOfDay(base time.Time, fraction float64) (time.Time, bool) {
	raw := fraction * 1440
	if math.IsNaN(raw) || math.Abs(raw) > float64(math.MaxInt32) {
		return time.Time{}, false
	}
	totalMinutes := int(raw)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	return time.Date(base.Year(), base.Month(), base.Day(), hours, minutes, 0, 0, base.Location()), true
}

// DateOnly truncates a timestamp to its calendar day at local midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
