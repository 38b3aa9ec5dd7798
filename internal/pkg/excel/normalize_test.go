package excel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_SerialNumber(t *testing.T) {
	// 45810 days after the 1899-12-30 epoch is Monday 2025-06-02.
	date, ok := NormalizeDate(NumberCell(45810))
	require.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 2, date.Day())
	assert.Equal(t, time.Monday, date.Weekday())
}

func TestNormalizeDate_SerialWithFraction(t *testing.T) {
	// A serial carrying a time fraction lands mid-day.
	date, ok := NormalizeDate(NumberCell(45810.5))
	require.True(t, ok)
	assert.Equal(t, 2, date.Day())
	assert.Equal(t, 12, date.Hour())
}

func TestNormalizeDate_TemporalPassthrough(t *testing.T) {
	stamp := time.Date(2025, time.June, 2, 8, 30, 0, 0, time.Local)
	date, ok := NormalizeDate(TimeCell(stamp))
	require.True(t, ok)
	assert.True(t, stamp.Equal(date))

	_, ok = NormalizeDate(TimeCell(time.Time{}))
	assert.False(t, ok)
}

func TestNormalizeDate_Text(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"2025-06-02", "2025-06-02"},
		{"06/02/2025", "2025-06-02"},
		{"6/2/2025", "2025-06-02"},
		{"06-02-2025", "2025-06-02"},
		{"Jun 2, 2025", "2025-06-02"},
		{"2 Jun 2025", "2025-06-02"},
		{"2025/06/02", "2025-06-02"},
	}
	for _, c := range cases {
		date, ok := NormalizeDate(TextCell(c.value))
		if !ok {
			t.Errorf("NormalizeDate(%q) reported invalid", c.value)
			continue
		}
		if got := date.Format("2006-01-02"); got != c.want {
			t.Errorf("NormalizeDate(%q) = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	invalid := []Cell{
		EmptyCell(),
		TextCell("N/A"),
		TextCell("not a date"),
		TextCell("   "),
	}
	for _, cell := range invalid {
		if _, ok := NormalizeDate(cell); ok {
			t.Errorf("NormalizeDate(%v) = valid, want invalid", cell)
		}
	}
}

func TestNormalizeDate_RejectsNonFiniteAndHugeSerials(t *testing.T) {
	// A serial that cannot land on a real instant must not normalize to one.
	invalid := []Cell{
		NumberCell(math.NaN()),
		NumberCell(math.Inf(1)),
		NumberCell(math.Inf(-1)),
		NumberCell(1e300),
		NumberCell(-1e300),
	}
	for _, cell := range invalid {
		if date, ok := NormalizeDate(cell); ok {
			t.Errorf("NormalizeDate(%v) = %v, want invalid", cell.Number, date)
		}
	}

	// Spelled-out non-finite raw values classify as text and fail the
	// layout parse rather than sneaking through the numeric path.
	for _, raw := range []string{"NaN", "Inf", "+Inf", "-inf", "nan"} {
		cell := CellFromRaw(raw)
		assert.Equal(t, KindText, cell.Kind, "CellFromRaw(%q)", raw)
		if _, ok := NormalizeDate(cell); ok {
			t.Errorf("NormalizeDate(CellFromRaw(%q)) = valid, want invalid", raw)
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	base := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local)

	cases := []struct {
		fraction    float64
		hour, min   int
	}{
		{0.375, 9, 0},
		{0.75, 18, 0},
		{0.5, 12, 0},
		{0.3541666666666667, 8, 30},
		{0, 0, 0},
	}
	for _, c := range cases {
		got, ok := TimeOfDay(base, c.fraction)
		if !ok {
			t.Errorf("TimeOfDay(%v) reported invalid", c.fraction)
			continue
		}
		if got.Hour() != c.hour || got.Minute() != c.min {
			t.Errorf("TimeOfDay(%v) = %02d:%02d, want %02d:%02d", c.fraction, got.Hour(), got.Minute(), c.hour, c.min)
		}
		if got.Second() != 0 {
			t.Errorf("TimeOfDay(%v) has non-zero seconds", c.fraction)
		}
		if got.Day() != base.Day() {
			t.Errorf("TimeOfDay(%v) moved off the base day", c.fraction)
		}
	}
}

func TestTimeOfDay_RejectsNonFiniteFractions(t *testing.T) {
	base := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local)

	for _, fraction := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300, -1e300} {
		if got, ok := TimeOfDay(base, fraction); ok {
			t.Errorf("TimeOfDay(%v) = %v, want invalid", fraction, got)
		}
	}
}

func TestDateOnly(t *testing.T) {
	stamp := time.Date(2025, time.June, 2, 14, 45, 30, 12, time.Local)
	day := DateOnly(stamp)
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, 2, day.Day())
	assert.Equal(t, stamp.Location(), day.Location())
}
