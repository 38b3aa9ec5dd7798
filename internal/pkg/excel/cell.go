package excel

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind tags the loose value shapes a spreadsheet cell can arrive as.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumeric
	KindText
	KindTemporal
)

// Cell is a tagged union over the cell shapes we accept. Anything that does
// not fit one of the four kinds is not representable and therefore invalid.
type Cell struct {
	Kind   Kind
	Number float64
	Text   string
	Time   time.Time
}

func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

func NumberCell(n float64) Cell {
	return Cell{Kind: KindNumeric, Number: n}
}

func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

func TimeCell(t time.Time) Cell {
	return Cell{Kind: KindTemporal, Time: t}
}

// CellFromRaw classifies a raw worksheet value. Numeric probing runs on the
// trimmed value, but text cells keep their original spacing so callers decide
// how to trim. Spellings like "NaN" and "Inf" parse as floats but no
// worksheet number cell can hold them, so they classify as text.
func CellFromRaw(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return TextCell(raw)
		}
		return NumberCell(n)
	}
	return TextCell(raw)
}

// String renders the cell the way a loose consumer would coerce it.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumeric:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	case KindTemporal:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
