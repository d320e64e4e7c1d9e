package internal

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

func (d Direction) Arrow() string {
	if d == Down {
		return "↘"
	}
	return "↗"
}

// PercentChange is the move from the first to the last sample, in percent.
func PercentChange(series Series) float64 {
	first := series.First().Price
	if first == 0 {
		return 0
	}
	return (series.Last().Price - first) / first * 100
}

// Trend reports Up when the last price is at or above the first one.
func Trend(series Series) Direction {
	if series.Last().Price >= series.First().Price {
		return Up
	}
	return Down
}

func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatPrice groups thousands and keeps up to three fraction digits,
// e.g. 68320 -> "$68,320" and 1234.5 -> "$1,234.5".
func FormatPrice(price float64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}
	return sign + "$" + humanize.Commaf(math.Round(price*1000)/1000)
}

func RangeLabel(min, max float64) string {
	return fmt.Sprintf("Low: %s • High: %s", FormatPrice(min), FormatPrice(max))
}

// Readout is the set of strings shown for the highlighted sample.
type Readout struct {
	Price  string
	Time   string
	Change string
	Trend  Direction
	Range  string
}

func NewReadout(series Series, geometry Geometry, active int) Readout {
	s := series[active]
	return Readout{
		Price:  FormatPrice(s.Price),
		Time:   s.Time,
		Change: FormatPercent(PercentChange(series)),
		Trend:  Trend(series),
		Range:  RangeLabel(geometry.Min, geometry.Max),
	}
}
