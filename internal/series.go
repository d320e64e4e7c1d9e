package internal

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrEmptySeries  = errors.New("series must contain at least one sample")
	ErrInvalidPrice = errors.New("sample price must be a finite number")
)

const (
	AssetName   = "Bitcoin"
	AssetSymbol = "BTC / USDT"
)

// Sample is one (time, price) observation.
type Sample struct {
	Time  string  `json:"time" yaml:"time"`
	Price float64 `json:"price" yaml:"price"`
}

// Series is a chronologically ordered, non-empty list of samples.
type Series []Sample

var mockSamples = []Sample{
	{Time: "10:00", Price: 67000},
	{Time: "11:00", Price: 67250},
	{Time: "12:00", Price: 66800},
	{Time: "13:00", Price: 67500},
	{Time: "14:00", Price: 68050},
	{Time: "15:00", Price: 67800},
	{Time: "16:00", Price: 68320},
}

// MockSeries returns a fresh copy of the built-in BTC series.
func MockSeries() Series {
	s := make(Series, len(mockSamples))
	copy(s, mockSamples)
	return s
}

func NewSeries(samples []Sample) (Series, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySeries
	}
	for i, s := range samples {
		if math.IsNaN(s.Price) || math.IsInf(s.Price, 0) {
			return nil, errors.Wrapf(ErrInvalidPrice, "sample %d (%s)", i, s.Time)
		}
	}
	s := make(Series, len(samples))
	copy(s, samples)
	return s, nil
}

func (s Series) First() Sample { return s[0] }

func (s Series) Last() Sample { return s[len(s)-1] }

func (s Series) LastIndex() int { return len(s) - 1 }

// MinMax returns the lowest and highest price in the series.
func (s Series) MinMax() (min, max float64) {
	min, max = s[0].Price, s[0].Price
	for _, sample := range s[1:] {
		if sample.Price < min {
			min = sample.Price
		}
		if sample.Price > max {
			max = sample.Price
		}
	}
	return min, max
}
