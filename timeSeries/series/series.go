package series

import (
	"github.com/gonum/stat"

	"macrostat/infra/errorx"
)

// Series is a named, ordered sequence of observations.
type Series struct {
	Name   string
	Values []float64
}

func New(name string, values []float64) Series {
	return Series{Name: name, Values: values}
}

func (s Series) Len() int {
	return len(s.Values)
}

// Diff returns the first difference: out[i] = v[i+1] - v[i], length n-1.
// The result is named with a Δ prefix.
func (s Series) Diff() (Series, error) {
	n := len(s.Values)
	if n < 2 {
		return Series{}, errorx.Newf(errorx.INSUFFICIENT_LENGTH,
			"%s: need at least 2 observations to difference, have %d", s.Name, n)
	}
	d := make([]float64, n-1)
	for i := 1; i < n; i++ {
		d[i-1] = s.Values[i] - s.Values[i-1]
	}
	return Series{Name: "Δ" + s.Name, Values: d}, nil
}

func (s Series) Mean() float64 {
	return stat.Mean(s.Values, nil)
}

// Variance is the sample variance (n-1 denominator).
func (s Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}
