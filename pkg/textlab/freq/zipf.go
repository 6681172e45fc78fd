package freq

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ZipfFit is a least-squares fit of log(count) against log(rank). A
// corpus following Zipf's law yields a slope near -1. The analyzer only
// computes and exposes the numbers; conformance is for the caller to
// judge.
type ZipfFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Points    int     `json:"points"`
}

// Zipf fits log(count) = intercept + slope·log(rank) over the ranked
// entries. Fewer than two entries cannot constrain a line; the fit is
// returned zeroed with only the point count set.
func (p Profile) Zipf() ZipfFit {
	n := len(p.Ranked)
	if n < 2 {
		return ZipfFit{Points: n}
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i, e := range p.Ranked {
		x[i] = math.Log(float64(e.Rank))
		y[i] = math.Log(float64(e.Count))
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return ZipfFit{Slope: slope, Intercept: intercept, Points: n}
}
