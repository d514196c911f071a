package market

import (
	"errors"
	"math"
)

// DefaultMFIPeriod is the look-back window of the money flow index.
const DefaultMFIPeriod = 14

// mfiRatioCap replaces an infinite money flow ratio, when a window has
// positive flow and no negative flow.
const mfiRatioCap = 9999

// ErrNotEnoughData is returned when a series is shorter than an indicator needs.
var ErrNotEnoughData = errors.New("not enough data points")

// Observation is one point of an item's market series: the market price of a
// snapshot and the quantity listed in it. Series are ordered oldest first.
type Observation struct {
	Price  float64
	Volume float64
}

// VWAP returns the cumulative volume weighted average price at every point.
// Points before any volume was seen have no value.
func VWAP(series []Observation) []*float64 {
	out := make([]*float64, len(series))
	var pv, volume float64
	for i, o := range series {
		pv += o.Price * o.Volume
		volume += o.Volume
		if volume != 0 {
			v := pv / volume
			out[i] = &v
		}
	}
	return out
}

// PriceVolumeCorrelation returns the Pearson correlation of price and volume.
// It reports false when the series has fewer than two points or either side
// is constant.
func PriceVolumeCorrelation(series []Observation) (float64, bool) {
	n := float64(len(series))
	if len(series) < 2 {
		return 0, false
	}

	var sumP, sumV float64
	for _, o := range series {
		sumP += o.Price
		sumV += o.Volume
	}
	meanP, meanV := sumP/n, sumV/n

	var cov, varP, varV float64
	for _, o := range series {
		dp, dv := o.Price-meanP, o.Volume-meanV
		cov += dp * dv
		varP += dp * dp
		varV += dv * dv
	}
	if varP == 0 || varV == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varP*varV), true
}

// MoneyFlowIndex returns the money flow index over a rolling window of
// period points, using the market price as the typical price. The first
// period-1 points have no value, nor does a window without any flow. The
// series must be longer than period.
func MoneyFlowIndex(series []Observation, period int) ([]*float64, error) {
	if period <= 0 {
		period = DefaultMFIPeriod
	}
	if len(series) <= period {
		return nil, ErrNotEnoughData
	}

	positive := make([]float64, len(series))
	negative := make([]float64, len(series))
	for i := 1; i < len(series); i++ {
		flow := series[i].Price * series[i].Volume
		switch {
		case series[i].Price > series[i-1].Price:
			positive[i] = flow
		case series[i].Price < series[i-1].Price:
			negative[i] = flow
		}
	}

	out := make([]*float64, len(series))
	for i := period - 1; i < len(series); i++ {
		// Summed per window so an empty side is exactly zero
		var pos, neg float64
		for j := i - period + 1; j <= i; j++ {
			pos += positive[j]
			neg += negative[j]
		}

		var ratio float64
		switch {
		case neg != 0:
			ratio = pos / neg
		case pos != 0:
			ratio = mfiRatioCap
		default:
			continue
		}
		v := 100 - 100/(1+ratio)
		out[i] = &v
	}
	return out, nil
}
