package market_test

import (
	"testing"

	"wowsync/core/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(points ...[2]float64) []market.Observation {
	out := make([]market.Observation, len(points))
	for i, p := range points {
		out[i] = market.Observation{Price: p[0], Volume: p[1]}
	}
	return out
}

func TestVWAP(t *testing.T) {
	vwap := market.VWAP(series([2]float64{10, 1}, [2]float64{20, 0}, [2]float64{30, 3}))
	require.Len(t, vwap, 3)
	assert.InDelta(t, 10, *vwap[0], 1e-9)
	assert.InDelta(t, 10, *vwap[1], 1e-9)
	assert.InDelta(t, 25, *vwap[2], 1e-9)

	vwap = market.VWAP(series([2]float64{5, 0}, [2]float64{10, 2}))
	assert.Nil(t, vwap[0])
	assert.InDelta(t, 10, *vwap[1], 1e-9)

	assert.Empty(t, market.VWAP(nil))
}

func TestPriceVolumeCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		series []market.Observation
		want   float64
		ok     bool
	}{
		{"positive", series([2]float64{1, 2}, [2]float64{2, 4}, [2]float64{3, 6}), 1, true},
		{"negative", series([2]float64{1, 6}, [2]float64{2, 4}, [2]float64{3, 2}), -1, true},
		{"partial", series([2]float64{1, 1}, [2]float64{2, 3}, [2]float64{3, 2}), 0.5, true},
		{"constant price", series([2]float64{5, 1}, [2]float64{5, 2}), 0, false},
		{"single point", series([2]float64{5, 1}), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := market.PriceVolumeCorrelation(tt.series)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMoneyFlowIndex(t *testing.T) {
	// flows: +11 at 1, -10 at 2, +12 at 3
	mfi, err := market.MoneyFlowIndex(series(
		[2]float64{10, 1}, [2]float64{11, 1}, [2]float64{10, 1}, [2]float64{12, 1},
	), 2)
	require.NoError(t, err)
	require.Len(t, mfi, 4)

	assert.Nil(t, mfi[0])
	// no negative flow in the window: ratio capped at 9999
	assert.InDelta(t, 99.99, *mfi[1], 1e-9)
	assert.InDelta(t, 100-100/2.1, *mfi[2], 1e-9)
	assert.InDelta(t, 100-100/2.2, *mfi[3], 1e-9)
}

func TestMoneyFlowIndex_NoFlowAndFalling(t *testing.T) {
	mfi, err := market.MoneyFlowIndex(series([2]float64{10, 1}, [2]float64{10, 1}, [2]float64{9, 1}), 2)
	require.NoError(t, err)
	assert.Nil(t, mfi[1])
	assert.InDelta(t, 0, *mfi[2], 1e-9)
}

func TestMoneyFlowIndex_NotEnoughData(t *testing.T) {
	points := make([]market.Observation, market.DefaultMFIPeriod)
	_, err := market.MoneyFlowIndex(points, 0)
	assert.ErrorIs(t, err, market.ErrNotEnoughData)

	points = append(points, market.Observation{Price: 1, Volume: 1})
	mfi, err := market.MoneyFlowIndex(points, 0)
	require.NoError(t, err)
	assert.Len(t, mfi, market.DefaultMFIPeriod+1)
}
