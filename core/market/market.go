package market

import (
	"math"
	"slices"
)

// Listing is one auction observation.
type Listing struct {
	ItemID    int64
	UnitPrice int64
	Quantity  int64
}

// Analysis summarizes the listings of one item.
type Analysis struct {
	ItemID        int64
	MinPrice      int64
	MaxPrice      int64
	MarketPrice   int64
	TotalQuantity int64
}

// Resolver derives a representative market price from noisy listings.
type Resolver struct {
	cfg Config
}

// NewResolver creates a Resolver. Zero fields of cfg take their defaults.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg.withDefaults()}
}

// Eps returns the clustering radius for a price range.
func (r *Resolver) Eps(priceRange int64) float64 {
	return math.Max(float64(priceRange)*r.cfg.EpsFraction, r.cfg.MinEps)
}

// Resolve returns the market price of one item's unit prices: 0 for no prices,
// the minimum for fewer than MinObservations prices, and otherwise the minimum
// of the density cluster with the lowest mean. When every price is noise the
// global minimum is returned.
func (r *Resolver) Resolve(prices []int64) int64 {
	if len(prices) == 0 {
		return 0
	}
	lowest := slices.Min(prices)
	if len(prices) < r.cfg.MinObservations {
		return lowest
	}

	labels := DBSCAN(prices, r.Eps(slices.Max(prices)-lowest), r.cfg.MinSamples)

	type stats struct {
		sum   float64
		count int
		min   int64
	}
	clusters := map[int]*stats{}
	for i, label := range labels {
		if label == Noise {
			continue
		}
		s, ok := clusters[label]
		if !ok {
			s = &stats{min: prices[i]}
			clusters[label] = s
		}
		s.sum += float64(prices[i])
		s.count++
		s.min = min(s.min, prices[i])
	}
	if len(clusters) == 0 {
		return lowest
	}

	best := -1
	bestMean := math.Inf(1)
	for label := 0; label < len(clusters); label++ {
		s := clusters[label]
		if mean := s.sum / float64(s.count); mean < bestMean {
			best, bestMean = label, mean
		}
	}
	return clusters[best].min
}

// Analyze groups listings by item and summarizes each item. Results follow
// the order in which items first appear; listings without an item id are
// ignored.
func (r *Resolver) Analyze(listings []Listing) []Analysis {
	index := map[int64]int{}
	var items []int64
	prices := map[int64][]int64{}
	quantities := map[int64]int64{}

	for _, l := range listings {
		if l.ItemID == 0 {
			continue
		}
		if _, ok := index[l.ItemID]; !ok {
			index[l.ItemID] = len(items)
			items = append(items, l.ItemID)
		}
		prices[l.ItemID] = append(prices[l.ItemID], l.UnitPrice)
		quantities[l.ItemID] += l.Quantity
	}

	out := make([]Analysis, 0, len(items))
	for _, id := range items {
		p := prices[id]
		out = append(out, Analysis{
			ItemID:        id,
			MinPrice:      slices.Min(p),
			MaxPrice:      slices.Max(p),
			MarketPrice:   r.Resolve(p),
			TotalQuantity: quantities[id],
		})
	}
	return out
}
