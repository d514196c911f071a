package auctionhouse

import (
	"errors"
	"fmt"
	"strings"

	"wowsync/core/market"
	"wowsync/feature/auctionhouse/models"
)

// Indicator names accepted by ?indicators=.
const (
	IndicatorVWAP        = "vwap"
	IndicatorCorrelation = "correlation"
	IndicatorMFI         = "mfi"
)

var knownIndicators = []string{IndicatorVWAP, IndicatorCorrelation, IndicatorMFI}

// parseIndicators reads a comma separated indicator list. "all" selects
// every indicator.
func parseIndicators(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []string
	seen := map[string]bool{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		if name == "all" {
			return knownIndicators, nil
		}
		known := false
		for _, k := range knownIndicators {
			known = known || k == name
		}
		if !known {
			return nil, fmt.Errorf("unknown indicator %q", name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// observations turns a newest-first history into an oldest-first series.
func observations(history []models.Commodity) []market.Observation {
	out := make([]market.Observation, len(history))
	for i, c := range history {
		out[len(history)-1-i] = market.Observation{
			Price:  float64(c.MarketPrice),
			Volume: float64(c.Quantity),
		}
	}
	return out
}

// computeIndicators evaluates the named indicators over history. Series
// values are oldest first; an indicator the history is too short for is null.
func computeIndicators(history []models.Commodity, names []string) map[string]any {
	series := observations(history)
	out := make(map[string]any, len(names))
	for _, name := range names {
		switch name {
		case IndicatorVWAP:
			out[name] = market.VWAP(series)
		case IndicatorCorrelation:
			if r, ok := market.PriceVolumeCorrelation(series); ok {
				out[name] = r
			} else {
				out[name] = nil
			}
		case IndicatorMFI:
			mfi, err := market.MoneyFlowIndex(series, market.DefaultMFIPeriod)
			if errors.Is(err, market.ErrNotEnoughData) {
				out[name] = nil
				continue
			}
			out[name] = mfi
		}
	}
	return out
}
