// Package market turns noisy auction listings into per-item price summaries.
//
// The market price of an item is found by clustering its unit prices with a
// one-dimensional DBSCAN. The clustering radius is a fraction of the item's
// price range, floored at an absolute minimum; isolated prices are noise. The
// cluster with the lowest mean wins and its cheapest listing is the market
// price, so a few mispriced listings far above the consensus do not move it.
package market
