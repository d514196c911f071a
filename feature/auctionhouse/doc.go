// Package auctionhouse derives market prices from region-wide commodity
// auction snapshots.
//
// Each snapshot is fingerprinted (core/fingerprint) and resolved per item by
// core/market. A record is written for every item that has none for the
// snapshot's origin yet, which makes re-importing an unchanged snapshot a
// no-op. When object storage is enabled the raw snapshot is archived under
// its origin.
package auctionhouse
