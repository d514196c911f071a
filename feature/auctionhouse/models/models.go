// Package models defines the market price records derived from commodity
// auction snapshots.
package models

import (
	"time"

	gamedata "wowsync/feature/gamedata/models"
)

// Commodity is the market summary of one item in one snapshot. Records are
// written once and never updated; (item, origin) is unique.
type Commodity struct {
	ID          int64          `gorm:"column:id;primaryKey" json:"id"`
	ItemID      int64          `gorm:"column:item_id;uniqueIndex:idx_commodity_item_origin" json:"item_id"`
	Item        *gamedata.Item `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
	Origin      string         `gorm:"column:origin;type:varchar(64);uniqueIndex:idx_commodity_item_origin;index" json:"origin"`
	Quantity    int64          `gorm:"column:quantity" json:"quantity"`
	MinPrice    int64          `gorm:"column:min_price" json:"min_price"`
	MaxPrice    int64          `gorm:"column:max_price" json:"max_price"`
	MarketPrice int64          `gorm:"column:market_price" json:"market_price"`
	Timestamp   time.Time      `gorm:"column:timestamp;index" json:"timestamp"`
}

func (Commodity) TableName() string { return "commodities" }

// All returns every model of this package in migration order.
func All() []any {
	return []any{&Commodity{}}
}
