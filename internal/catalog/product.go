package catalog

import (
	"time"

	"github.com/Alp4ka/pagenav"
)

// Product is a storefront catalog entry.
type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Category   string    `gorm:"index" json:"category"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SortColumns maps the sort aliases accepted from clients to product columns.
var SortColumns = pagenav.ColumnMapping{
	"id":      "id",
	"name":    "name",
	"price":   "price_cents",
	"created": "created_at",
}

// DefaultSort is used when the client does not ask for an ordering.
var DefaultSort = []pagenav.OrderBy{
	{Column: "id", Direction: pagenav.DirectionASC},
}

// Categories of the demo catalog.
var Categories = []string{"shoes", "bags", "hats", "jackets", "watches"}
