// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name           string         `json:"name" gorm:"size:255;not null"`
	Brand          string         `json:"brand" gorm:"size:100;index"`
	Price          float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Image          string         `json:"image" gorm:"size:512"`
	AvailableSizes pq.StringArray `json:"available_sizes" gorm:"type:text[]"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status         ProductStatus  `json:"status" gorm:"type:varchar(20);default:'active';index"`
	ViewCount      int64          `json:"view_count" gorm:"default:0"`
	SalesCount     int64          `json:"sales_count" gorm:"default:0"`
}

// DefaultSize is the size assigned to a cart line when a product has no
// size chart.
const DefaultSize = "One Size"

// FirstSize returns the first configured size label or DefaultSize.
func (p *Product) FirstSize() string {
	if len(p.AvailableSizes) > 0 {
		return p.AvailableSizes[0]
	}
	return DefaultSize
}
