// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is a snapshot of a session cart taken at checkout. Line items
// copy the derived cart fields so later catalog edits do not rewrite
// order history.
type Order struct {
	BaseModel
	SessionID       uuid.UUID   `json:"session_id" gorm:"type:uuid;not null;index"`
	Amount          float64     `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency        string      `json:"currency" gorm:"size:10;not null"`
	PaymentIntentID string      `json:"payment_intent_id" gorm:"size:255;index"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Brand     string    `json:"brand" gorm:"size:100"`
	Size      string    `json:"size" gorm:"size:50"`
	UnitPrice float64   `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	LineTotal float64   `json:"line_total" gorm:"type:decimal(10,2);not null"`
}
