// internal/models/payment.go
package models

import (
	"time"
)

type Payment struct {
	PaymentID       int64         `json:"payment_id" gorm:"column:payment_id;primaryKey"`
	OrderID         int64         `json:"order_id" gorm:"not null;uniqueIndex"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"size:20"`
	PaymentDatetime time.Time     `json:"payment_datetime" gorm:"not null"`
	Subtotal        float64       `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Tax             float64       `json:"tax" gorm:"type:decimal(10,2);not null"`
	Shipping        float64       `json:"shipping" gorm:"type:decimal(10,2);not null"`
	Total           float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	Currency        string        `json:"currency" gorm:"size:3;not null"`

	// Relationships
	Order Order `json:"order,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Payment) TableName() string { return "payments" }
