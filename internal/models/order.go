// internal/models/order.go
package models

import (
	"time"
)

type Order struct {
	OrderID       int64     `json:"order_id" gorm:"column:order_id;primaryKey"`
	CustomerID    int64     `json:"customer_id" gorm:"not null;index"`
	OrderDatetime time.Time `json:"order_datetime" gorm:"not null;index"`
	ShippingState string    `json:"shipping_state" gorm:"size:2"`

	// Relationships
	Customer Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:CustomerID"`
	Details  []OrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
	Payment  *Payment      `json:"payment,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string { return "orders" }
