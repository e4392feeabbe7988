// internal/models/customer.go
package models

import (
	"time"
)

type Customer struct {
	CustomerID int64     `json:"customer_id" gorm:"column:customer_id;primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" gorm:"size:255;not null"`
	Phone      string    `json:"phone" gorm:"size:20"`
	State      string    `json:"state" gorm:"size:2;index"`
	SignupDate time.Time `json:"signup_date" gorm:"not null"`

	// Relationships
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (Customer) TableName() string { return "customers" }
