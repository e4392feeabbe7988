// internal/models/order_detail.go
package models

type OrderDetail struct {
	OrderDetailID int64   `json:"order_detail_id" gorm:"column:order_detail_id;primaryKey"`
	OrderID       int64   `json:"order_id" gorm:"not null;index"`
	ProductID     int64   `json:"product_id" gorm:"not null;index"`
	Quantity      int     `json:"quantity" gorm:"not null"`
	UnitPrice     float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Discount      float64 `json:"discount" gorm:"type:decimal(4,2);not null;default:0"`
	LineTotal     float64 `json:"line_total" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Order   Order   `json:"order,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
}

func (OrderDetail) TableName() string { return "order_details" }
