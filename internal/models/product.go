// internal/models/product.go
package models

type Product struct {
	ProductID int64           `json:"product_id" gorm:"column:product_id;primaryKey"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Category  ProductCategory `json:"category" gorm:"size:100;index"`
	UnitPrice float64         `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Stock     int             `json:"stock" gorm:"not null;default:0"`

	// Relationships
	OrderDetails []OrderDetail `json:"order_details,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
}

func (Product) TableName() string { return "products" }
