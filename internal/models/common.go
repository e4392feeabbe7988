// internal/models/common.go
package models

// CSV and database timestamp layouts (ISO 8601).
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)

// Enums
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "Electronics"
	CategoryHome        ProductCategory = "Home"
	CategoryBeauty      ProductCategory = "Beauty"
	CategorySports      ProductCategory = "Sports"
)

func AllCategories() []ProductCategory {
	return []ProductCategory{CategoryElectronics, CategoryHome, CategoryBeauty, CategorySports}
}

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPaypal     PaymentMethod = "paypal"
	PaymentMethodGiftCard   PaymentMethod = "gift_card"
	PaymentMethodApplePay   PaymentMethod = "apple_pay"
)

const CurrencyUSD = "USD"
