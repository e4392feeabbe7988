// internal/services/catalog.go
package services

import (
	"github.com/javajoker/ecomsynth/internal/models"
)

// Fixed sampling pools. Keeping them in-repo avoids pulling a faker
// dependency while still producing plausible rows.
var firstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Elijah", "Sophia", "Lucas",
	"Isabella", "Mason", "Mia", "Ethan", "Charlotte", "Logan", "Amelia", "James",
	"Harper", "Benjamin", "Evelyn", "Henry",
}

var lastNames = []string{
	"Smith", "Johnson", "Brown", "Taylor", "Anderson", "Thomas", "Jackson",
	"White", "Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson",
	"Clark", "Rodriguez", "Lewis", "Lee", "Walker", "Hall",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "example.com"}

var states = []string{"CA", "NY", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "WA"}

type catalogItem struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

// productCatalog holds the per-category price bands. Category iteration
// always follows models.AllCategories so the seeded stream stays stable.
var productCatalog = map[models.ProductCategory][]catalogItem{
	models.CategoryElectronics: {
		{"Wireless Earbuds", 59, 199},
		{"Smartphone Case", 9, 39},
		{"USB-C Charger", 12, 45},
		{"Laptop Sleeve", 18, 69},
		{"Smartwatch", 99, 349},
	},
	models.CategoryHome: {
		{"Ceramic Mug", 6, 20},
		{"Throw Pillow", 14, 55},
		{"Desk Lamp", 22, 110},
		{"Bath Towel Set", 25, 90},
		{"Knife Set", 35, 160},
	},
	models.CategoryBeauty: {
		{"Facial Cleanser", 10, 35},
		{"Sunscreen SPF 50", 12, 42},
		{"Shampoo", 8, 28},
		{"Serum", 22, 90},
		{"Moisturizer", 15, 60},
	},
	models.CategorySports: {
		{"Yoga Mat", 18, 60},
		{"Running Shoes", 55, 180},
		{"Water Bottle", 12, 40},
		{"Fitness Tracker", 59, 220},
		{"Bike Helmet", 35, 140},
	},
}

var paymentMethodWeights = []struct {
	Method models.PaymentMethod
	Weight int
}{
	{models.PaymentMethodCreditCard, 40},
	{models.PaymentMethodDebitCard, 25},
	{models.PaymentMethodPaypal, 20},
	{models.PaymentMethodGiftCard, 10},
	{models.PaymentMethodApplePay, 5},
}
