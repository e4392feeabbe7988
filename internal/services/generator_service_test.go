// internal/services/generator_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/ecomsynth/internal/config"
	"github.com/javajoker/ecomsynth/internal/errs"
	"github.com/javajoker/ecomsynth/internal/models"
)

func testConfig(outputDir, dbPath string) *config.Config {
	ref, _ := time.Parse("2006-01-02", config.DefaultReferenceDate)
	return &config.Config{
		Environment: "test",
		Generation: config.GenerationConfig{
			Seed:                 42,
			CustomerCount:        200,
			ProductCount:         20,
			AvgOrdersPerCustomer: 2.5,
			MaxItemsPerOrder:     5,
			OutputDir:            outputDir,
			ReferenceDate:        ref,
		},
		Database: config.DatabaseConfig{
			Path:     dbPath,
			LogLevel: "silent",
		},
		Report: config.ReportConfig{TopN: 5},
	}
}

type GeneratorTestSuite struct {
	suite.Suite
	cfg       *config.Config
	customers []models.Customer
	products  []models.Product
	orders    []models.Order
	details   []models.OrderDetail
	payments  []models.Payment
}

func (suite *GeneratorTestSuite) SetupSuite() {
	suite.cfg = testConfig(suite.T().TempDir(), "")

	generator, err := NewGeneratorService(suite.cfg)
	require.NoError(suite.T(), err)

	suite.customers = generator.GenerateCustomers(suite.cfg.Generation.CustomerCount)
	suite.products = generator.GenerateProducts()
	suite.orders = generator.GenerateOrders(suite.customers)
	suite.details = generator.GenerateOrderDetails(suite.orders, suite.products)
	suite.payments = generator.GeneratePayments(suite.orders, suite.details)
}

func (suite *GeneratorTestSuite) TestReferentialClosure() {
	customerIDs := make(map[int64]bool)
	for _, c := range suite.customers {
		customerIDs[c.CustomerID] = true
	}
	productIDs := make(map[int64]bool)
	for _, p := range suite.products {
		productIDs[p.ProductID] = true
	}
	orderIDs := make(map[int64]bool)
	for _, o := range suite.orders {
		assert.True(suite.T(), customerIDs[o.CustomerID], "order %d references unknown customer %d", o.OrderID, o.CustomerID)
		orderIDs[o.OrderID] = true
	}
	for _, d := range suite.details {
		assert.True(suite.T(), orderIDs[d.OrderID], "detail %d references unknown order %d", d.OrderDetailID, d.OrderID)
		assert.True(suite.T(), productIDs[d.ProductID], "detail %d references unknown product %d", d.OrderDetailID, d.ProductID)
	}

	// Exactly one payment per order.
	paidOrders := make(map[int64]int)
	for _, p := range suite.payments {
		assert.True(suite.T(), orderIDs[p.OrderID], "payment %d references unknown order %d", p.PaymentID, p.OrderID)
		paidOrders[p.OrderID]++
	}
	assert.Len(suite.T(), paidOrders, len(suite.orders))
	for orderID, n := range paidOrders {
		assert.Equal(suite.T(), 1, n, "order %d has %d payments", orderID, n)
	}
}

func (suite *GeneratorTestSuite) TestTemporalInvariants() {
	signups := make(map[int64]time.Time)
	for _, c := range suite.customers {
		signups[c.CustomerID] = c.SignupDate
	}
	orderTimes := make(map[int64]time.Time)
	for _, o := range suite.orders {
		assert.False(suite.T(), o.OrderDatetime.Before(signups[o.CustomerID]),
			"order %d placed before customer %d signed up", o.OrderID, o.CustomerID)
		orderTimes[o.OrderID] = o.OrderDatetime
	}
	for _, p := range suite.payments {
		assert.False(suite.T(), p.PaymentDatetime.Before(orderTimes[p.OrderID]),
			"payment %d predates order %d", p.PaymentID, p.OrderID)
	}
}

func (suite *GeneratorTestSuite) TestMonetaryReconciliation() {
	lineTotals := make(map[int64]float64)
	for _, d := range suite.details {
		lineTotals[d.OrderID] += d.LineTotal
	}
	for _, p := range suite.payments {
		assert.InDelta(suite.T(), lineTotals[p.OrderID], p.Subtotal, 0.01,
			"payment %d subtotal does not match line totals", p.PaymentID)
		assert.InDelta(suite.T(), p.Subtotal+p.Tax+p.Shipping, p.Total, 0.01,
			"payment %d total does not reconcile", p.PaymentID)
		assert.Equal(suite.T(), models.CurrencyUSD, p.Currency)
	}
}

func (suite *GeneratorTestSuite) TestDenseIdentifiers() {
	for i, c := range suite.customers {
		assert.Equal(suite.T(), int64(i+1), c.CustomerID)
	}
	for i, p := range suite.products {
		assert.Equal(suite.T(), int64(i+1), p.ProductID)
	}
	for i, d := range suite.details {
		assert.Equal(suite.T(), int64(i+1), d.OrderDetailID)
	}
	for i, p := range suite.payments {
		assert.Equal(suite.T(), int64(i+1), p.PaymentID)
	}

	// Order ids are dense but the slice is sorted chronologically, so
	// check the id set instead of positions.
	seen := make(map[int64]bool)
	for _, o := range suite.orders {
		seen[o.OrderID] = true
	}
	for id := int64(1); id <= int64(len(suite.orders)); id++ {
		assert.True(suite.T(), seen[id], "order id %d missing", id)
	}
}

func (suite *GeneratorTestSuite) TestChronologicalOrderFile() {
	for i := 1; i < len(suite.orders); i++ {
		assert.False(suite.T(), suite.orders[i].OrderDatetime.Before(suite.orders[i-1].OrderDatetime))
	}
}

func (suite *GeneratorTestSuite) TestDiscountRule() {
	for _, d := range suite.details {
		if d.Discount == 0 {
			continue
		}
		assert.GreaterOrEqual(suite.T(), d.Discount, 0.05)
		assert.LessOrEqual(suite.T(), d.Discount, 0.25)
	}
}

func (suite *GeneratorTestSuite) TestLineItemsPerOrder() {
	perOrder := make(map[int64][]int64)
	for _, d := range suite.details {
		assert.GreaterOrEqual(suite.T(), d.Quantity, 1)
		perOrder[d.OrderID] = append(perOrder[d.OrderID], d.ProductID)
	}
	for orderID, productIDs := range perOrder {
		assert.GreaterOrEqual(suite.T(), len(productIDs), 1)
		assert.LessOrEqual(suite.T(), len(productIDs), suite.cfg.Generation.MaxItemsPerOrder)

		distinct := make(map[int64]bool)
		for _, pid := range productIDs {
			distinct[pid] = true
		}
		assert.Len(suite.T(), distinct, len(productIDs), "order %d repeats a product", orderID)
	}
}

func (suite *GeneratorTestSuite) TestFreeShippingRule() {
	for _, p := range suite.payments {
		if p.Subtotal >= freeShippingThreshold {
			assert.Zero(suite.T(), p.Shipping, "payment %d should ship free at subtotal %.2f", p.PaymentID, p.Subtotal)
		} else {
			assert.GreaterOrEqual(suite.T(), p.Shipping, 4.99)
			assert.LessOrEqual(suite.T(), p.Shipping, 14.99)
		}
	}
}

func (suite *GeneratorTestSuite) TestProductPricesWithinBand() {
	for _, p := range suite.products {
		var item catalogItem
		found := false
		for _, ci := range productCatalog[p.Category] {
			if ci.Name == p.Name {
				item, found = ci, true
				break
			}
		}
		require.True(suite.T(), found, "product %s not in catalog", p.Name)
		assert.GreaterOrEqual(suite.T(), p.UnitPrice, item.MinPrice)
		assert.LessOrEqual(suite.T(), p.UnitPrice, item.MaxPrice)
		assert.GreaterOrEqual(suite.T(), p.Stock, 50)
		assert.LessOrEqual(suite.T(), p.Stock, 500)
	}
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

// Generated datasets rarely land on the threshold exactly, so drive
// GeneratePayments with crafted line totals on both sides of it.
func TestFreeShippingAtExactThreshold(t *testing.T) {
	ref, _ := time.Parse("2006-01-02", config.DefaultReferenceDate)
	orders := []models.Order{
		{OrderID: 1, CustomerID: 1, OrderDatetime: ref, ShippingState: "CA"},
		{OrderID: 2, CustomerID: 1, OrderDatetime: ref, ShippingState: "CA"},
	}
	details := []models.OrderDetail{
		{OrderDetailID: 1, OrderID: 1, ProductID: 1, Quantity: 1, UnitPrice: 75.00, LineTotal: 75.00},
		{OrderDetailID: 2, OrderID: 2, ProductID: 1, Quantity: 1, UnitPrice: 74.99, LineTotal: 74.99},
	}

	generator, err := NewGeneratorService(testConfig(t.TempDir(), ""))
	require.NoError(t, err)

	payments := generator.GeneratePayments(orders, details)
	require.Len(t, payments, 2)

	atThreshold, below := payments[0], payments[1]
	assert.Equal(t, 75.00, atThreshold.Subtotal)
	assert.Zero(t, atThreshold.Shipping, "a subtotal of exactly $75 ships free")

	assert.Equal(t, 74.99, below.Subtotal)
	assert.GreaterOrEqual(t, below.Shipping, 4.99)
	assert.LessOrEqual(t, below.Shipping, 14.99)
}

func TestGeneratorDeterminism(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		generator, err := NewGeneratorService(testConfig(dir, ""))
		require.NoError(t, err)
		require.NoError(t, generator.Run())
	}

	for _, name := range datasetFiles {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between identical runs", name)
	}
}

func TestGeneratorSeedChangesOutput(t *testing.T) {
	cfg := testConfig(t.TempDir(), "")
	base, err := NewGeneratorService(cfg)
	require.NoError(t, err)

	cfgOther := testConfig(t.TempDir(), "")
	cfgOther.Generation.Seed = 7
	other, err := NewGeneratorService(cfgOther)
	require.NoError(t, err)

	assert.NotEqual(t,
		base.GenerateCustomers(10),
		other.GenerateCustomers(10))
}

func TestNewGeneratorServiceRejectsUnevenSplit(t *testing.T) {
	cfg := testConfig(t.TempDir(), "")
	cfg.Generation.ProductCount = 18

	_, err := NewGeneratorService(cfg)
	var confErr *errs.ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func TestNewGeneratorServiceRejectsOversizedShare(t *testing.T) {
	cfg := testConfig(t.TempDir(), "")
	cfg.Generation.ProductCount = 24 // 6 per category, catalog holds 5

	_, err := NewGeneratorService(cfg)
	var confErr *errs.ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
