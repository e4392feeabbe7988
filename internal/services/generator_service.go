// internal/services/generator_service.go
package services

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/ecomsynth/internal/config"
	"github.com/javajoker/ecomsynth/internal/errs"
	"github.com/javajoker/ecomsynth/internal/models"
	"github.com/javajoker/ecomsynth/internal/utils"
)

// Orders with a subtotal at or above this amount ship free.
const freeShippingThreshold = 75.0

// GeneratorService synthesizes the five dataset tables from a single
// seeded random stream and serializes them to CSV. All sampling goes
// through s.rng, so identical seed and configuration reproduce
// byte-identical files.
type GeneratorService struct {
	cfg *config.GenerationConfig
	rng *rand.Rand
	log *logrus.Entry
}

func NewGeneratorService(cfg *config.Config) (*GeneratorService, error) {
	gen := &cfg.Generation
	categories := models.AllCategories()

	if gen.ProductCount%len(categories) != 0 {
		return nil, errs.Configurationf(
			"product count %d does not split evenly across %d categories",
			gen.ProductCount, len(categories))
	}
	perCategory := gen.ProductCount / len(categories)
	for _, category := range categories {
		if perCategory > len(productCatalog[category]) {
			return nil, errs.Configurationf(
				"category %s has %d catalog items, cannot produce %d products",
				category, len(productCatalog[category]), perCategory)
		}
	}

	return &GeneratorService{
		cfg: gen,
		rng: rand.New(rand.NewSource(gen.Seed)),
		log: logrus.WithFields(logrus.Fields{
			"component": "generator",
			"run_id":    uuid.NewString(),
			"seed":      gen.Seed,
		}),
	}, nil
}

// Run builds every table in dependency order and writes the five CSV
// files to the configured output directory.
func (s *GeneratorService) Run() error {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	customers := s.GenerateCustomers(s.cfg.CustomerCount)
	products := s.GenerateProducts()
	orders := s.GenerateOrders(customers)
	details := s.GenerateOrderDetails(orders, products)
	payments := s.GeneratePayments(orders, details)

	writes := []struct {
		file    string
		header  []string
		records [][]string
	}{
		{customersFile, customerHeader, customerRecords(customers)},
		{productsFile, productHeader, productRecords(products)},
		{ordersFile, orderHeader, orderRecords(orders)},
		{orderDetailsFile, orderDetailHeader, orderDetailRecords(details)},
		{paymentsFile, paymentHeader, paymentRecords(payments)},
	}
	for _, w := range writes {
		if err := writeCSV(filepath.Join(s.cfg.OutputDir, w.file), w.header, w.records); err != nil {
			return err
		}
	}

	s.log.WithFields(logrus.Fields{
		"customers":     len(customers),
		"products":      len(products),
		"orders":        len(orders),
		"order_details": len(details),
		"payments":      len(payments),
		"output_dir":    s.cfg.OutputDir,
	}).Info("Dataset generated")

	return nil
}

func (s *GeneratorService) GenerateCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, count)
	for id := int64(1); id <= int64(count); id++ {
		name := s.randomName()
		customers = append(customers, models.Customer{
			CustomerID: id,
			Name:       name,
			Email:      s.randomEmail(name),
			Phone:      s.randomPhone(),
			State:      states[s.rng.Intn(len(states))],
			SignupDate: s.cfg.ReferenceDate.AddDate(0, 0, -s.randInt(30, 900)),
		})
	}
	return customers
}

func (s *GeneratorService) GenerateProducts() []models.Product {
	perCategory := s.cfg.ProductCount / len(models.AllCategories())
	products := make([]models.Product, 0, s.cfg.ProductCount)
	id := int64(1)
	for _, category := range models.AllCategories() {
		for _, item := range productCatalog[category][:perCategory] {
			mean := (item.MinPrice + item.MaxPrice) / 2
			stddev := (item.MaxPrice - item.MinPrice) / 6
			price := clamp(s.rng.NormFloat64()*stddev+mean, item.MinPrice, item.MaxPrice)
			products = append(products, models.Product{
				ProductID: id,
				Name:      item.Name,
				Category:  category,
				UnitPrice: utils.RoundCents(price),
				Stock:     s.randInt(50, 500),
			})
			id++
		}
	}
	return products
}

// GenerateOrders draws a Poisson order count per customer (which may be
// zero) and samples each order timestamp between the customer's signup
// date and the reference date. Ids are assigned in customer order; the
// output slice is then sorted chronologically.
func (s *GeneratorService) GenerateOrders(customers []models.Customer) []models.Order {
	var orders []models.Order
	id := int64(1)
	for _, c := range customers {
		for n := s.poisson(s.cfg.AvgOrdersPerCustomer); n > 0; n-- {
			orders = append(orders, models.Order{
				OrderID:       id,
				CustomerID:    c.CustomerID,
				OrderDatetime: s.randomOrderTime(c.SignupDate),
				ShippingState: c.State,
			})
			id++
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderDatetime.Equal(orders[j].OrderDatetime) {
			return orders[i].OrderID < orders[j].OrderID
		}
		return orders[i].OrderDatetime.Before(orders[j].OrderDatetime)
	})
	return orders
}

func (s *GeneratorService) GenerateOrderDetails(orders []models.Order, products []models.Product) []models.OrderDetail {
	var details []models.OrderDetail
	id := int64(1)
	for _, order := range orders {
		itemCount := int(s.rng.NormFloat64() + 2)
		if itemCount < 1 {
			itemCount = 1
		}
		if itemCount > s.cfg.MaxItemsPerOrder {
			itemCount = s.cfg.MaxItemsPerOrder
		}
		if itemCount > len(products) {
			itemCount = len(products)
		}
		for _, idx := range s.rng.Perm(len(products))[:itemCount] {
			product := products[idx]
			quantity := int(s.rng.NormFloat64() + 2)
			if quantity < 1 {
				quantity = 1
			}
			discount := 0.0
			if s.rng.Float64() >= 0.7 {
				discount = utils.RoundCents(s.randFloat(0.05, 0.25))
			}
			details = append(details, models.OrderDetail{
				OrderDetailID: id,
				OrderID:       order.OrderID,
				ProductID:     product.ProductID,
				Quantity:      quantity,
				UnitPrice:     product.UnitPrice,
				Discount:      discount,
				LineTotal:     utils.LineTotal(quantity, product.UnitPrice, discount),
			})
			id++
		}
	}
	return details
}

func (s *GeneratorService) GeneratePayments(orders []models.Order, details []models.OrderDetail) []models.Payment {
	subtotals := make(map[int64]decimal.Decimal, len(orders))
	for _, d := range details {
		subtotals[d.OrderID] = subtotals[d.OrderID].Add(decimal.NewFromFloat(d.LineTotal))
	}

	payments := make([]models.Payment, 0, len(orders))
	id := int64(1)
	for _, order := range orders {
		subtotal, _ := subtotals[order.OrderID].Round(2).Float64()
		tax := utils.RoundCents(subtotal * s.randFloat(0.05, 0.095))
		shipping := 0.0
		if subtotal < freeShippingThreshold {
			shipping = utils.RoundCents(s.randFloat(4.99, 14.99))
		}
		payments = append(payments, models.Payment{
			PaymentID:       id,
			OrderID:         order.OrderID,
			PaymentMethod:   s.randomPaymentMethod(),
			PaymentDatetime: order.OrderDatetime.Add(time.Duration(s.randInt(5, 90)) * time.Minute),
			Subtotal:        subtotal,
			Tax:             tax,
			Shipping:        shipping,
			Total:           utils.RoundCents(subtotal + tax + shipping),
			Currency:        models.CurrencyUSD,
		})
		id++
	}
	return payments
}

// Sampling helpers. Everything draws from the single seeded stream.

func (s *GeneratorService) randInt(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

func (s *GeneratorService) randFloat(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *GeneratorService) randomName() string {
	return firstNames[s.rng.Intn(len(firstNames))] + " " + lastNames[s.rng.Intn(len(lastNames))]
}

func (s *GeneratorService) randomEmail(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	domain := emailDomains[s.rng.Intn(len(emailDomains))]
	suffix := ""
	if s.rng.Float64() >= 0.7 {
		suffix = strconv.Itoa(s.randInt(1, 99))
	}
	return base + suffix + "@" + domain
}

func (s *GeneratorService) randomPhone() string {
	return fmt.Sprintf("+1-%d-%d-%d", s.randInt(200, 999), s.randInt(200, 999), s.randInt(1000, 9999))
}

// randomOrderTime samples a timestamp after signup, weighted toward the
// middle of the customer's tenure, at a store-hours time of day.
func (s *GeneratorService) randomOrderTime(signup time.Time) time.Time {
	days := int(s.cfg.ReferenceDate.Sub(signup).Hours() / 24)
	if days <= 0 {
		days = 1
	}
	delta := int(math.Abs(s.rng.NormFloat64()*float64(days)/3 + float64(days)/2))
	if delta < 1 {
		delta = 1
	}
	if delta > days {
		delta = days
	}
	return signup.AddDate(0, 0, delta).
		Add(time.Duration(s.randInt(8, 21)) * time.Hour).
		Add(time.Duration(s.randInt(0, 59)) * time.Minute)
}

func (s *GeneratorService) randomPaymentMethod() models.PaymentMethod {
	total := 0
	for _, w := range paymentMethodWeights {
		total += w.Weight
	}
	n := s.rng.Intn(total)
	for _, w := range paymentMethodWeights {
		if n < w.Weight {
			return w.Method
		}
		n -= w.Weight
	}
	return paymentMethodWeights[0].Method
}

// poisson samples via Knuth's multiplication method; fine for small means.
func (s *GeneratorService) poisson(lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// CSV record builders.

func customerRecords(customers []models.Customer) [][]string {
	records := make([][]string, 0, len(customers))
	for _, c := range customers {
		records = append(records, []string{
			strconv.FormatInt(c.CustomerID, 10),
			c.Name,
			c.Email,
			c.Phone,
			c.State,
			c.SignupDate.Format(models.DateFormat),
		})
	}
	return records
}

func productRecords(products []models.Product) [][]string {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			strconv.FormatInt(p.ProductID, 10),
			p.Name,
			string(p.Category),
			utils.FormatAmount(p.UnitPrice),
			strconv.Itoa(p.Stock),
		})
	}
	return records
}

func orderRecords(orders []models.Order) [][]string {
	records := make([][]string, 0, len(orders))
	for _, o := range orders {
		records = append(records, []string{
			strconv.FormatInt(o.OrderID, 10),
			strconv.FormatInt(o.CustomerID, 10),
			o.OrderDatetime.Format(models.DateTimeFormat),
			o.ShippingState,
		})
	}
	return records
}

func orderDetailRecords(details []models.OrderDetail) [][]string {
	records := make([][]string, 0, len(details))
	for _, d := range details {
		records = append(records, []string{
			strconv.FormatInt(d.OrderDetailID, 10),
			strconv.FormatInt(d.OrderID, 10),
			strconv.FormatInt(d.ProductID, 10),
			strconv.Itoa(d.Quantity),
			utils.FormatAmount(d.UnitPrice),
			utils.FormatAmount(d.Discount),
			utils.FormatAmount(d.LineTotal),
		})
	}
	return records
}

func paymentRecords(payments []models.Payment) [][]string {
	records := make([][]string, 0, len(payments))
	for _, p := range payments {
		records = append(records, []string{
			strconv.FormatInt(p.PaymentID, 10),
			strconv.FormatInt(p.OrderID, 10),
			string(p.PaymentMethod),
			p.PaymentDatetime.Format(models.DateTimeFormat),
			utils.FormatAmount(p.Subtotal),
			utils.FormatAmount(p.Tax),
			utils.FormatAmount(p.Shipping),
			utils.FormatAmount(p.Total),
			p.Currency,
		})
	}
	return records
}
