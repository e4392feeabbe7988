// internal/services/ingest_service.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/ecomsynth/internal/config"
	"github.com/javajoker/ecomsynth/internal/database"
	"github.com/javajoker/ecomsynth/internal/errs"
	"github.com/javajoker/ecomsynth/internal/models"
)

const insertBatchSize = 500

// IngestService loads the generated CSV files into the relational schema.
// Tables are dropped and recreated on every run, so re-running fully
// replaces the database. Foreign-key violations are surfaced, never
// dropped.
type IngestService struct {
	db  *gorm.DB
	cfg *config.Config
	log *logrus.Entry
}

func NewIngestService(db *gorm.DB, cfg *config.Config) *IngestService {
	return &IngestService{
		db:  db,
		cfg: cfg,
		log: logrus.WithField("component", "ingest"),
	}
}

func (s *IngestService) Run() error {
	dir := s.cfg.Generation.OutputDir
	for _, name := range datasetFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return &errs.MissingInputError{Path: path}
		} else if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	if err := database.ResetSchema(s.db); err != nil {
		return err
	}

	// Parents before children so foreign keys resolve at insert time.
	loads := []struct {
		table string
		load  func(string) (int, error)
	}{
		{"customers", s.loadCustomers},
		{"products", s.loadProducts},
		{"orders", s.loadOrders},
		{"order_details", s.loadOrderDetails},
		{"payments", s.loadPayments},
	}
	for _, l := range loads {
		count, err := l.load(dir)
		if err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"table": l.table, "rows": count}).Info("Table loaded")
	}
	return nil
}

func (s *IngestService) loadCustomers(dir string) (int, error) {
	rows, err := readCSV(filepath.Join(dir, customersFile), customerHeader)
	if err != nil {
		return 0, err
	}
	customers := make([]models.Customer, 0, len(rows))
	for _, r := range rows {
		id, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("customers: bad customer_id %q: %w", r[0], err)
		}
		signup, err := time.Parse(models.DateFormat, r[5])
		if err != nil {
			return 0, fmt.Errorf("customers: bad signup_date %q: %w", r[5], err)
		}
		customers = append(customers, models.Customer{
			CustomerID: id,
			Name:       r[1],
			Email:      r[2],
			Phone:      r[3],
			State:      r[4],
			SignupDate: signup,
		})
	}
	return len(customers), s.insert("customers", customers)
}

func (s *IngestService) loadProducts(dir string) (int, error) {
	rows, err := readCSV(filepath.Join(dir, productsFile), productHeader)
	if err != nil {
		return 0, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		id, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("products: bad product_id %q: %w", r[0], err)
		}
		price, err := strconv.ParseFloat(r[3], 64)
		if err != nil {
			return 0, fmt.Errorf("products: bad unit_price %q: %w", r[3], err)
		}
		stock, err := strconv.Atoi(r[4])
		if err != nil {
			return 0, fmt.Errorf("products: bad stock %q: %w", r[4], err)
		}
		products = append(products, models.Product{
			ProductID: id,
			Name:      r[1],
			Category:  models.ProductCategory(r[2]),
			UnitPrice: price,
			Stock:     stock,
		})
	}
	return len(products), s.insert("products", products)
}

func (s *IngestService) loadOrders(dir string) (int, error) {
	rows, err := readCSV(filepath.Join(dir, ordersFile), orderHeader)
	if err != nil {
		return 0, err
	}
	orders := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		id, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("orders: bad order_id %q: %w", r[0], err)
		}
		customerID, err := strconv.ParseInt(r[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("orders: bad customer_id %q: %w", r[1], err)
		}
		placedAt, err := parseDatetime(r[2])
		if err != nil {
			return 0, fmt.Errorf("orders: bad order_datetime %q: %w", r[2], err)
		}
		orders = append(orders, models.Order{
			OrderID:       id,
			CustomerID:    customerID,
			OrderDatetime: placedAt,
			ShippingState: r[3],
		})
	}
	return len(orders), s.insert("orders", orders)
}

func (s *IngestService) loadOrderDetails(dir string) (int, error) {
	rows, err := readCSV(filepath.Join(dir, orderDetailsFile), orderDetailHeader)
	if err != nil {
		return 0, err
	}
	details := make([]models.OrderDetail, 0, len(rows))
	for _, r := range rows {
		ints := make([]int64, 3)
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseInt(r[i], 10, 64)
			if err != nil {
				return 0, fmt.Errorf("order_details: bad %s %q: %w", orderDetailHeader[i], r[i], err)
			}
			ints[i] = v
		}
		quantity, err := strconv.Atoi(r[3])
		if err != nil {
			return 0, fmt.Errorf("order_details: bad quantity %q: %w", r[3], err)
		}
		floats := make([]float64, 3)
		for i, col := range []int{4, 5, 6} {
			v, err := strconv.ParseFloat(r[col], 64)
			if err != nil {
				return 0, fmt.Errorf("order_details: bad %s %q: %w", orderDetailHeader[col], r[col], err)
			}
			floats[i] = v
		}
		details = append(details, models.OrderDetail{
			OrderDetailID: ints[0],
			OrderID:       ints[1],
			ProductID:     ints[2],
			Quantity:      quantity,
			UnitPrice:     floats[0],
			Discount:      floats[1],
			LineTotal:     floats[2],
		})
	}
	return len(details), s.insert("order_details", details)
}

func (s *IngestService) loadPayments(dir string) (int, error) {
	rows, err := readCSV(filepath.Join(dir, paymentsFile), paymentHeader)
	if err != nil {
		return 0, err
	}
	payments := make([]models.Payment, 0, len(rows))
	for _, r := range rows {
		id, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("payments: bad payment_id %q: %w", r[0], err)
		}
		orderID, err := strconv.ParseInt(r[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("payments: bad order_id %q: %w", r[1], err)
		}
		paidAt, err := parseDatetime(r[3])
		if err != nil {
			return 0, fmt.Errorf("payments: bad payment_datetime %q: %w", r[3], err)
		}
		floats := make([]float64, 4)
		for i, col := range []int{4, 5, 6, 7} {
			v, err := strconv.ParseFloat(r[col], 64)
			if err != nil {
				return 0, fmt.Errorf("payments: bad %s %q: %w", paymentHeader[col], r[col], err)
			}
			floats[i] = v
		}
		payments = append(payments, models.Payment{
			PaymentID:       id,
			OrderID:         orderID,
			PaymentMethod:   models.PaymentMethod(r[2]),
			PaymentDatetime: paidAt,
			Subtotal:        floats[0],
			Tax:             floats[1],
			Shipping:        floats[2],
			Total:           floats[3],
			Currency:        r[8],
		})
	}
	return len(payments), s.insert("payments", payments)
}

func (s *IngestService) insert(table string, rows interface{}) error {
	if err := s.db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return &errs.IntegrityError{Table: table, Err: err}
	}
	return nil
}

// parseDatetime normalizes a CSV timestamp, accepting ISO 8601 with
// either a "T" or a space separator.
func parseDatetime(value string) (time.Time, error) {
	t, err := time.Parse(models.DateTimeFormat, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
