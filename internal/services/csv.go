// internal/services/csv.go
package services

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Dataset file names, one per entity.
const (
	customersFile    = "customers.csv"
	productsFile     = "products.csv"
	ordersFile       = "orders.csv"
	orderDetailsFile = "order_details.csv"
	paymentsFile     = "payments.csv"
)

var datasetFiles = []string{
	customersFile,
	productsFile,
	ordersFile,
	orderDetailsFile,
	paymentsFile,
}

var (
	customerHeader    = []string{"customer_id", "name", "email", "phone", "state", "signup_date"}
	productHeader     = []string{"product_id", "name", "category", "unit_price", "stock"}
	orderHeader       = []string{"order_id", "customer_id", "order_datetime", "shipping_state"}
	orderDetailHeader = []string{"order_detail_id", "order_id", "product_id", "quantity", "unit_price", "discount", "line_total"}
	paymentHeader     = []string{"payment_id", "order_id", "payment_method", "payment_datetime", "subtotal", "tax", "shipping", "total", "currency"}
)

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	return nil
}

// readCSV reads a dataset file and verifies its header row matches the
// expected schema before returning the data records.
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}
	for i, col := range rows[0] {
		if col != header[i] {
			return nil, fmt.Errorf("%s: unexpected column %q, want %q", path, col, header[i])
		}
	}
	return rows[1:], nil
}
