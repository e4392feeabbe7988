// internal/services/report_service.go
package services

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/ecomsynth/internal/errs"
	"github.com/javajoker/ecomsynth/internal/utils"
)

// CustomerSpend is one row of the top-spenders aggregation.
type CustomerSpend struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalSpend   float64 `json:"total_spend"`
}

// Grouping is by customer id so namesake customers never merge; ties on
// spend break by ascending customer id for a stable order. The products
// join is intentionally absent: order_details carries the historical
// unit price.
const topSpendersSQL = `
SELECT
    c.customer_id AS customer_id,
    c.name AS customer_name,
    SUM(od.quantity * od.unit_price) AS total_spend
FROM customers c
JOIN orders o ON o.customer_id = c.customer_id
JOIN order_details od ON od.order_id = o.order_id
GROUP BY c.customer_id, c.name
ORDER BY total_spend DESC, c.customer_id ASC
LIMIT ?`

type ReportService struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		db:  db,
		log: logrus.WithField("component", "report"),
	}
}

// TopSpenders returns up to n customers by total spend, descending.
// Customers without orders never appear. An empty result is not an error.
func (s *ReportService) TopSpenders(n int) ([]CustomerSpend, error) {
	var rows []CustomerSpend
	if err := s.db.Raw(topSpendersSQL, n).Scan(&rows).Error; err != nil {
		return nil, &errs.QueryError{Err: err}
	}
	s.log.WithField("rows", len(rows)).Info("Top spenders computed")
	return rows, nil
}

// WriteTable renders the result as an aligned two-column table.
func (s *ReportService) WriteTable(w io.Writer, rows []CustomerSpend) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No spending recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "customer_name\ttotal_spend")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.CustomerName, utils.FormatAmount(r.TotalSpend))
	}
	return tw.Flush()
}
