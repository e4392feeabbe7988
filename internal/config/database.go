// internal/config/database.go
package config

import (
	"fmt"
)

// DSN enables SQLite foreign-key enforcement for every connection; the
// loader additionally drops and recreates the schema on each run.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_fk=1", d.Path)
}
