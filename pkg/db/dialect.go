package db

import (
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"gorm.io/gorm"
)

// Dialect returns the sqlite dialector for the configured database file.
// The store is a single local file; there is no server-backed variant.
func Dialect(cfg config.Config) gorm.Dialector {
	return sqlite.Open(cfg.DBPath)
}
