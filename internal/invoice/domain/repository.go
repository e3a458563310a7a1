package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository owns all reads and writes of invoice rows. Every mutating
// operation commits immediately; there are no multi-call transaction
// boundaries.
type Repository interface {
	// Insert persists a new invoice and fills in the assigned id. A
	// colliding invoice number yields ErrDuplicateInvoiceNumber.
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	// Update rewrites every mutable field of the row with inv.ID and
	// reports the number of affected rows (zero when the id is gone).
	Update(ctx context.Context, db *gorm.DB, inv *Invoice) (int64, error)
	// Delete removes the row if present. Absent ids are a no-op.
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	// FindByID returns nil when the id does not exist.
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]InvoiceSummary, error)
	// FindAll returns full rows for export, same predicate and order as List.
	FindAll(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Invoice, error)
}
