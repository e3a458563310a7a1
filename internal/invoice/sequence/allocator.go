// Package sequence allocates monotonically increasing invoice numbers
// backed by the meta table.
package sequence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"gorm.io/gorm"
)

// Allocator produces invoice numbers from a single durable counter.
//
// The counter is global, not per prefix: two prefixes share one lineage, so
// numbers are unique overall but do not restart per prefix. The
// read-increment-write runs in one transaction for single-statement
// durability; it assumes a single writer and is not safe under concurrent
// processes.
type Allocator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Allocator {
	return &Allocator{db: db}
}

// Next increments the last_invoice counter by exactly one and returns the
// formatted number for prefix.
func (a *Allocator) Next(ctx context.Context, prefix string) (string, error) {
	var value int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter domain.SequenceCounter
		if err := tx.Where("k = ?", domain.CounterLastInvoice).First(&counter).Error; err != nil {
			return fmt.Errorf("read sequence counter: %w", err)
		}

		last, err := strconv.ParseInt(counter.V, 10, 64)
		if err != nil {
			return fmt.Errorf("corrupt sequence counter %q: %w", counter.V, err)
		}

		value = last + 1
		return tx.Model(&domain.SequenceCounter{}).
			Where("k = ?", domain.CounterLastInvoice).
			Update("v", strconv.FormatInt(value, 10)).Error
	})
	if err != nil {
		return "", err
	}
	return Format(prefix, value), nil
}

// Format renders an invoice number as PREFIX-NNNNN, zero-padded to five
// digits and unbounded above 99999.
func Format(prefix string, value int64) string {
	return fmt.Sprintf("%s-%05d", prefix, value)
}
