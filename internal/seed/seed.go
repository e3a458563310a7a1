package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/sequence"
	"gorm.io/gorm"
)

const samplePrefix = "SAMPLE"

// InsertSamples seeds a few invoices for local development. It only runs
// against an empty register so repeated startups do not pile up samples.
func InsertSamples(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()

	var count int64
	if err := db.WithContext(ctx).Model(&invoicedomain.Invoice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	allocator := sequence.New(db)
	date := time.Now().Format("2006-01-02")

	for i := 0; i < 3; i++ {
		number, err := allocator.Next(ctx, samplePrefix)
		if err != nil {
			return err
		}

		invoiceType := invoicedomain.TypeOutward
		if i%2 != 0 {
			invoiceType = invoicedomain.TypeInward
		}

		inv := invoicedomain.Invoice{
			InvoiceNo: number,
			Date:      date,
			Type:      invoiceType,
			Customer:  fmt.Sprintf("Customer %d", i+1),
			Items:     "Item A x1 - 100\nItem B x2 - 200",
			Total:     300.0,
			Notes:     "Sample invoice created for testing",
		}
		if err := db.WithContext(ctx).Create(&inv).Error; err != nil {
			return err
		}
	}
	return nil
}
