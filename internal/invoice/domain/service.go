package domain

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// SaveInvoiceRequest carries every caller-supplied invoice field for both
// create and update.
type SaveInvoiceRequest struct {
	// InvoiceNo may be left empty on create; the service then allocates
	// the next number with the configured prefix.
	InvoiceNo string  `json:"invoice_no"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Customer  string  `json:"customer"`
	Items     string  `json:"items"`
	Total     float64 `json:"total"`
	Notes     string  `json:"notes"`
}

// Validate enforces the save-time invariants: invoice_no (unless allocation
// is requested), date, type and customer must be non-empty. The storage
// layer does not re-check these.
func (r SaveInvoiceRequest) Validate(allowEmptyNumber bool) error {
	if !allowEmptyNumber && strings.TrimSpace(r.InvoiceNo) == "" {
		return requiredError("invoice_no")
	}
	if strings.TrimSpace(r.Date) == "" {
		return requiredError("date")
	}
	if strings.TrimSpace(r.Type) == "" {
		return requiredError("type")
	}
	if strings.TrimSpace(r.Customer) == "" {
		return requiredError("customer")
	}
	return nil
}

// ParseTotal converts a user-entered total to a number. A blank string is
// zero; anything unparseable is a validation error.
func ParseTotal(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	total, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: "total", Message: "must be a number"}
	}
	return total, nil
}

// Service is the storage-facing surface the presentation layer talks to.
// Every call is synchronous; failures are terminal for the single operation
// that caused them.
type Service interface {
	Create(ctx context.Context, req SaveInvoiceRequest) (Invoice, error)
	Update(ctx context.Context, id int64, req SaveInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (Invoice, error)
	List(ctx context.Context, filter ListFilter) ([]InvoiceSummary, error)
	// ExportCSV writes the full rows matching filter to w, newest date
	// first, in the fixed column order id, invoice_no, date, type,
	// customer, items, total, notes.
	ExportCSV(ctx context.Context, filter ListFilter, w io.Writer) error
	// RenderPDF produces one printable document for the invoice and
	// returns the path of the written file.
	RenderPDF(ctx context.Context, id int64) (string, error)
	// NextInvoiceNo allocates the next invoice number under prefix.
	NextInvoiceNo(ctx context.Context, prefix string) (string, error)
}
