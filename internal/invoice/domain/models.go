// Package domain contains persistence models for the invoice register.
package domain

// InvoiceType tags the direction of an invoice.
type InvoiceType = string

const (
	TypeInward  InvoiceType = "Inward"
	TypeOutward InvoiceType = "Outward"
)

// Invoice is a billing record for goods or services exchanged with a
// customer. Items and Notes are free text, one conceptual entry per line.
type Invoice struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNo string  `gorm:"type:text;uniqueIndex:ux_invoices_invoice_no" json:"invoice_no"`
	Date      string  `gorm:"type:text" json:"date"`
	Type      string  `gorm:"type:text" json:"type"`
	Customer  string  `gorm:"type:text" json:"customer"`
	Items     string  `gorm:"type:text" json:"items"`
	Total     float64 `gorm:"type:real" json:"total"`
	Notes     string  `gorm:"type:text" json:"notes"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceSummary is the listing projection of an invoice.
type InvoiceSummary struct {
	ID        int64   `json:"id"`
	InvoiceNo string  `json:"invoice_no"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Customer  string  `json:"customer"`
	Total     float64 `json:"total"`
}

// SequenceCounter stores the last value for named monotonic counters in the
// meta table. The well-known key is CounterLastInvoice.
type SequenceCounter struct {
	K string `gorm:"primaryKey;column:k;type:text"`
	V string `gorm:"column:v;type:text"`
}

// TableName sets the database table name.
func (SequenceCounter) TableName() string { return "meta" }

// CounterLastInvoice is the meta key holding the last allocated invoice
// sequence value.
const CounterLastInvoice = "last_invoice"

// ListFilter narrows a listing query. Empty fields impose no constraint;
// active constraints are combined with AND.
type ListFilter struct {
	// Type matches exactly when set.
	Type string `form:"type"`
	// Customer and InvoiceNo match as substrings.
	Customer  string `form:"customer"`
	InvoiceNo string `form:"invoice_no"`
	// DateFrom and DateTo are inclusive YYYY-MM-DD bounds.
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}
