// Package export serializes invoice rows to and from delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

// Header is the fixed column order of an export file.
var Header = []string{"id", "invoice_no", "date", "type", "customer", "items", "total", "notes"}

// WriteCSV writes a header row followed by one record per invoice.
// Multi-line items and notes are quoted by the writer so a re-parse
// reconstructs them exactly.
func WriteCSV(w io.Writer, invoices []domain.Invoice) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, inv := range invoices {
		record := []string{
			strconv.FormatInt(inv.ID, 10),
			inv.InvoiceNo,
			inv.Date,
			inv.Type,
			inv.Customer,
			inv.Items,
			strconv.FormatFloat(inv.Total, 'g', -1, 64),
			inv.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write invoice %s: %w", inv.InvoiceNo, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an export file back into full invoice rows. The header row
// is required and must match Header.
func ReadCSV(r io.Reader) ([]domain.Invoice, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv header column %q, want %q", header[i], col)
		}
	}

	var invoices []domain.Invoice
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", record[0], err)
		}
		total, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("parse total %q: %w", record[6], err)
		}

		invoices = append(invoices, domain.Invoice{
			ID:        id,
			InvoiceNo: record[1],
			Date:      record[2],
			Type:      record[3],
			Customer:  record[4],
			Items:     record[5],
			Total:     total,
			Notes:     record[7],
		})
	}
	return invoices, nil
}
