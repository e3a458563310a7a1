package repository

import (
	"context"
	"strings"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, inv *domain.Invoice) error {
	err := conn.WithContext(ctx).Create(inv).Error
	if db.IsDuplicateKeyErr(err) {
		return domain.ErrDuplicateInvoiceNumber
	}
	return err
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, inv *domain.Invoice) (int64, error) {
	result := conn.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"invoice_no": inv.InvoiceNo,
			"date":       inv.Date,
			"type":       inv.Type,
			"customer":   inv.Customer,
			"items":      inv.Items,
			"total":      inv.Total,
			"notes":      inv.Notes,
		})
	if db.IsDuplicateKeyErr(result.Error) {
		return 0, domain.ErrDuplicateInvoiceNumber
	}
	return result.RowsAffected, result.Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id int64) error {
	return conn.WithContext(ctx).Delete(&domain.Invoice{}, id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := conn.WithContext(ctx).Raw(
		`SELECT id, invoice_no, date, type, customer, items, total, notes
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&inv).Error
	if err != nil {
		return nil, err
	}
	if inv.ID == 0 {
		return nil, nil
	}
	return &inv, nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListFilter) ([]domain.InvoiceSummary, error) {
	var summaries []domain.InvoiceSummary
	err := applyFilter(conn.WithContext(ctx).Model(&domain.Invoice{}), filter).
		Select("id", "invoice_no", "date", "type", "customer", "total").
		Order("date(date) desc, id desc").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repo) FindAll(ctx context.Context, conn *gorm.DB, filter domain.ListFilter) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := applyFilter(conn.WithContext(ctx).Model(&domain.Invoice{}), filter).
		Order("date(date) desc, id desc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// applyFilter ANDs the active criteria onto stmt. All values travel as bind
// parameters; substring terms additionally have LIKE metacharacters escaped.
func applyFilter(stmt *gorm.DB, filter domain.ListFilter) *gorm.DB {
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if filter.Customer != "" {
		stmt = stmt.Where(`customer LIKE ? ESCAPE '\'`, "%"+escapeLike(filter.Customer)+"%")
	}
	if filter.InvoiceNo != "" {
		stmt = stmt.Where(`invoice_no LIKE ? ESCAPE '\'`, "%"+escapeLike(filter.InvoiceNo)+"%")
	}
	if filter.DateFrom != "" {
		stmt = stmt.Where("date(date) >= date(?)", filter.DateFrom)
	}
	if filter.DateTo != "" {
		stmt = stmt.Where("date(date) <= date(?)", filter.DateTo)
	}
	return stmt
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
