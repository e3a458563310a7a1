package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invoice{}))
	return db
}

func seedInvoices(t *testing.T, db *gorm.DB, invoices ...domain.Invoice) {
	t.Helper()
	for i := range invoices {
		require.NoError(t, db.Create(&invoices[i]).Error)
	}
}

func TestInsertAndFindByID_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	inv := domain.Invoice{
		InvoiceNo: "INV-00001",
		Date:      "2024-01-10",
		Type:      domain.TypeOutward,
		Customer:  "Acme",
		Items:     "Widget x2 - 50",
		Total:     50.0,
		Notes:     "",
	}
	require.NoError(t, repo.Insert(ctx, db, &inv))
	require.NotZero(t, inv.ID)

	got, err := repo.FindByID(ctx, db, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, inv, *got)
}

func TestInsert_DuplicateInvoiceNumber(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	first := domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 50}
	require.NoError(t, repo.Insert(ctx, db, &first))

	second := domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-02-01", Type: domain.TypeInward, Customer: "Globex", Total: 10}
	err := repo.Insert(ctx, db, &second)
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)

	// The first record is untouched and still retrievable.
	got, err := repo.FindByID(ctx, db, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Customer)
	assert.Equal(t, "2024-01-10", got.Date)
}

func TestFindByID_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()

	got, err := repo.FindByID(context.Background(), db, 4242)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_ReportsAffectedRows(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	inv := domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 50}
	require.NoError(t, repo.Insert(ctx, db, &inv))

	inv.Customer = "Acme Ltd"
	inv.Total = 75.5
	affected, err := repo.Update(ctx, db, &inv)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(ctx, db, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", got.Customer)
	assert.Equal(t, 75.5, got.Total)

	missing := domain.Invoice{ID: 999, InvoiceNo: "INV-09999", Date: "2024-01-10", Type: domain.TypeInward, Customer: "Nobody"}
	affected, err = repo.Update(ctx, db, &missing)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDelete_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	inv := domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 50}
	require.NoError(t, repo.Insert(ctx, db, &inv))

	require.NoError(t, repo.Delete(ctx, db, inv.ID))
	got, err := repo.FindByID(ctx, db, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent id does not raise and does not change the row count.
	require.NoError(t, repo.Delete(ctx, db, inv.ID))
	require.NoError(t, repo.Delete(ctx, db, 4242))

	var count int64
	require.NoError(t, db.Model(&domain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestList_FilterByType(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 50},
		domain.Invoice{InvoiceNo: "INV-00002", Date: "2024-01-11", Type: domain.TypeInward, Customer: "Globex", Total: 20},
		domain.Invoice{InvoiceNo: "INV-00003", Date: "2024-01-12", Type: domain.TypeOutward, Customer: "Initech", Total: 30},
	)

	outward, err := repo.List(ctx, db, domain.ListFilter{Type: domain.TypeOutward})
	require.NoError(t, err)
	require.Len(t, outward, 2)
	for _, s := range outward {
		assert.Equal(t, domain.TypeOutward, s.Type)
	}

	inward, err := repo.List(ctx, db, domain.ListFilter{Type: domain.TypeInward})
	require.NoError(t, err)
	require.Len(t, inward, 1)
	assert.Equal(t, "INV-00002", inward[0].InvoiceNo)
}

func TestList_FilterBySubstrings(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme Industries", Total: 50},
		domain.Invoice{InvoiceNo: "INV-00002", Date: "2024-01-11", Type: domain.TypeInward, Customer: "Globex", Total: 20},
		domain.Invoice{InvoiceNo: "CRN-00003", Date: "2024-01-12", Type: domain.TypeOutward, Customer: "Acme Ltd", Total: 30},
	)

	byCustomer, err := repo.List(ctx, db, domain.ListFilter{Customer: "Acme"})
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)

	byNumber, err := repo.List(ctx, db, domain.ListFilter{InvoiceNo: "CRN"})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "CRN-00003", byNumber[0].InvoiceNo)

	// A LIKE metacharacter in the term matches literally, not as a wildcard.
	none, err := repo.List(ctx, db, domain.ListFilter{Customer: "%"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_DateRange(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-05", Type: domain.TypeOutward, Customer: "Acme", Total: 10},
		domain.Invoice{InvoiceNo: "INV-00002", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 20},
		domain.Invoice{InvoiceNo: "INV-00003", Date: "2024-01-15", Type: domain.TypeOutward, Customer: "Acme", Total: 30},
	)

	// Bounds are inclusive on both sides.
	within, err := repo.List(ctx, db, domain.ListFilter{DateFrom: "2024-01-05", DateTo: "2024-01-10"})
	require.NoError(t, err)
	require.Len(t, within, 2)

	lower, err := repo.List(ctx, db, domain.ListFilter{DateFrom: "2024-01-11"})
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "INV-00003", lower[0].InvoiceNo)

	// An inverted range selects nothing.
	empty, err := repo.List(ctx, db, domain.ListFilter{DateFrom: "2024-01-15", DateTo: "2024-01-05"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestList_OrderNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-05", Type: domain.TypeOutward, Customer: "Acme", Total: 10},
		domain.Invoice{InvoiceNo: "INV-00002", Date: "2024-01-15", Type: domain.TypeOutward, Customer: "Acme", Total: 20},
		domain.Invoice{InvoiceNo: "INV-00003", Date: "2024-01-15", Type: domain.TypeOutward, Customer: "Acme", Total: 30},
	)

	summaries, err := repo.List(ctx, db, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Newest date first; same-date ties break on id descending.
	assert.Equal(t, "INV-00003", summaries[0].InvoiceNo)
	assert.Equal(t, "INV-00002", summaries[1].InvoiceNo)
	assert.Equal(t, "INV-00001", summaries[2].InvoiceNo)
}

func TestList_CombinedFilters(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Total: 10},
		domain.Invoice{InvoiceNo: "INV-00002", Date: "2024-01-10", Type: domain.TypeInward, Customer: "Acme", Total: 20},
		domain.Invoice{InvoiceNo: "INV-00003", Date: "2024-02-01", Type: domain.TypeOutward, Customer: "Acme", Total: 30},
	)

	got, err := repo.List(ctx, db, domain.ListFilter{
		Type:     domain.TypeOutward,
		Customer: "Acme",
		DateTo:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-00001", got[0].InvoiceNo)
}

func TestFindAll_ReturnsFullRows(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	seedInvoices(t, db,
		domain.Invoice{InvoiceNo: "INV-00001", Date: "2024-01-10", Type: domain.TypeOutward, Customer: "Acme", Items: "A\nB", Total: 10, Notes: "n1\nn2"},
	)

	rows, err := repo.FindAll(ctx, db, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A\nB", rows[0].Items)
	assert.Equal(t, "n1\nn2", rows[0].Notes)
}
