package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/smallbiznis/invoicedesk/internal/config"
	invoicedomain "github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/export"
	"github.com/smallbiznis/invoicedesk/internal/invoice/sequence"
	"github.com/smallbiznis/invoicedesk/internal/providers/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	Cfg       config.Config
	DB        *gorm.DB
	Log       *zap.Logger
	Repo      invoicedomain.Repository
	Allocator *sequence.Allocator
	PDF       pdf.Provider
}

type Service struct {
	cfg       config.Config
	db        *gorm.DB
	log       *zap.Logger
	repo      invoicedomain.Repository
	allocator *sequence.Allocator
	pdf       pdf.Provider
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		cfg:       p.Cfg,
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		repo:      p.Repo,
		allocator: p.Allocator,
		pdf:       p.PDF,
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.SaveInvoiceRequest) (invoicedomain.Invoice, error) {
	if err := req.Validate(true); err != nil {
		return invoicedomain.Invoice{}, err
	}

	number := strings.TrimSpace(req.InvoiceNo)
	if number == "" {
		allocated, err := s.allocator.Next(ctx, s.cfg.InvoicePrefix)
		if err != nil {
			return invoicedomain.Invoice{}, err
		}
		number = allocated
	}

	inv := invoiceFromRequest(req)
	inv.InvoiceNo = number
	if err := s.repo.Insert(ctx, s.db, &inv); err != nil {
		return invoicedomain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.Int64("id", inv.ID),
		zap.String("invoice_no", inv.InvoiceNo),
	)
	return inv, nil
}

func (s *Service) Update(ctx context.Context, id int64, req invoicedomain.SaveInvoiceRequest) (invoicedomain.Invoice, error) {
	if err := req.Validate(false); err != nil {
		return invoicedomain.Invoice{}, err
	}

	inv := invoiceFromRequest(req)
	inv.ID = id
	inv.InvoiceNo = strings.TrimSpace(req.InvoiceNo)

	affected, err := s.repo.Update(ctx, s.db, &inv)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if affected == 0 {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Get(ctx context.Context, id int64) (invoicedomain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if inv == nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}
	return *inv, nil
}

func (s *Service) List(ctx context.Context, filter invoicedomain.ListFilter) ([]invoicedomain.InvoiceSummary, error) {
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) ExportCSV(ctx context.Context, filter invoicedomain.ListFilter, w io.Writer) error {
	invoices, err := s.repo.FindAll(ctx, s.db, filter)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, invoices)
}

func (s *Service) RenderPDF(ctx context.Context, id int64) (string, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	doc, err := s.pdf.RenderInvoice(ctx, inv)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(doc)
	if err != nil {
		return "", fmt.Errorf("read rendered document: %w", err)
	}

	path := filepath.Join(s.cfg.PDFOutDir, safeFileName(inv.InvoiceNo)+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	s.log.Info("invoice rendered",
		zap.Int64("id", inv.ID),
		zap.String("path", path),
	)
	return path, nil
}

func (s *Service) NextInvoiceNo(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = s.cfg.InvoicePrefix
	}
	return s.allocator.Next(ctx, prefix)
}

func invoiceFromRequest(req invoicedomain.SaveInvoiceRequest) invoicedomain.Invoice {
	return invoicedomain.Invoice{
		InvoiceNo: strings.TrimSpace(req.InvoiceNo),
		Date:      strings.TrimSpace(req.Date),
		Type:      strings.TrimSpace(req.Type),
		Customer:  strings.TrimSpace(req.Customer),
		Items:     req.Items,
		Total:     req.Total,
		Notes:     req.Notes,
	}
}

func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
