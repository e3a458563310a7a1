package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) RenderInvoice(ctx context.Context, inv domain.Invoice) (io.Reader, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "INVOICE: "+inv.InvoiceNo, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Metadata line
	m.AddRow(8,
		text.NewCol(6, "Date: "+inv.Date, props.Text{Size: 10}),
		text.NewCol(6, "Type: "+inv.Type, props.Text{Size: 10}),
	)
	m.AddRow(8,
		text.NewCol(12, "Customer: "+inv.Customer, props.Text{Size: 10}),
	)

	m.AddRow(8,
		text.NewCol(12, "Items:", props.Text{Size: 12, Style: fontstyle.Bold}),
	)
	for _, item := range splitLines(inv.Items) {
		m.AddRow(6,
			text.NewCol(12, "- "+item, props.Text{Size: 10, Left: 4}),
		)
	}

	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Total: %.2f", inv.Total), props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		}),
	)

	if inv.Notes != "" {
		m.AddRow(6,
			text.NewCol(12, "Notes:", props.Text{Size: 9}),
		)
		for _, line := range splitLines(inv.Notes) {
			m.AddRow(5,
				text.NewCol(12, line, props.Text{Size: 9, Left: 3}),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}
