package pdf

import (
	"context"
	"io"

	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"go.uber.org/fx"
)

// Provider turns one full invoice row into a paginated printable document.
type Provider interface {
	RenderInvoice(ctx context.Context, inv domain.Invoice) (io.Reader, error)
}

// UnavailableProvider is selected at startup when the rendering capability
// is disabled; every call fails fast with no fallback rendering.
type UnavailableProvider struct{}

func (p *UnavailableProvider) RenderInvoice(ctx context.Context, inv domain.Invoice) (io.Reader, error) {
	return nil, domain.ErrRendererUnavailable
}

// Provide selects the provider variant once, from configuration.
func Provide(cfg config.Config) Provider {
	if !cfg.PDFEnabled {
		return &UnavailableProvider{}
	}
	return New()
}

var Module = fx.Module("providers.pdf",
	fx.Provide(Provide),
)
