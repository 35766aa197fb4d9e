package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/metrics"
)

// InvoiceUseCase lists, renders and settles invoices.
type InvoiceUseCase struct {
	repo     port.InvoiceRepository
	renderer port.InvoiceRenderer
	logger   *slog.Logger
}

// NewInvoiceUseCase creates the invoice service.
func NewInvoiceUseCase(repo port.InvoiceRepository, renderer port.InvoiceRenderer, logger *slog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, renderer: renderer, logger: logger}
}

// List returns the invoices of the bookings visible to the caller.
func (u *InvoiceUseCase) List(ctx context.Context, id domain.Identity) ([]domain.Invoice, error) {
	invoices, err := u.repo.ListInvoices(ctx, domain.ScopeFor(id))
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

// Download renders the invoice for a party of its booking.
func (u *InvoiceUseCase) Download(ctx context.Context, id domain.Identity, invoiceID int64) (*port.Document, error) {
	inv, booking, err := u.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err = domain.AuthorizeBooking(id, *booking); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = u.renderer.Render(&buf, *inv); err != nil {
		return nil, fmt.Errorf("render invoice %d: %w", inv.ID, err)
	}
	return &port.Document{
		Filename:    inv.InvoiceNumber + ".pdf",
		ContentType: u.renderer.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// MarkPaid settles an invoice. Only the booking's owner (or an admin) may
// confirm payment. Settling a paid invoice is a no-op.
func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id domain.Identity, invoiceID int64) (*domain.Invoice, error) {
	inv, booking, err := u.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err = domain.Authorize(id, booking.OwnerID); err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoicePaid {
		return inv, nil
	}

	paid, err := u.repo.MarkInvoicePaid(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if paid == nil {
		return nil, domain.NotFound("Not found")
	}
	metrics.InvoicesPaid.Inc()
	u.logger.Info("invoice paid", slog.String("invoice", paid.InvoiceNumber), slog.Float64("amount", paid.Amount))
	return paid, nil
}

func (u *InvoiceUseCase) load(ctx context.Context, invoiceID int64) (*domain.Invoice, *domain.Booking, error) {
	inv, booking, err := u.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil || booking == nil {
		return nil, nil, domain.NotFound("Not found")
	}
	return inv, booking, nil
}
