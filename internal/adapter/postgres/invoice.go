package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"selmore/internal/core/domain"
)

const invoiceColumns = `id, booking_id, invoice_number, amount, status, created_at, paid_at`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.BookingID, &inv.InvoiceNumber, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.PaidAt)
	return inv, err
}

// ListInvoices returns the invoices whose booking falls inside scope.
func (r *Repository) ListInvoices(ctx context.Context, scope domain.Scope) ([]domain.Invoice, error) {
	where, args := scopeWhere(scope, "bk")
	query := fmt.Sprintf(`SELECT %s FROM invoices i JOIN bookings bk ON bk.id = i.booking_id %s
ORDER BY i.created_at DESC, i.id DESC`, prefixColumns(invoiceColumns, "i"), where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices (%s): %w", scope, err)
	}
	return collect(rows, scanInvoice)
}

// GetInvoice returns an invoice and the booking it bills.
func (r *Repository) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, *domain.Booking, error) {
	var (
		inv domain.Invoice
		b   domain.Booking
	)
	query := fmt.Sprintf(`SELECT %s, %s FROM invoices i JOIN bookings bk ON bk.id = i.booking_id WHERE i.id = $1`,
		prefixColumns(invoiceColumns, "i"), prefixColumns(bookingColumns, "bk"))
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.BookingID, &inv.InvoiceNumber, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.PaidAt,
		&b.ID, &b.CampaignID, &b.BillboardID, &b.OwnerID, &b.ClientID, &b.Price,
		&b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get invoice %d: %w", id, err)
	}
	return &inv, &b, nil
}

// MarkInvoicePaid flips an unpaid invoice to paid and credits the booking's
// owner and client in the same transaction. A paid invoice is returned as
// is; a missing one as nil.
func (r *Repository) MarkInvoicePaid(ctx context.Context, id int64) (*domain.Invoice, error) {
	var out *domain.Invoice
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `UPDATE invoices SET status = $2, paid_at = now()
WHERE id = $1 AND status = $3
RETURNING `+invoiceColumns, id, domain.InvoicePaid, domain.InvoiceUnpaid)
		inv, err := getOne(row, scanInvoice)
		if err != nil {
			return fmt.Errorf("mark invoice %d paid: %w", id, err)
		}
		if inv == nil {
			// already paid or missing: leave the counters alone
			row = tx.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
			out, err = getOne(row, scanInvoice)
			return err
		}

		_, err = tx.Exec(ctx, `
        UPDATE users u SET
            total_revenue = total_revenue + CASE WHEN u.id = bk.owner_id THEN $2::numeric ELSE 0 END,
            total_spend   = total_spend   + CASE WHEN u.id = bk.client_id THEN $2::numeric ELSE 0 END
        FROM bookings bk
        WHERE bk.id = $1 AND u.id IN (bk.owner_id, bk.client_id)`, inv.BookingID, inv.Amount)
		if err != nil {
			return fmt.Errorf("credit booking %d parties: %w", inv.BookingID, err)
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
