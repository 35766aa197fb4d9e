package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

const bookingColumns = `id, campaign_id, billboard_id, owner_id, client_id, price,
    start_date, end_date, status, created_at`

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.CampaignID, &b.BillboardID, &b.OwnerID, &b.ClientID, &b.Price,
		&b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt)
	return b, err
}

// scopeWhere turns a listing scope into a WHERE clause over the bookings
// table aliased as alias.
func scopeWhere(s domain.Scope, alias string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if s.OwnerID != nil {
		args = append(args, *s.OwnerID)
		conds = append(conds, fmt.Sprintf("%s.owner_id = $%d", alias, len(args)))
	}
	if s.ClientID != nil {
		args = append(args, *s.ClientID)
		conds = append(conds, fmt.Sprintf("%s.client_id = $%d", alias, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListBookings returns the bookings inside scope, newest first.
func (r *Repository) ListBookings(ctx context.Context, scope domain.Scope) ([]domain.Booking, error) {
	where, args := scopeWhere(scope, "bk")
	query := fmt.Sprintf(`SELECT %s FROM bookings bk %s ORDER BY bk.created_at DESC, bk.id DESC`,
		prefixColumns(bookingColumns, "bk"), where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings (%s): %w", scope, err)
	}
	return collect(rows, scanBooking)
}

// CreateBookingWithInvoice inserts b and its invoice atomically.
func (r *Repository) CreateBookingWithInvoice(ctx context.Context, b *domain.Booking) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		inv, err = insertBookingWithInvoice(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// AcceptBid locks the bid, marks it accepted and inserts b with its
// invoice. Concurrent acceptances of the same bid serialize on the row
// lock; the loser sees the accepted status and gets
// port.ErrBidAlreadyAccepted.
func (r *Repository) AcceptBid(ctx context.Context, bidID int64, b *domain.Booking) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var status domain.BidStatus
		err := tx.QueryRow(ctx, `SELECT status FROM bids WHERE id = $1 FOR UPDATE`, bidID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("Bid not found")
		}
		if err != nil {
			return fmt.Errorf("lock bid %d: %w", bidID, err)
		}
		if status == domain.BidAccepted {
			return port.ErrBidAlreadyAccepted
		}
		if _, err = tx.Exec(ctx, `UPDATE bids SET status = $2 WHERE id = $1`, bidID, domain.BidAccepted); err != nil {
			return fmt.Errorf("accept bid %d: %w", bidID, err)
		}
		inv, err = insertBookingWithInvoice(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// insertBookingWithInvoice writes a booking and the unpaid invoice that
// bills it. It must run inside tx.
func insertBookingWithInvoice(ctx context.Context, tx pgx.Tx, b *domain.Booking) (*domain.Invoice, error) {
	err := tx.QueryRow(ctx,
		`INSERT INTO bookings (campaign_id, billboard_id, owner_id, client_id, price, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at`,
		b.CampaignID, b.BillboardID, b.OwnerID, b.ClientID, b.Price, b.StartDate, b.EndDate, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	inv := domain.InvoiceFor(*b)
	err = tx.QueryRow(ctx,
		`INSERT INTO invoices (booking_id, invoice_number, amount, status)
VALUES ($1,$2,$3,$4) RETURNING id, created_at`,
		inv.BookingID, inv.InvoiceNumber, inv.Amount, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert invoice for booking %d: %w", b.ID, err)
	}
	return &inv, nil
}

// prefixColumns qualifies a comma separated column list with alias.
func prefixColumns(cols, alias string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
