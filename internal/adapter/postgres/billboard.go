package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"selmore/internal/core/domain"
)

var errBillboardBooked = domain.Conflict("Billboard has bookings")

const billboardColumns = `id, owner_id, title, description, location, city, type, size,
    price, price_type, week_price, month_price, booking_type, image, created_at, updated_at`

func scanBillboard(row pgx.Row) (domain.Billboard, error) {
	var b domain.Billboard
	err := row.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Description, &b.Location, &b.City, &b.Type, &b.Size,
		&b.Price, &b.PriceType, &b.WeekPrice, &b.MonthPrice, &b.BookingType, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// billboardWhere builds the WHERE clause of a filtered listing.
func billboardWhere(f domain.BillboardFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.City != nil {
		add("city = $%d", *f.City)
	}
	if f.Type != nil {
		add("type = $%d", *f.Type)
	}
	if f.BookingType != nil {
		add("booking_type = $%d", *f.BookingType)
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListBillboards returns the billboards matching f, newest first.
func (r *Repository) ListBillboards(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error) {
	where, args := billboardWhere(f)
	query := fmt.Sprintf(`SELECT %s FROM billboards %s ORDER BY created_at DESC, id DESC`, billboardColumns, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list billboards: %w", err)
	}
	return collect(rows, scanBillboard)
}

// GetBillboard returns a billboard by id.
func (r *Repository) GetBillboard(ctx context.Context, id int64) (*domain.Billboard, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+billboardColumns+` FROM billboards WHERE id = $1`, id)
	return getOne(row, scanBillboard)
}

// CreateBillboard inserts b.
func (r *Repository) CreateBillboard(ctx context.Context, b *domain.Billboard) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO billboards
    (owner_id, title, description, location, city, type, size, price, price_type,
     week_price, month_price, booking_type, image)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
RETURNING id, created_at, updated_at`,
		b.OwnerID, b.Title, b.Description, b.Location, b.City, b.Type, b.Size, b.Price, b.PriceType,
		b.WeekPrice, b.MonthPrice, b.BookingType, b.Image,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert billboard: %w", err)
	}
	return nil
}

// UpdateBillboard overwrites the mutable columns of b. The owner never
// changes.
func (r *Repository) UpdateBillboard(ctx context.Context, b *domain.Billboard) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE billboards SET
    title = $2, description = $3, location = $4, city = $5, type = $6, size = $7,
    price = $8, price_type = $9, week_price = $10, month_price = $11,
    booking_type = $12, image = $13, updated_at = now()
WHERE id = $1
RETURNING updated_at`,
		b.ID, b.Title, b.Description, b.Location, b.City, b.Type, b.Size,
		b.Price, b.PriceType, b.WeekPrice, b.MonthPrice, b.BookingType, b.Image,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update billboard %d: %w", b.ID, err)
	}
	return nil
}

// DeleteBillboard removes a billboard and its bids. A billboard that has
// bookings is kept and a conflict is returned.
func (r *Repository) DeleteBillboard(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM billboards WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return errBillboardBooked
	}
	if err != nil {
		return fmt.Errorf("delete billboard %d: %w", id, err)
	}
	return nil
}
