package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

const userColumns = `id, name, email, password_hash, role, profile_image,
    total_revenue, total_spend, total_impressions, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.ProfileImage,
		&u.TotalRevenue, &u.TotalSpend, &u.TotalImpressions, &u.CreatedAt)
	return u, err
}

// CreateUser inserts a user. A taken email yields port.ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, u *domain.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, profile_image)
VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.ProfileImage,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return port.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail returns the user with the given email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return getOne(row, scanUser)
}

// GetUserByID returns the user with the given id.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return getOne(row, scanUser)
}
