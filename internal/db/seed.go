package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password123"

type seedUser struct {
	name  string
	email string
	role  domain.Role
}

var seedUsers = []seedUser{
	{"Admin", "admin@example.com", domain.RoleAdmin},
	{"Owner", "owner@example.com", domain.RoleOwner},
	{"Client", "client@example.com", domain.RoleClient},
}

// Seed inserts the demo admin, owner and client accounts and one billboard
// owned by the demo owner. Running it twice changes nothing.
func Seed(ctx context.Context, db *pgxpool.Pool, hasher port.PasswordHasher) error {
	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return err
	}

	ids := make(map[domain.Role]int64, len(seedUsers))
	for _, u := range seedUsers {
		_, err = db.Exec(ctx, `INSERT INTO users (name, email, password_hash, role)
VALUES ($1,$2,$3,$4) ON CONFLICT (email) DO NOTHING`, u.name, u.email, hash, u.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		var id int64
		if err = db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, u.email).Scan(&id); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		ids[u.role] = id
	}

	_, err = db.Exec(ctx, `INSERT INTO billboards
    (owner_id, title, location, city, type, price, price_type, booking_type)
SELECT $1, 'Times Square', 'New York, NY', 'New York', 'Digital', 800, 'day', 'direct'
WHERE NOT EXISTS (SELECT 1 FROM billboards WHERE owner_id = $1 AND title = 'Times Square')`,
		ids[domain.RoleOwner])
	if err != nil {
		return fmt.Errorf("seed billboard: %w", err)
	}
	return nil
}
