package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"selmore/internal/core/domain"
)

const (
	campaignColumns = `id, client_id, title, description, budget, start_date, end_date, status, created_at`
	bidColumns      = `id, campaign_id, billboard_id, client_bid, status, created_at`
)

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ClientID, &c.Title, &c.Description, &c.Budget,
		&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt)
	return c, err
}

func scanBid(row pgx.Row) (domain.Bid, error) {
	var b domain.Bid
	err := row.Scan(&b.ID, &b.CampaignID, &b.BillboardID, &b.ClientBid, &b.Status, &b.CreatedAt)
	return b, err
}

// CreateCampaign inserts c.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (client_id, title, description, budget, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
		c.ClientID, c.Title, c.Description, c.Budget, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return getOne(row, scanCampaign)
}

// ListCampaignsByClient returns a client's campaigns, newest first.
func (r *Repository) ListCampaignsByClient(ctx context.Context, clientID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE client_id = $1 ORDER BY created_at DESC, id DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return collect(rows, scanCampaign)
}

// CreateBid inserts b.
func (r *Repository) CreateBid(ctx context.Context, b *domain.Bid) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bids (campaign_id, billboard_id, client_bid, status)
VALUES ($1,$2,$3,$4) RETURNING id, created_at`,
		b.CampaignID, b.BillboardID, b.ClientBid, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// GetBid returns a bid by id.
func (r *Repository) GetBid(ctx context.Context, id int64) (*domain.Bid, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id)
	return getOne(row, scanBid)
}

// ListBidsByCampaign returns the bids placed under a campaign.
func (r *Repository) ListBidsByCampaign(ctx context.Context, campaignID int64) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return collect(rows, scanBid)
}

// ListBidsForOwner returns the bids on an owner's billboards joined with
// their campaigns.
func (r *Repository) ListBidsForOwner(ctx context.Context, ownerID int64) ([]domain.BidWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            b.id, b.campaign_id, b.billboard_id, b.client_bid, b.status, b.created_at,
            c.id, c.client_id, c.title, c.description, c.budget,
            c.start_date, c.end_date, c.status, c.created_at
        FROM bids b
        JOIN billboards bb ON bb.id = b.billboard_id
        JOIN campaigns c ON c.id = b.campaign_id
        WHERE bb.owner_id = $1
        ORDER BY b.created_at DESC, b.id DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner bids: %w", err)
	}
	return collect(rows, func(row pgx.Row) (domain.BidWithCampaign, error) {
		var (
			bc domain.BidWithCampaign
			b  = &bc.Bid
			c  = &bc.Campaign
		)
		err := row.Scan(
			&b.ID, &b.CampaignID, &b.BillboardID, &b.ClientBid, &b.Status, &b.CreatedAt,
			&c.ID, &c.ClientID, &c.Title, &c.Description, &c.Budget,
			&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt,
		)
		return bc, err
	})
}
