package port

import (
	"context"
	"errors"

	"selmore/internal/core/domain"
)

var (
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrBidAlreadyAccepted is returned when a bid has already produced a
	// booking.
	ErrBidAlreadyAccepted = errors.New("bid already accepted")
)

// Lookups return (nil, nil) when the row does not exist.

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts u and fills its ID and CreatedAt. It returns
	// ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// BillboardRepository persists billboard listings.
type BillboardRepository interface {
	ListBillboards(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error)
	GetBillboard(ctx context.Context, id int64) (*domain.Billboard, error)
	// CreateBillboard inserts b and fills ID, CreatedAt and UpdatedAt.
	CreateBillboard(ctx context.Context, b *domain.Billboard) error
	// UpdateBillboard overwrites every mutable column of b.
	UpdateBillboard(ctx context.Context, b *domain.Billboard) error
	DeleteBillboard(ctx context.Context, id int64) error
}

// CampaignRepository persists campaigns and the bids placed under them.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaignsByClient(ctx context.Context, clientID int64) ([]domain.Campaign, error)

	CreateBid(ctx context.Context, b *domain.Bid) error
	GetBid(ctx context.Context, id int64) (*domain.Bid, error)
	ListBidsByCampaign(ctx context.Context, campaignID int64) ([]domain.Bid, error)
	// ListBidsForOwner returns every bid placed on a billboard owned by
	// ownerID, joined with its campaign.
	ListBidsForOwner(ctx context.Context, ownerID int64) ([]domain.BidWithCampaign, error)
}

// BookingRepository persists bookings. Both creation paths insert the
// booking and its invoice in one transaction; on any failure neither row
// is kept.
type BookingRepository interface {
	ListBookings(ctx context.Context, scope domain.Scope) ([]domain.Booking, error)
	// CreateBookingWithInvoice inserts b, fills its ID and CreatedAt and
	// returns the invoice created alongside it.
	CreateBookingWithInvoice(ctx context.Context, b *domain.Booking) (*domain.Invoice, error)
	// AcceptBid flips bid bidID from pending to accepted and creates b with
	// its invoice in the same transaction. It returns ErrBidAlreadyAccepted
	// if the bid was accepted before.
	AcceptBid(ctx context.Context, bidID int64, b *domain.Booking) (*domain.Invoice, error)
}

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	ListInvoices(ctx context.Context, scope domain.Scope) ([]domain.Invoice, error)
	// GetInvoice returns the invoice together with the booking it bills.
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, *domain.Booking, error)
	// MarkInvoicePaid moves an unpaid invoice to paid and credits the owner's
	// revenue and the client's spend in one transaction. An invoice that is
	// already paid is returned unchanged.
	MarkInvoicePaid(ctx context.Context, id int64) (*domain.Invoice, error)
}
