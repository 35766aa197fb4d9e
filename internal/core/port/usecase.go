package port

import (
	"context"
	"io"
	"time"

	"selmore/internal/core/domain"
)

// AuthUseCase registers and authenticates users. The HTTP adapter calls
// Authenticate for every protected route.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login fails with the same "Invalid credentials" error whether the
	// email is unknown or the password is wrong.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, id domain.Identity) (*domain.PublicUser, error)
	// Authenticate verifies a bearer token and confirms the user still
	// exists.
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

// BillboardUseCase manages billboard listings. Mutations are restricted to
// the billboard's owner.
type BillboardUseCase interface {
	List(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error)
	Get(ctx context.Context, id int64) (*domain.Billboard, error)
	Create(ctx context.Context, id domain.Identity, form BillboardForm, image *Upload) (*domain.Billboard, error)
	Update(ctx context.Context, id domain.Identity, billboardID int64, form BillboardForm, image *Upload) (*domain.Billboard, error)
	Delete(ctx context.Context, id domain.Identity, billboardID int64) error
}

// CampaignUseCase manages advertiser campaigns.
type CampaignUseCase interface {
	Create(ctx context.Context, id domain.Identity, in CampaignInput) (*domain.Campaign, error)
	// List is role scoped: clients get their campaigns, owners the bids on
	// their billboards, everybody else nothing.
	List(ctx context.Context, id domain.Identity) (*CampaignList, error)
	// Get returns a campaign with its bids. Clients may only read their own.
	Get(ctx context.Context, id domain.Identity, campaignID int64) (*domain.CampaignWithBids, error)
}

// BookingUseCase drives the bid → booking → invoice pipeline.
type BookingUseCase interface {
	PlaceBid(ctx context.Context, id domain.Identity, in BidInput) (*domain.Bid, error)
	AcceptBid(ctx context.Context, id domain.Identity, bidID int64) (*domain.BookingWithInvoice, error)
	ListBookings(ctx context.Context, id domain.Identity) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, id domain.Identity, in BookingInput) (*domain.BookingWithInvoice, error)
}

// InvoiceUseCase lists, renders and settles invoices.
type InvoiceUseCase interface {
	List(ctx context.Context, id domain.Identity) ([]domain.Invoice, error)
	Download(ctx context.Context, id domain.Identity, invoiceID int64) (*Document, error)
	MarkPaid(ctx context.Context, id domain.Identity, invoiceID int64) (*domain.Invoice, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// BillboardForm holds raw form values of a billboard request. Numeric
// fields are parsed by the usecase; nil means "not provided".
type BillboardForm struct {
	Title       *string
	Description *string
	Location    *string
	City        *string
	Type        *string
	Size        *string
	Price       *string
	PriceType   *string
	WeekPrice   *string
	MonthPrice  *string
	BookingType *string
}

// Upload is a file received with a request.
type Upload struct {
	Filename string
	Content  io.Reader
}

type CampaignInput struct {
	Title       string
	Description *string
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

// CampaignList is the role-scoped result of CampaignUseCase.List. Exactly
// one of the slices is meaningful for a given role.
type CampaignList struct {
	Campaigns []domain.Campaign
	Bids      []domain.BidWithCampaign
}

type BidInput struct {
	CampaignID  int64
	BillboardID int64
	ClientBid   float64
}

// BookingInput is a direct booking request. CampaignID and ClientID are
// optional; dates default when nil.
type BookingInput struct {
	CampaignID  *int64
	BillboardID int64
	ClientID    *int64
	Price       float64
	StartDate   *time.Time
	EndDate     *time.Time
}

// Document is a rendered file ready to be sent as an attachment.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}
