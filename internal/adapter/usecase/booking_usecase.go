package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/metrics"
	"selmore/internal/validate"
)

var errBidAccepted = domain.Conflict("Bid already accepted")

// BookingUseCase turns bids into bookings. Every booking is created
// together with its invoice in a single repository transaction.
type BookingUseCase struct {
	users      port.UserRepository
	campaigns  port.CampaignRepository
	billboards port.BillboardRepository
	bookings   port.BookingRepository
	logger     *slog.Logger

	// now is the clock used for booking dates.
	now func() time.Time
}

// NewBookingUseCase creates the booking pipeline.
func NewBookingUseCase(users port.UserRepository, campaigns port.CampaignRepository, billboards port.BillboardRepository, bookings port.BookingRepository, logger *slog.Logger) *BookingUseCase {
	return &BookingUseCase{
		users:      users,
		campaigns:  campaigns,
		billboards: billboards,
		bookings:   bookings,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid records a pending offer by the caller's campaign on a
// billboard.
func (u *BookingUseCase) PlaceBid(ctx context.Context, id domain.Identity, in port.BidInput) (*domain.Bid, error) {
	if !id.HasRole(domain.RoleClient) {
		return nil, domain.Forbidden("Forbidden - Requires one of these roles: client")
	}
	amount, err := validate.Money(in.ClientBid, "clientBid")
	if err != nil {
		return nil, err
	}
	campaign, err := u.campaigns.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.NotFound("Campaign not found")
	}
	if err = domain.Authorize(id, campaign.ClientID); err != nil {
		return nil, err
	}
	billboard, err := u.billboards.GetBillboard(ctx, in.BillboardID)
	if err != nil {
		return nil, err
	}
	if billboard == nil {
		return nil, domain.NotFound("Billboard not found")
	}

	bid := &domain.Bid{
		CampaignID:  campaign.ID,
		BillboardID: billboard.ID,
		ClientBid:   amount,
		Status:      domain.BidPending,
	}
	if err = u.campaigns.CreateBid(ctx, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

// AcceptBid converts a pending bid into a confirmed booking and an unpaid
// invoice. The booking is priced at the bid, runs for
// domain.DefaultBookingDuration from now, and belongs to the billboard's
// owner and the campaign's client. Nothing is written unless the bid, its
// campaign and its billboard all exist; a bid can be accepted only once.
func (u *BookingUseCase) AcceptBid(ctx context.Context, id domain.Identity, bidID int64) (*domain.BookingWithInvoice, error) {
	bid, err := u.campaigns.GetBid(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.NotFound("Bid not found")
	}
	campaign, err := u.campaigns.GetCampaign(ctx, bid.CampaignID)
	if err != nil {
		return nil, err
	}
	billboard, err := u.billboards.GetBillboard(ctx, bid.BillboardID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || billboard == nil {
		return nil, domain.NotFound("Billboard or Campaign not found")
	}
	if err = domain.Authorize(id, billboard.OwnerID); err != nil {
		return nil, err
	}
	if bid.Status == domain.BidAccepted {
		return nil, errBidAccepted
	}

	booking := domain.BookingFromBid(*bid, *campaign, *billboard, u.now())
	inv, err := u.bookings.AcceptBid(ctx, bid.ID, &booking)
	if errors.Is(err, port.ErrBidAlreadyAccepted) {
		return nil, errBidAccepted
	}
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues("bid").Inc()
	u.logger.Info("bid accepted",
		slog.Int64("bid_id", bid.ID),
		slog.Int64("booking_id", booking.ID),
		slog.String("invoice", inv.InvoiceNumber),
	)
	return &domain.BookingWithInvoice{Booking: booking, Invoice: *inv}, nil
}

// ListBookings returns the bookings visible to the caller.
func (u *BookingUseCase) ListBookings(ctx context.Context, id domain.Identity) ([]domain.Booking, error) {
	bookings, err := u.bookings.ListBookings(ctx, domain.ScopeFor(id))
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// CreateBooking books a billboard directly at a caller-supplied price,
// bypassing bids. The owner is always the billboard's owner. The client is
// the campaign's client when a campaign is referenced, otherwise clientId,
// which may be omitted only by a client booking for themselves. The start
// date defaults to now and the end date to the start plus
// domain.DefaultBookingDuration.
func (u *BookingUseCase) CreateBooking(ctx context.Context, id domain.Identity, in port.BookingInput) (*domain.BookingWithInvoice, error) {
	if in.BillboardID <= 0 {
		return nil, domain.Validation("Missing required fields: billboardId")
	}
	price, err := validate.Money(in.Price, "price")
	if err != nil {
		return nil, err
	}
	billboard, err := u.billboards.GetBillboard(ctx, in.BillboardID)
	if err != nil {
		return nil, err
	}
	if billboard == nil {
		return nil, domain.NotFound("Billboard not found")
	}

	var clientID int64
	if in.CampaignID != nil {
		campaign, err := u.campaigns.GetCampaign(ctx, *in.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign == nil {
			return nil, domain.NotFound("Campaign not found")
		}
		if in.ClientID != nil && *in.ClientID != campaign.ClientID {
			return nil, domain.Validation("clientId does not match the campaign's client")
		}
		clientID = campaign.ClientID
	} else if clientID, err = u.bookingClient(ctx, id, in.ClientID); err != nil {
		return nil, err
	}
	if domain.Authorize(id, clientID) != nil && domain.Authorize(id, billboard.OwnerID) != nil {
		return nil, domain.Forbidden("Forbidden")
	}

	start := u.now()
	if in.StartDate != nil {
		start = in.StartDate.UTC()
	}
	end := start.Add(domain.DefaultBookingDuration)
	if in.EndDate != nil {
		end = in.EndDate.UTC()
	}
	if end.Before(start) {
		return nil, domain.Validation("endDate must not be before startDate")
	}

	booking := domain.Booking{
		CampaignID:  in.CampaignID,
		BillboardID: billboard.ID,
		OwnerID:     billboard.OwnerID,
		ClientID:    clientID,
		Price:       price,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.BookingConfirmed,
	}
	inv, err := u.bookings.CreateBookingWithInvoice(ctx, &booking)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues("direct").Inc()
	u.logger.Info("booking created",
		slog.Int64("booking_id", booking.ID),
		slog.String("invoice", inv.InvoiceNumber),
	)
	return &domain.BookingWithInvoice{Booking: booking, Invoice: *inv}, nil
}

// bookingClient resolves the client of a booking made without a campaign.
func (u *BookingUseCase) bookingClient(ctx context.Context, id domain.Identity, clientID *int64) (int64, error) {
	if clientID == nil {
		if id.HasRole(domain.RoleClient) {
			return id.UserID, nil
		}
		return 0, domain.Validation("Missing required fields: clientId")
	}
	user, err := u.users.GetUserByID(ctx, *clientID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, domain.NotFound("Client not found")
	}
	if user.Role != domain.RoleClient {
		return 0, domain.Validation("clientId must reference a client")
	}
	return user.ID, nil
}
