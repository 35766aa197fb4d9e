package postgres

import (
	"context"
	"errors"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selmore/internal/config/configs"
	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/db"
)

// newTestRepo connects to the database named by PSQL_TEST_ADDRESS, migrates
// it and empties every table. Tests are skipped without it.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE invoices, bookings, bids, campaigns, billboards, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return NewRepository(pool)
}

type fixture struct {
	owner, client *domain.User
	billboard     *domain.Billboard
	campaign      *domain.Campaign
}

func seedFixture(t *testing.T, r *Repository) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{
		owner:  &domain.User{Name: "O", Email: "owner@x.com", PasswordHash: "h", Role: domain.RoleOwner},
		client: &domain.User{Name: "C", Email: "client@x.com", PasswordHash: "h", Role: domain.RoleClient},
	}
	require.NoError(t, r.CreateUser(ctx, f.owner))
	require.NoError(t, r.CreateUser(ctx, f.client))

	f.billboard = &domain.Billboard{
		OwnerID: f.owner.ID, Title: "Times Square", Location: "1560 Broadway", City: "New York",
		Type: "digital", Price: 800, PriceType: "day", BookingType: domain.BookingBidding,
	}
	require.NoError(t, r.CreateBillboard(ctx, f.billboard))

	f.campaign = &domain.Campaign{ClientID: f.client.ID, Title: "Launch", Status: domain.CampaignActive}
	require.NoError(t, r.CreateCampaign(ctx, f.campaign))
	return f
}

func TestUserRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleClient}
	require.NoError(t, r.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := r.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, domain.RoleClient, got.Role)

	missing, err := r.GetUserByID(ctx, u.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = r.CreateUser(ctx, &domain.User{Name: "B", Email: "a@x.com", PasswordHash: "h", Role: domain.RoleOwner})
	require.ErrorIs(t, err, port.ErrDuplicate)
}

func TestListBillboardsFilter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	f := seedFixture(t, r)

	cheap := &domain.Billboard{
		OwnerID: f.owner.ID, Title: "Cheap", Location: "x", City: "Boston",
		Type: "static", Price: 100, PriceType: "week", BookingType: domain.BookingDirect,
	}
	require.NoError(t, r.CreateBillboard(ctx, cheap))

	all, err := r.ListBillboards(ctx, domain.BillboardFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	city := "New York"
	got, err := r.ListBillboards(ctx, domain.BillboardFilter{City: &city})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.billboard.ID, got[0].ID)

	lo, hi := 100.0, 100.0
	got, err = r.ListBillboards(ctx, domain.BillboardFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cheap.ID, got[0].ID)

	none := "Paris"
	got, err = r.ListBillboards(ctx, domain.BillboardFilter{City: &none})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAcceptBidOnce(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	f := seedFixture(t, r)

	bid := &domain.Bid{CampaignID: f.campaign.ID, BillboardID: f.billboard.ID, ClientBid: 750, Status: domain.BidPending}
	require.NoError(t, r.CreateBid(ctx, bid))

	now := time.Now().UTC().Truncate(time.Second)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		dupes   int
		invoice *domain.Invoice
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := domain.BookingFromBid(*bid, *f.campaign, *f.billboard, now)
			inv, err := r.AcceptBid(ctx, bid.ID, &b)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
				invoice = inv
			case errors.Is(err, port.ErrBidAlreadyAccepted):
				dupes++
			default:
				t.Errorf("accept: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 3, dupes)
	require.NotNil(t, invoice)
	assert.Equal(t, 750.0, invoice.Amount)
	assert.Equal(t, domain.InvoiceNumber(invoice.BookingID), invoice.InvoiceNumber)

	bookings, err := r.ListBookings(ctx, domain.Scope{})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	stored, err := r.GetBid(ctx, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BidAccepted, stored.Status)

	owned, err := r.ListBidsForOwner(ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Launch", owned[0].Campaign.Title)
}

func TestCreateBookingRollsBack(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	f := seedFixture(t, r)

	// an unknown client violates the foreign key after nothing else was
	// written; the transaction must leave no booking behind
	bad := &domain.Booking{
		BillboardID: f.billboard.ID, OwnerID: f.owner.ID, ClientID: f.client.ID + 1000,
		Price: 10, StartDate: time.Now(), EndDate: time.Now().Add(time.Hour), Status: domain.BookingConfirmed,
	}
	_, err := r.CreateBookingWithInvoice(ctx, bad)
	require.Error(t, err)

	bookings, err := r.ListBookings(ctx, domain.Scope{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeleteBookedBillboard(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	f := seedFixture(t, r)

	b := &domain.Booking{
		BillboardID: f.billboard.ID, OwnerID: f.owner.ID, ClientID: f.client.ID,
		Price: 10, StartDate: time.Now(), EndDate: time.Now().Add(time.Hour), Status: domain.BookingConfirmed,
	}
	inv, err := r.CreateBookingWithInvoice(ctx, b)
	require.NoError(t, err)

	err = r.DeleteBillboard(ctx, f.billboard.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "Billboard has bookings")

	kept, err := r.GetBillboard(ctx, f.billboard.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	_, booking, err := r.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, booking)

	free := &domain.Billboard{
		OwnerID: f.owner.ID, Title: "Free", Location: "x", City: "Boston",
		Type: "static", Price: 100, PriceType: "week", BookingType: domain.BookingBidding,
	}
	require.NoError(t, r.CreateBillboard(ctx, free))
	require.NoError(t, r.CreateBid(ctx, &domain.Bid{CampaignID: f.campaign.ID, BillboardID: free.ID, ClientBid: 50, Status: domain.BidPending}))
	require.NoError(t, r.DeleteBillboard(ctx, free.ID))
	gone, err := r.GetBillboard(ctx, free.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMarkInvoicePaidCredits(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	f := seedFixture(t, r)

	b := &domain.Booking{
		CampaignID: &f.campaign.ID, BillboardID: f.billboard.ID, OwnerID: f.owner.ID, ClientID: f.client.ID,
		Price: 300, StartDate: time.Now(), EndDate: time.Now().Add(24 * time.Hour), Status: domain.BookingConfirmed,
	}
	inv, err := r.CreateBookingWithInvoice(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceUnpaid, inv.Status)

	gotInv, gotBooking, err := r.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.InvoiceNumber, gotInv.InvoiceNumber)
	assert.Equal(t, f.owner.ID, gotBooking.OwnerID)

	for i := 0; i < 2; i++ {
		paid, err := r.MarkInvoicePaid(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InvoicePaid, paid.Status)
		assert.NotNil(t, paid.PaidAt)
	}

	owner, err := r.GetUserByID(ctx, f.owner.ID)
	require.NoError(t, err)
	client, err := r.GetUserByID(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, owner.TotalRevenue)
	assert.Equal(t, 300.0, client.TotalSpend)

	ownerID := f.owner.ID
	scoped, err := r.ListInvoices(ctx, domain.Scope{OwnerID: &ownerID})
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	other := f.client.ID + 1000
	scoped, err = r.ListInvoices(ctx, domain.Scope{ClientID: &other})
	require.NoError(t, err)
	assert.Empty(t, scoped)

	missing, err := r.MarkInvoicePaid(ctx, inv.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWhereBuilders(t *testing.T) {
	city := "Boston"
	lo := 5.0
	where, args := billboardWhere(domain.BillboardFilter{City: &city, MinPrice: &lo})
	assert.Equal(t, "WHERE city = $1 AND price >= $2", where)
	assert.Equal(t, []any{"Boston", 5.0}, args)

	where, args = billboardWhere(domain.BillboardFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	id := int64(3)
	where, args = scopeWhere(domain.Scope{ClientID: &id}, "bk")
	assert.Equal(t, "WHERE bk.client_id = $1", where)
	assert.Equal(t, []any{int64(3)}, args)

	assert.Equal(t, "i.id, i.amount", prefixColumns("id,\n    amount", "i"))
}
