package httpadapter

import (
	"context"

	"github.com/stretchr/testify/mock"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

type authMock struct{ mock.Mock }

func (m *authMock) Register(ctx context.Context, in port.RegisterInput) (*port.AuthResult, error) {
	ret := m.Called(ctx, in)
	r0, _ := ret.Get(0).(*port.AuthResult)
	return r0, ret.Error(1)
}

func (m *authMock) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	ret := m.Called(ctx, email, password)
	r0, _ := ret.Get(0).(*port.AuthResult)
	return r0, ret.Error(1)
}

func (m *authMock) Me(ctx context.Context, id domain.Identity) (*domain.PublicUser, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).(*domain.PublicUser)
	return r0, ret.Error(1)
}

func (m *authMock) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	ret := m.Called(ctx, token)
	return ret.Get(0).(domain.Identity), ret.Error(1)
}

type billboardsMock struct{ mock.Mock }

func (m *billboardsMock) List(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error) {
	ret := m.Called(ctx, f)
	r0, _ := ret.Get(0).([]domain.Billboard)
	return r0, ret.Error(1)
}

func (m *billboardsMock) Get(ctx context.Context, id int64) (*domain.Billboard, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).(*domain.Billboard)
	return r0, ret.Error(1)
}

func (m *billboardsMock) Create(ctx context.Context, id domain.Identity, form port.BillboardForm, image *port.Upload) (*domain.Billboard, error) {
	ret := m.Called(ctx, id, form, image)
	r0, _ := ret.Get(0).(*domain.Billboard)
	return r0, ret.Error(1)
}

func (m *billboardsMock) Update(ctx context.Context, id domain.Identity, billboardID int64, form port.BillboardForm, image *port.Upload) (*domain.Billboard, error) {
	ret := m.Called(ctx, id, billboardID, form, image)
	r0, _ := ret.Get(0).(*domain.Billboard)
	return r0, ret.Error(1)
}

func (m *billboardsMock) Delete(ctx context.Context, id domain.Identity, billboardID int64) error {
	return m.Called(ctx, id, billboardID).Error(0)
}

type campaignsMock struct{ mock.Mock }

func (m *campaignsMock) Create(ctx context.Context, id domain.Identity, in port.CampaignInput) (*domain.Campaign, error) {
	ret := m.Called(ctx, id, in)
	r0, _ := ret.Get(0).(*domain.Campaign)
	return r0, ret.Error(1)
}

func (m *campaignsMock) List(ctx context.Context, id domain.Identity) (*port.CampaignList, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).(*port.CampaignList)
	return r0, ret.Error(1)
}

func (m *campaignsMock) Get(ctx context.Context, id domain.Identity, campaignID int64) (*domain.CampaignWithBids, error) {
	ret := m.Called(ctx, id, campaignID)
	r0, _ := ret.Get(0).(*domain.CampaignWithBids)
	return r0, ret.Error(1)
}

type bookingsMock struct{ mock.Mock }

func (m *bookingsMock) PlaceBid(ctx context.Context, id domain.Identity, in port.BidInput) (*domain.Bid, error) {
	ret := m.Called(ctx, id, in)
	r0, _ := ret.Get(0).(*domain.Bid)
	return r0, ret.Error(1)
}

func (m *bookingsMock) AcceptBid(ctx context.Context, id domain.Identity, bidID int64) (*domain.BookingWithInvoice, error) {
	ret := m.Called(ctx, id, bidID)
	r0, _ := ret.Get(0).(*domain.BookingWithInvoice)
	return r0, ret.Error(1)
}

func (m *bookingsMock) ListBookings(ctx context.Context, id domain.Identity) ([]domain.Booking, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).([]domain.Booking)
	return r0, ret.Error(1)
}

func (m *bookingsMock) CreateBooking(ctx context.Context, id domain.Identity, in port.BookingInput) (*domain.BookingWithInvoice, error) {
	ret := m.Called(ctx, id, in)
	r0, _ := ret.Get(0).(*domain.BookingWithInvoice)
	return r0, ret.Error(1)
}

type invoicesMock struct{ mock.Mock }

func (m *invoicesMock) List(ctx context.Context, id domain.Identity) ([]domain.Invoice, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).([]domain.Invoice)
	return r0, ret.Error(1)
}

func (m *invoicesMock) Download(ctx context.Context, id domain.Identity, invoiceID int64) (*port.Document, error) {
	ret := m.Called(ctx, id, invoiceID)
	r0, _ := ret.Get(0).(*port.Document)
	return r0, ret.Error(1)
}

func (m *invoicesMock) MarkPaid(ctx context.Context, id domain.Identity, invoiceID int64) (*domain.Invoice, error) {
	ret := m.Called(ctx, id, invoiceID)
	r0, _ := ret.Get(0).(*domain.Invoice)
	return r0, ret.Error(1)
}
