package mocks

import (
	context "context"

	domain "selmore/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockBookingRepository is a mock type for the BookingRepository type
type MockBookingRepository struct {
	mock.Mock
}

type MockBookingRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookingRepository) EXPECT() *MockBookingRepository_Expecter {
	return &MockBookingRepository_Expecter{mock: &_m.Mock}
}

// AcceptBid provides a mock function with given fields: ctx, bidID, b
func (_m *MockBookingRepository) AcceptBid(ctx context.Context, bidID int64, b *domain.Booking) (*domain.Invoice, error) {
	ret := _m.Called(ctx, bidID, b)

	if len(ret) == 0 {
		panic("no return value specified for AcceptBid")
	}

	var (
		r0 *domain.Invoice
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64, *domain.Booking) (*domain.Invoice, error)); ok {
		return rf(ctx, bidID, b)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, *domain.Booking) *domain.Invoice); ok {
		r0 = rf(ctx, bidID, b)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Invoice)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64, *domain.Booking) error); ok {
		r1 = rf(ctx, bidID, b)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBookingRepository_AcceptBid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AcceptBid'
type MockBookingRepository_AcceptBid_Call struct {
	*mock.Call
}

// AcceptBid is a helper method to define mock.On call
//   - ctx context.Context
//   - bidID int64
//   - b *domain.Booking
func (_e *MockBookingRepository_Expecter) AcceptBid(ctx interface{}, bidID interface{}, b interface{}) *MockBookingRepository_AcceptBid_Call {
	return &MockBookingRepository_AcceptBid_Call{Call: _e.mock.On("AcceptBid", ctx, bidID, b)}
}

func (_c *MockBookingRepository_AcceptBid_Call) Run(run func(ctx context.Context, bidID int64, b *domain.Booking)) *MockBookingRepository_AcceptBid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(*domain.Booking))
	})
	return _c
}

func (_c *MockBookingRepository_AcceptBid_Call) Return(_a0 *domain.Invoice, _a1 error) *MockBookingRepository_AcceptBid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBookingRepository_AcceptBid_Call) RunAndReturn(run func(context.Context, int64, *domain.Booking) (*domain.Invoice, error)) *MockBookingRepository_AcceptBid_Call {
	_c.Call.Return(run)
	return _c
}

// CreateBookingWithInvoice provides a mock function with given fields: ctx, b
func (_m *MockBookingRepository) CreateBookingWithInvoice(ctx context.Context, b *domain.Booking) (*domain.Invoice, error) {
	ret := _m.Called(ctx, b)

	if len(ret) == 0 {
		panic("no return value specified for CreateBookingWithInvoice")
	}

	var (
		r0 *domain.Invoice
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) (*domain.Invoice, error)); ok {
		return rf(ctx, b)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) *domain.Invoice); ok {
		r0 = rf(ctx, b)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Invoice)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Booking) error); ok {
		r1 = rf(ctx, b)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBookingRepository_CreateBookingWithInvoice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateBookingWithInvoice'
type MockBookingRepository_CreateBookingWithInvoice_Call struct {
	*mock.Call
}

// CreateBookingWithInvoice is a helper method to define mock.On call
//   - ctx context.Context
//   - b *domain.Booking
func (_e *MockBookingRepository_Expecter) CreateBookingWithInvoice(ctx interface{}, b interface{}) *MockBookingRepository_CreateBookingWithInvoice_Call {
	return &MockBookingRepository_CreateBookingWithInvoice_Call{Call: _e.mock.On("CreateBookingWithInvoice", ctx, b)}
}

func (_c *MockBookingRepository_CreateBookingWithInvoice_Call) Run(run func(ctx context.Context, b *domain.Booking)) *MockBookingRepository_CreateBookingWithInvoice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Booking))
	})
	return _c
}

func (_c *MockBookingRepository_CreateBookingWithInvoice_Call) Return(_a0 *domain.Invoice, _a1 error) *MockBookingRepository_CreateBookingWithInvoice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBookingRepository_CreateBookingWithInvoice_Call) RunAndReturn(run func(context.Context, *domain.Booking) (*domain.Invoice, error)) *MockBookingRepository_CreateBookingWithInvoice_Call {
	_c.Call.Return(run)
	return _c
}

// ListBookings provides a mock function with given fields: ctx, scope
func (_m *MockBookingRepository) ListBookings(ctx context.Context, scope domain.Scope) ([]domain.Booking, error) {
	ret := _m.Called(ctx, scope)

	if len(ret) == 0 {
		panic("no return value specified for ListBookings")
	}

	var (
		r0 []domain.Booking
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, domain.Scope) ([]domain.Booking, error)); ok {
		return rf(ctx, scope)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Scope) []domain.Booking); ok {
		r0 = rf(ctx, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}
	if rf, ok := ret.Get(1).(func(context.Context, domain.Scope) error); ok {
		r1 = rf(ctx, scope)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBookingRepository_ListBookings_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBookings'
type MockBookingRepository_ListBookings_Call struct {
	*mock.Call
}

// ListBookings is a helper method to define mock.On call
//   - ctx context.Context
//   - scope domain.Scope
func (_e *MockBookingRepository_Expecter) ListBookings(ctx interface{}, scope interface{}) *MockBookingRepository_ListBookings_Call {
	return &MockBookingRepository_ListBookings_Call{Call: _e.mock.On("ListBookings", ctx, scope)}
}

func (_c *MockBookingRepository_ListBookings_Call) Run(run func(ctx context.Context, scope domain.Scope)) *MockBookingRepository_ListBookings_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Scope))
	})
	return _c
}

func (_c *MockBookingRepository_ListBookings_Call) Return(_a0 []domain.Booking, _a1 error) *MockBookingRepository_ListBookings_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBookingRepository_ListBookings_Call) RunAndReturn(run func(context.Context, domain.Scope) ([]domain.Booking, error)) *MockBookingRepository_ListBookings_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBookingRepository creates a new instance of MockBookingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
