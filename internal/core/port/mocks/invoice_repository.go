package mocks

import (
	context "context"

	domain "selmore/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock type for the InvoiceRepository type
type MockInvoiceRepository struct {
	mock.Mock
}

type MockInvoiceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockInvoiceRepository) EXPECT() *MockInvoiceRepository_Expecter {
	return &MockInvoiceRepository_Expecter{mock: &_m.Mock}
}

// GetInvoice provides a mock function with given fields: ctx, id
func (_m *MockInvoiceRepository) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, *domain.Booking, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetInvoice")
	}

	var (
		r0 *domain.Invoice
		r1 *domain.Booking
		r2 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Invoice, *domain.Booking, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Invoice); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Invoice)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) *domain.Booking); ok {
		r1 = rf(ctx, id)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(*domain.Booking)
	}
	if rf, ok := ret.Get(2).(func(context.Context, int64) error); ok {
		r2 = rf(ctx, id)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockInvoiceRepository_GetInvoice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetInvoice'
type MockInvoiceRepository_GetInvoice_Call struct {
	*mock.Call
}

// GetInvoice is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockInvoiceRepository_Expecter) GetInvoice(ctx interface{}, id interface{}) *MockInvoiceRepository_GetInvoice_Call {
	return &MockInvoiceRepository_GetInvoice_Call{Call: _e.mock.On("GetInvoice", ctx, id)}
}

func (_c *MockInvoiceRepository_GetInvoice_Call) Run(run func(ctx context.Context, id int64)) *MockInvoiceRepository_GetInvoice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockInvoiceRepository_GetInvoice_Call) Return(_a0 *domain.Invoice, _a1 *domain.Booking, _a2 error) *MockInvoiceRepository_GetInvoice_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockInvoiceRepository_GetInvoice_Call) RunAndReturn(run func(context.Context, int64) (*domain.Invoice, *domain.Booking, error)) *MockInvoiceRepository_GetInvoice_Call {
	_c.Call.Return(run)
	return _c
}

// ListInvoices provides a mock function with given fields: ctx, scope
func (_m *MockInvoiceRepository) ListInvoices(ctx context.Context, scope domain.Scope) ([]domain.Invoice, error) {
	ret := _m.Called(ctx, scope)

	if len(ret) == 0 {
		panic("no return value specified for ListInvoices")
	}

	var (
		r0 []domain.Invoice
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, domain.Scope) ([]domain.Invoice, error)); ok {
		return rf(ctx, scope)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Scope) []domain.Invoice); ok {
		r0 = rf(ctx, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Invoice)
	}
	if rf, ok := ret.Get(1).(func(context.Context, domain.Scope) error); ok {
		r1 = rf(ctx, scope)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvoiceRepository_ListInvoices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListInvoices'
type MockInvoiceRepository_ListInvoices_Call struct {
	*mock.Call
}

// ListInvoices is a helper method to define mock.On call
//   - ctx context.Context
//   - scope domain.Scope
func (_e *MockInvoiceRepository_Expecter) ListInvoices(ctx interface{}, scope interface{}) *MockInvoiceRepository_ListInvoices_Call {
	return &MockInvoiceRepository_ListInvoices_Call{Call: _e.mock.On("ListInvoices", ctx, scope)}
}

func (_c *MockInvoiceRepository_ListInvoices_Call) Run(run func(ctx context.Context, scope domain.Scope)) *MockInvoiceRepository_ListInvoices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Scope))
	})
	return _c
}

func (_c *MockInvoiceRepository_ListInvoices_Call) Return(_a0 []domain.Invoice, _a1 error) *MockInvoiceRepository_ListInvoices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvoiceRepository_ListInvoices_Call) RunAndReturn(run func(context.Context, domain.Scope) ([]domain.Invoice, error)) *MockInvoiceRepository_ListInvoices_Call {
	_c.Call.Return(run)
	return _c
}

// MarkInvoicePaid provides a mock function with given fields: ctx, id
func (_m *MockInvoiceRepository) MarkInvoicePaid(ctx context.Context, id int64) (*domain.Invoice, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for MarkInvoicePaid")
	}

	var (
		r0 *domain.Invoice
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Invoice, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Invoice); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Invoice)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvoiceRepository_MarkInvoicePaid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkInvoicePaid'
type MockInvoiceRepository_MarkInvoicePaid_Call struct {
	*mock.Call
}

// MarkInvoicePaid is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockInvoiceRepository_Expecter) MarkInvoicePaid(ctx interface{}, id interface{}) *MockInvoiceRepository_MarkInvoicePaid_Call {
	return &MockInvoiceRepository_MarkInvoicePaid_Call{Call: _e.mock.On("MarkInvoicePaid", ctx, id)}
}

func (_c *MockInvoiceRepository_MarkInvoicePaid_Call) Run(run func(ctx context.Context, id int64)) *MockInvoiceRepository_MarkInvoicePaid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockInvoiceRepository_MarkInvoicePaid_Call) Return(_a0 *domain.Invoice, _a1 error) *MockInvoiceRepository_MarkInvoicePaid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvoiceRepository_MarkInvoicePaid_Call) RunAndReturn(run func(context.Context, int64) (*domain.Invoice, error)) *MockInvoiceRepository_MarkInvoicePaid_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockInvoiceRepository creates a new instance of MockInvoiceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockInvoiceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvoiceRepository {
	m := &MockInvoiceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
