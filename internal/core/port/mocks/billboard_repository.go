package mocks

import (
	context "context"

	domain "selmore/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockBillboardRepository is a mock type for the BillboardRepository type
type MockBillboardRepository struct {
	mock.Mock
}

type MockBillboardRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBillboardRepository) EXPECT() *MockBillboardRepository_Expecter {
	return &MockBillboardRepository_Expecter{mock: &_m.Mock}
}

// CreateBillboard provides a mock function with given fields: ctx, b
func (_m *MockBillboardRepository) CreateBillboard(ctx context.Context, b *domain.Billboard) error {
	ret := _m.Called(ctx, b)

	if len(ret) == 0 {
		panic("no return value specified for CreateBillboard")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Billboard) error); ok {
		r0 = rf(ctx, b)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBillboardRepository_CreateBillboard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateBillboard'
type MockBillboardRepository_CreateBillboard_Call struct {
	*mock.Call
}

// CreateBillboard is a helper method to define mock.On call
//   - ctx context.Context
//   - b *domain.Billboard
func (_e *MockBillboardRepository_Expecter) CreateBillboard(ctx interface{}, b interface{}) *MockBillboardRepository_CreateBillboard_Call {
	return &MockBillboardRepository_CreateBillboard_Call{Call: _e.mock.On("CreateBillboard", ctx, b)}
}

func (_c *MockBillboardRepository_CreateBillboard_Call) Run(run func(ctx context.Context, b *domain.Billboard)) *MockBillboardRepository_CreateBillboard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Billboard))
	})
	return _c
}

func (_c *MockBillboardRepository_CreateBillboard_Call) Return(_a0 error) *MockBillboardRepository_CreateBillboard_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBillboardRepository_CreateBillboard_Call) RunAndReturn(run func(context.Context, *domain.Billboard) error) *MockBillboardRepository_CreateBillboard_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteBillboard provides a mock function with given fields: ctx, id
func (_m *MockBillboardRepository) DeleteBillboard(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteBillboard")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBillboardRepository_DeleteBillboard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteBillboard'
type MockBillboardRepository_DeleteBillboard_Call struct {
	*mock.Call
}

// DeleteBillboard is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockBillboardRepository_Expecter) DeleteBillboard(ctx interface{}, id interface{}) *MockBillboardRepository_DeleteBillboard_Call {
	return &MockBillboardRepository_DeleteBillboard_Call{Call: _e.mock.On("DeleteBillboard", ctx, id)}
}

func (_c *MockBillboardRepository_DeleteBillboard_Call) Run(run func(ctx context.Context, id int64)) *MockBillboardRepository_DeleteBillboard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockBillboardRepository_DeleteBillboard_Call) Return(_a0 error) *MockBillboardRepository_DeleteBillboard_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBillboardRepository_DeleteBillboard_Call) RunAndReturn(run func(context.Context, int64) error) *MockBillboardRepository_DeleteBillboard_Call {
	_c.Call.Return(run)
	return _c
}

// GetBillboard provides a mock function with given fields: ctx, id
func (_m *MockBillboardRepository) GetBillboard(ctx context.Context, id int64) (*domain.Billboard, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetBillboard")
	}

	var (
		r0 *domain.Billboard
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Billboard, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Billboard); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Billboard)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBillboardRepository_GetBillboard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBillboard'
type MockBillboardRepository_GetBillboard_Call struct {
	*mock.Call
}

// GetBillboard is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockBillboardRepository_Expecter) GetBillboard(ctx interface{}, id interface{}) *MockBillboardRepository_GetBillboard_Call {
	return &MockBillboardRepository_GetBillboard_Call{Call: _e.mock.On("GetBillboard", ctx, id)}
}

func (_c *MockBillboardRepository_GetBillboard_Call) Run(run func(ctx context.Context, id int64)) *MockBillboardRepository_GetBillboard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockBillboardRepository_GetBillboard_Call) Return(_a0 *domain.Billboard, _a1 error) *MockBillboardRepository_GetBillboard_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBillboardRepository_GetBillboard_Call) RunAndReturn(run func(context.Context, int64) (*domain.Billboard, error)) *MockBillboardRepository_GetBillboard_Call {
	_c.Call.Return(run)
	return _c
}

// ListBillboards provides a mock function with given fields: ctx, f
func (_m *MockBillboardRepository) ListBillboards(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error) {
	ret := _m.Called(ctx, f)

	if len(ret) == 0 {
		panic("no return value specified for ListBillboards")
	}

	var (
		r0 []domain.Billboard
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, domain.BillboardFilter) ([]domain.Billboard, error)); ok {
		return rf(ctx, f)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.BillboardFilter) []domain.Billboard); ok {
		r0 = rf(ctx, f)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Billboard)
	}
	if rf, ok := ret.Get(1).(func(context.Context, domain.BillboardFilter) error); ok {
		r1 = rf(ctx, f)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBillboardRepository_ListBillboards_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBillboards'
type MockBillboardRepository_ListBillboards_Call struct {
	*mock.Call
}

// ListBillboards is a helper method to define mock.On call
//   - ctx context.Context
//   - f domain.BillboardFilter
func (_e *MockBillboardRepository_Expecter) ListBillboards(ctx interface{}, f interface{}) *MockBillboardRepository_ListBillboards_Call {
	return &MockBillboardRepository_ListBillboards_Call{Call: _e.mock.On("ListBillboards", ctx, f)}
}

func (_c *MockBillboardRepository_ListBillboards_Call) Run(run func(ctx context.Context, f domain.BillboardFilter)) *MockBillboardRepository_ListBillboards_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.BillboardFilter))
	})
	return _c
}

func (_c *MockBillboardRepository_ListBillboards_Call) Return(_a0 []domain.Billboard, _a1 error) *MockBillboardRepository_ListBillboards_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBillboardRepository_ListBillboards_Call) RunAndReturn(run func(context.Context, domain.BillboardFilter) ([]domain.Billboard, error)) *MockBillboardRepository_ListBillboards_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateBillboard provides a mock function with given fields: ctx, b
func (_m *MockBillboardRepository) UpdateBillboard(ctx context.Context, b *domain.Billboard) error {
	ret := _m.Called(ctx, b)

	if len(ret) == 0 {
		panic("no return value specified for UpdateBillboard")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Billboard) error); ok {
		r0 = rf(ctx, b)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBillboardRepository_UpdateBillboard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateBillboard'
type MockBillboardRepository_UpdateBillboard_Call struct {
	*mock.Call
}

// UpdateBillboard is a helper method to define mock.On call
//   - ctx context.Context
//   - b *domain.Billboard
func (_e *MockBillboardRepository_Expecter) UpdateBillboard(ctx interface{}, b interface{}) *MockBillboardRepository_UpdateBillboard_Call {
	return &MockBillboardRepository_UpdateBillboard_Call{Call: _e.mock.On("UpdateBillboard", ctx, b)}
}

func (_c *MockBillboardRepository_UpdateBillboard_Call) Run(run func(ctx context.Context, b *domain.Billboard)) *MockBillboardRepository_UpdateBillboard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Billboard))
	})
	return _c
}

func (_c *MockBillboardRepository_UpdateBillboard_Call) Return(_a0 error) *MockBillboardRepository_UpdateBillboard_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBillboardRepository_UpdateBillboard_Call) RunAndReturn(run func(context.Context, *domain.Billboard) error) *MockBillboardRepository_UpdateBillboard_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBillboardRepository creates a new instance of MockBillboardRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBillboardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBillboardRepository {
	m := &MockBillboardRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
