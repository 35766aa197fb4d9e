package mocks

import (
	context "context"

	domain "selmore/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockCampaignRepository is a mock type for the CampaignRepository type
type MockCampaignRepository struct {
	mock.Mock
}

type MockCampaignRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCampaignRepository) EXPECT() *MockCampaignRepository_Expecter {
	return &MockCampaignRepository_Expecter{mock: &_m.Mock}
}

// CreateBid provides a mock function with given fields: ctx, b
func (_m *MockCampaignRepository) CreateBid(ctx context.Context, b *domain.Bid) error {
	ret := _m.Called(ctx, b)

	if len(ret) == 0 {
		panic("no return value specified for CreateBid")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Bid) error); ok {
		r0 = rf(ctx, b)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCampaignRepository_CreateBid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateBid'
type MockCampaignRepository_CreateBid_Call struct {
	*mock.Call
}

// CreateBid is a helper method to define mock.On call
//   - ctx context.Context
//   - b *domain.Bid
func (_e *MockCampaignRepository_Expecter) CreateBid(ctx interface{}, b interface{}) *MockCampaignRepository_CreateBid_Call {
	return &MockCampaignRepository_CreateBid_Call{Call: _e.mock.On("CreateBid", ctx, b)}
}

func (_c *MockCampaignRepository_CreateBid_Call) Run(run func(ctx context.Context, b *domain.Bid)) *MockCampaignRepository_CreateBid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Bid))
	})
	return _c
}

func (_c *MockCampaignRepository_CreateBid_Call) Return(_a0 error) *MockCampaignRepository_CreateBid_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCampaignRepository_CreateBid_Call) RunAndReturn(run func(context.Context, *domain.Bid) error) *MockCampaignRepository_CreateBid_Call {
	_c.Call.Return(run)
	return _c
}

// CreateCampaign provides a mock function with given fields: ctx, c
func (_m *MockCampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	ret := _m.Called(ctx, c)

	if len(ret) == 0 {
		panic("no return value specified for CreateCampaign")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Campaign) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCampaignRepository_CreateCampaign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCampaign'
type MockCampaignRepository_CreateCampaign_Call struct {
	*mock.Call
}

// CreateCampaign is a helper method to define mock.On call
//   - ctx context.Context
//   - c *domain.Campaign
func (_e *MockCampaignRepository_Expecter) CreateCampaign(ctx interface{}, c interface{}) *MockCampaignRepository_CreateCampaign_Call {
	return &MockCampaignRepository_CreateCampaign_Call{Call: _e.mock.On("CreateCampaign", ctx, c)}
}

func (_c *MockCampaignRepository_CreateCampaign_Call) Run(run func(ctx context.Context, c *domain.Campaign)) *MockCampaignRepository_CreateCampaign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Campaign))
	})
	return _c
}

func (_c *MockCampaignRepository_CreateCampaign_Call) Return(_a0 error) *MockCampaignRepository_CreateCampaign_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCampaignRepository_CreateCampaign_Call) RunAndReturn(run func(context.Context, *domain.Campaign) error) *MockCampaignRepository_CreateCampaign_Call {
	_c.Call.Return(run)
	return _c
}

// GetBid provides a mock function with given fields: ctx, id
func (_m *MockCampaignRepository) GetBid(ctx context.Context, id int64) (*domain.Bid, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetBid")
	}

	var (
		r0 *domain.Bid
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Bid, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Bid); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Bid)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCampaignRepository_GetBid_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBid'
type MockCampaignRepository_GetBid_Call struct {
	*mock.Call
}

// GetBid is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockCampaignRepository_Expecter) GetBid(ctx interface{}, id interface{}) *MockCampaignRepository_GetBid_Call {
	return &MockCampaignRepository_GetBid_Call{Call: _e.mock.On("GetBid", ctx, id)}
}

func (_c *MockCampaignRepository_GetBid_Call) Run(run func(ctx context.Context, id int64)) *MockCampaignRepository_GetBid_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockCampaignRepository_GetBid_Call) Return(_a0 *domain.Bid, _a1 error) *MockCampaignRepository_GetBid_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCampaignRepository_GetBid_Call) RunAndReturn(run func(context.Context, int64) (*domain.Bid, error)) *MockCampaignRepository_GetBid_Call {
	_c.Call.Return(run)
	return _c
}

// GetCampaign provides a mock function with given fields: ctx, id
func (_m *MockCampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetCampaign")
	}

	var (
		r0 *domain.Campaign
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Campaign, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Campaign); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Campaign)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCampaignRepository_GetCampaign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCampaign'
type MockCampaignRepository_GetCampaign_Call struct {
	*mock.Call
}

// GetCampaign is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockCampaignRepository_Expecter) GetCampaign(ctx interface{}, id interface{}) *MockCampaignRepository_GetCampaign_Call {
	return &MockCampaignRepository_GetCampaign_Call{Call: _e.mock.On("GetCampaign", ctx, id)}
}

func (_c *MockCampaignRepository_GetCampaign_Call) Run(run func(ctx context.Context, id int64)) *MockCampaignRepository_GetCampaign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockCampaignRepository_GetCampaign_Call) Return(_a0 *domain.Campaign, _a1 error) *MockCampaignRepository_GetCampaign_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCampaignRepository_GetCampaign_Call) RunAndReturn(run func(context.Context, int64) (*domain.Campaign, error)) *MockCampaignRepository_GetCampaign_Call {
	_c.Call.Return(run)
	return _c
}

// ListBidsByCampaign provides a mock function with given fields: ctx, campaignID
func (_m *MockCampaignRepository) ListBidsByCampaign(ctx context.Context, campaignID int64) ([]domain.Bid, error) {
	ret := _m.Called(ctx, campaignID)

	if len(ret) == 0 {
		panic("no return value specified for ListBidsByCampaign")
	}

	var (
		r0 []domain.Bid
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Bid, error)); ok {
		return rf(ctx, campaignID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.Bid); ok {
		r0 = rf(ctx, campaignID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Bid)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, campaignID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCampaignRepository_ListBidsByCampaign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBidsByCampaign'
type MockCampaignRepository_ListBidsByCampaign_Call struct {
	*mock.Call
}

// ListBidsByCampaign is a helper method to define mock.On call
//   - ctx context.Context
//   - campaignID int64
func (_e *MockCampaignRepository_Expecter) ListBidsByCampaign(ctx interface{}, campaignID interface{}) *MockCampaignRepository_ListBidsByCampaign_Call {
	return &MockCampaignRepository_ListBidsByCampaign_Call{Call: _e.mock.On("ListBidsByCampaign", ctx, campaignID)}
}

func (_c *MockCampaignRepository_ListBidsByCampaign_Call) Run(run func(ctx context.Context, campaignID int64)) *MockCampaignRepository_ListBidsByCampaign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockCampaignRepository_ListBidsByCampaign_Call) Return(_a0 []domain.Bid, _a1 error) *MockCampaignRepository_ListBidsByCampaign_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCampaignRepository_ListBidsByCampaign_Call) RunAndReturn(run func(context.Context, int64) ([]domain.Bid, error)) *MockCampaignRepository_ListBidsByCampaign_Call {
	_c.Call.Return(run)
	return _c
}

// ListBidsForOwner provides a mock function with given fields: ctx, ownerID
func (_m *MockCampaignRepository) ListBidsForOwner(ctx context.Context, ownerID int64) ([]domain.BidWithCampaign, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for ListBidsForOwner")
	}

	var (
		r0 []domain.BidWithCampaign
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.BidWithCampaign, error)); ok {
		return rf(ctx, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.BidWithCampaign); ok {
		r0 = rf(ctx, ownerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.BidWithCampaign)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCampaignRepository_ListBidsForOwner_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBidsForOwner'
type MockCampaignRepository_ListBidsForOwner_Call struct {
	*mock.Call
}

// ListBidsForOwner is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID int64
func (_e *MockCampaignRepository_Expecter) ListBidsForOwner(ctx interface{}, ownerID interface{}) *MockCampaignRepository_ListBidsForOwner_Call {
	return &MockCampaignRepository_ListBidsForOwner_Call{Call: _e.mock.On("ListBidsForOwner", ctx, ownerID)}
}

func (_c *MockCampaignRepository_ListBidsForOwner_Call) Run(run func(ctx context.Context, ownerID int64)) *MockCampaignRepository_ListBidsForOwner_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockCampaignRepository_ListBidsForOwner_Call) Return(_a0 []domain.BidWithCampaign, _a1 error) *MockCampaignRepository_ListBidsForOwner_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCampaignRepository_ListBidsForOwner_Call) RunAndReturn(run func(context.Context, int64) ([]domain.BidWithCampaign, error)) *MockCampaignRepository_ListBidsForOwner_Call {
	_c.Call.Return(run)
	return _c
}

// ListCampaignsByClient provides a mock function with given fields: ctx, clientID
func (_m *MockCampaignRepository) ListCampaignsByClient(ctx context.Context, clientID int64) ([]domain.Campaign, error) {
	ret := _m.Called(ctx, clientID)

	if len(ret) == 0 {
		panic("no return value specified for ListCampaignsByClient")
	}

	var (
		r0 []domain.Campaign
		r1 error
	)
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Campaign, error)); ok {
		return rf(ctx, clientID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.Campaign); ok {
		r0 = rf(ctx, clientID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Campaign)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCampaignRepository_ListCampaignsByClient_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCampaignsByClient'
type MockCampaignRepository_ListCampaignsByClient_Call struct {
	*mock.Call
}

// ListCampaignsByClient is a helper method to define mock.On call
//   - ctx context.Context
//   - clientID int64
func (_e *MockCampaignRepository_Expecter) ListCampaignsByClient(ctx interface{}, clientID interface{}) *MockCampaignRepository_ListCampaignsByClient_Call {
	return &MockCampaignRepository_ListCampaignsByClient_Call{Call: _e.mock.On("ListCampaignsByClient", ctx, clientID)}
}

func (_c *MockCampaignRepository_ListCampaignsByClient_Call) Run(run func(ctx context.Context, clientID int64)) *MockCampaignRepository_ListCampaignsByClient_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockCampaignRepository_ListCampaignsByClient_Call) Return(_a0 []domain.Campaign, _a1 error) *MockCampaignRepository_ListCampaignsByClient_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCampaignRepository_ListCampaignsByClient_Call) RunAndReturn(run func(context.Context, int64) ([]domain.Campaign, error)) *MockCampaignRepository_ListCampaignsByClient_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCampaignRepository creates a new instance of MockCampaignRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCampaignRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCampaignRepository {
	m := &MockCampaignRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
