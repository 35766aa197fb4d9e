package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/core/port/mocks"
)

func billboardForm() port.BillboardForm {
	return port.BillboardForm{
		Title:     ptr("Times Square"),
		Location:  ptr("1560 Broadway"),
		City:      ptr("New York"),
		Type:      ptr("digital"),
		Price:     ptr("500"),
		PriceType: ptr("day"),
	}
}

func TestCreateBillboard(t *testing.T) {
	repo := mocks.NewMockBillboardRepository(t)
	images := newMemImages()
	svc := NewBillboardUseCase(repo, images, logger)

	repo.On("CreateBillboard", mock.Anything, mock.AnythingOfType("*domain.Billboard")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Billboard).ID = 7
		}).
		Return(nil)

	b, err := svc.Create(ctx, owner, billboardForm(), &port.Upload{Filename: "ts.png", Content: strings.NewReader("png")})
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, owner.UserID, b.OwnerID)
	assert.Equal(t, 500.0, b.Price)
	assert.Equal(t, domain.BookingDirect, b.BookingType)
	require.NotNil(t, b.Image)
	assert.Contains(t, images.files, *b.Image)
}

func TestCreateBillboardRejects(t *testing.T) {
	t.Run("client role", func(t *testing.T) {
		svc := NewBillboardUseCase(mocks.NewMockBillboardRepository(t), newMemImages(), logger)
		_, err := svc.Create(ctx, client, billboardForm(), nil)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewBillboardUseCase(mocks.NewMockBillboardRepository(t), newMemImages(), logger)
		form := billboardForm()
		form.City = nil
		form.PriceType = ptr("  ")
		_, err := svc.Create(ctx, owner, form, nil)
		assert.EqualError(t, err, "Missing required fields: city, priceType")
	})

	t.Run("negative price", func(t *testing.T) {
		svc := NewBillboardUseCase(mocks.NewMockBillboardRepository(t), newMemImages(), logger)
		form := billboardForm()
		form.Price = ptr("-1")
		_, err := svc.Create(ctx, owner, form, nil)
		assert.EqualError(t, err, "price must be greater than 0")
	})

	t.Run("price beyond storable range", func(t *testing.T) {
		svc := NewBillboardUseCase(mocks.NewMockBillboardRepository(t), newMemImages(), logger)
		form := billboardForm()
		form.WeekPrice = ptr("1e12")
		_, err := svc.Create(ctx, owner, form, nil)
		assert.EqualError(t, err, "weekPrice must be between 0.01 and 999999999999.99")
	})

	t.Run("amounts rounded to cents", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		svc := NewBillboardUseCase(repo, newMemImages(), logger)
		repo.EXPECT().CreateBillboard(mock.Anything, mock.Anything).Return(nil)
		form := billboardForm()
		form.Price = ptr("499.999")
		form.MonthPrice = ptr("12000.129")
		b, err := svc.Create(ctx, owner, form, nil)
		require.NoError(t, err)
		assert.Equal(t, 500.0, b.Price)
		assert.Equal(t, 12000.13, *b.MonthPrice)
	})

	t.Run("bad booking type", func(t *testing.T) {
		svc := NewBillboardUseCase(mocks.NewMockBillboardRepository(t), newMemImages(), logger)
		form := billboardForm()
		form.BookingType = ptr("auction")
		_, err := svc.Create(ctx, owner, form, nil)
		assert.EqualError(t, err, "Invalid bookingType. Must be one of: direct, bidding")
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		images := newMemImages()
		svc := NewBillboardUseCase(repo, images, logger)
		repo.On("CreateBillboard", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Create(ctx, owner, billboardForm(), &port.Upload{Filename: "x.png", Content: strings.NewReader("x")})
		require.Error(t, err)
		assert.Empty(t, images.files)
		assert.Len(t, images.removed, 1)
	})
}

func TestGetBillboardNotFound(t *testing.T) {
	repo := mocks.NewMockBillboardRepository(t)
	svc := NewBillboardUseCase(repo, newMemImages(), logger)
	repo.On("GetBillboard", mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.Get(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateBillboard(t *testing.T) {
	stored := func() *domain.Billboard {
		return &domain.Billboard{
			ID: 7, OwnerID: owner.UserID, Title: "Old", City: "New York",
			Price: 500, PriceType: "day", BookingType: domain.BookingDirect,
			Image: ptr("/uploads/old.png"),
		}
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		images := newMemImages()
		images.files["/uploads/old.png"] = []byte("old")
		svc := NewBillboardUseCase(repo, images, logger)

		repo.On("GetBillboard", mock.Anything, int64(7)).Return(stored(), nil)
		repo.On("UpdateBillboard", mock.Anything, mock.Anything).Return(nil)

		b, err := svc.Update(ctx, owner, 7, port.BillboardForm{Title: ptr("New"), BookingType: ptr("bidding")},
			&port.Upload{Filename: "new.png", Content: strings.NewReader("new")})
		require.NoError(t, err)
		assert.Equal(t, "New", b.Title)
		assert.Equal(t, "New York", b.City)
		assert.Equal(t, 500.0, b.Price)
		assert.Equal(t, domain.BookingBidding, b.BookingType)
		assert.NotEqual(t, "/uploads/old.png", *b.Image)
		assert.NotContains(t, images.files, "/uploads/old.png")
	})

	t.Run("other owner", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		svc := NewBillboardUseCase(repo, newMemImages(), logger)
		repo.On("GetBillboard", mock.Anything, int64(7)).Return(stored(), nil)

		_, err := svc.Update(ctx, owner2, 7, port.BillboardForm{Title: ptr("Mine")}, nil)
		require.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "UpdateBillboard", mock.Anything, mock.Anything)
	})

	t.Run("admin", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		svc := NewBillboardUseCase(repo, newMemImages(), logger)
		repo.On("GetBillboard", mock.Anything, int64(7)).Return(stored(), nil)
		repo.On("UpdateBillboard", mock.Anything, mock.Anything).Return(nil)

		b, err := svc.Update(ctx, admin, 7, port.BillboardForm{Price: ptr("750.5")}, nil)
		require.NoError(t, err)
		assert.Equal(t, 750.5, b.Price)
		assert.Equal(t, owner.UserID, b.OwnerID)
	})
}

func TestDeleteBillboard(t *testing.T) {
	stored := &domain.Billboard{ID: 7, OwnerID: owner.UserID, Image: ptr("/uploads/gone.png")}

	t.Run("owner", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		images := newMemImages()
		svc := NewBillboardUseCase(repo, images, logger)
		repo.On("GetBillboard", mock.Anything, int64(7)).Return(stored, nil)
		repo.On("DeleteBillboard", mock.Anything, int64(7)).Return(nil)

		// the image file is already missing; deletion still succeeds
		require.NoError(t, svc.Delete(ctx, owner, 7))
		assert.Equal(t, []string{"/uploads/gone.png"}, images.removed)
	})

	t.Run("client", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		svc := NewBillboardUseCase(repo, newMemImages(), logger)
		repo.On("GetBillboard", mock.Anything, int64(7)).Return(stored, nil)

		err := svc.Delete(ctx, client, 7)
		require.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "DeleteBillboard", mock.Anything, mock.Anything)
	})

	t.Run("has bookings", func(t *testing.T) {
		repo := mocks.NewMockBillboardRepository(t)
		images := newMemImages()
		svc := NewBillboardUseCase(repo, images, logger)
		repo.EXPECT().GetBillboard(mock.Anything, int64(7)).Return(stored, nil)
		repo.EXPECT().DeleteBillboard(mock.Anything, int64(7)).Return(domain.Conflict("Billboard has bookings"))

		err := svc.Delete(ctx, owner, 7)
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Empty(t, images.removed)
	})
}
