package usecase

import (
	"context"
	"log/slog"
	"strings"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/validate"
)

// BillboardUseCase manages billboard listings and their images.
type BillboardUseCase struct {
	repo   port.BillboardRepository
	images port.ImageStore
	logger *slog.Logger
}

// NewBillboardUseCase creates the listing service.
func NewBillboardUseCase(repo port.BillboardRepository, images port.ImageStore, logger *slog.Logger) *BillboardUseCase {
	return &BillboardUseCase{repo: repo, images: images, logger: logger}
}

// List returns every billboard matching f.
func (u *BillboardUseCase) List(ctx context.Context, f domain.BillboardFilter) ([]domain.Billboard, error) {
	return u.repo.ListBillboards(ctx, f)
}

// Get returns one billboard.
func (u *BillboardUseCase) Get(ctx context.Context, id int64) (*domain.Billboard, error) {
	b, err := u.repo.GetBillboard(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("Not found")
	}
	return b, nil
}

// Create lists a new billboard owned by the caller, who must be an owner.
// bookingType defaults to direct.
func (u *BillboardUseCase) Create(ctx context.Context, id domain.Identity, form port.BillboardForm, image *port.Upload) (*domain.Billboard, error) {
	if !id.HasRole(domain.RoleOwner) {
		return nil, domain.Forbidden("Forbidden - Requires one of these roles: owner")
	}
	err := validate.Required(
		validate.Field{Name: "title", Value: deref(form.Title)},
		validate.Field{Name: "location", Value: deref(form.Location)},
		validate.Field{Name: "city", Value: deref(form.City)},
		validate.Field{Name: "type", Value: deref(form.Type)},
		validate.Field{Name: "price", Value: deref(form.Price)},
		validate.Field{Name: "priceType", Value: deref(form.PriceType)},
	)
	if err != nil {
		return nil, err
	}
	patch, err := parseBillboardForm(form)
	if err != nil {
		return nil, err
	}

	b := &domain.Billboard{OwnerID: id.UserID, BookingType: domain.BookingDirect}
	patch.Apply(b)

	if image != nil {
		path, err := u.images.Save(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, err
		}
		b.Image = &path
	}
	if err = u.repo.CreateBillboard(ctx, b); err != nil {
		u.discardImage(ctx, b.Image)
		return nil, err
	}

	u.logger.Info("billboard created", slog.Int64("billboard_id", b.ID), slog.Int64("owner_id", b.OwnerID))
	return b, nil
}

// Update applies the provided fields to a billboard owned by the caller.
// Omitted fields keep their prior value. A new image replaces the old one.
func (u *BillboardUseCase) Update(ctx context.Context, id domain.Identity, billboardID int64, form port.BillboardForm, image *port.Upload) (*domain.Billboard, error) {
	b, err := u.Get(ctx, billboardID)
	if err != nil {
		return nil, err
	}
	if err = domain.Authorize(id, b.OwnerID); err != nil {
		return nil, err
	}
	patch, err := parseBillboardForm(form)
	if err != nil {
		return nil, err
	}
	patch.Apply(b)

	oldImage := b.Image
	if image != nil {
		path, err := u.images.Save(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, err
		}
		b.Image = &path
	}
	if err = u.repo.UpdateBillboard(ctx, b); err != nil {
		if image != nil {
			u.discardImage(ctx, b.Image)
		}
		return nil, err
	}
	if image != nil {
		u.discardImage(ctx, oldImage)
	}
	return b, nil
}

// Delete removes a billboard owned by the caller together with its image.
// A billboard that still has bookings cannot be deleted.
func (u *BillboardUseCase) Delete(ctx context.Context, id domain.Identity, billboardID int64) error {
	b, err := u.Get(ctx, billboardID)
	if err != nil {
		return err
	}
	if err = domain.Authorize(id, b.OwnerID); err != nil {
		return err
	}
	if err = u.repo.DeleteBillboard(ctx, b.ID); err != nil {
		return err
	}
	u.discardImage(ctx, b.Image)
	u.logger.Info("billboard deleted", slog.Int64("billboard_id", b.ID))
	return nil
}

// discardImage removes a stored image. Failures are logged and otherwise
// ignored.
func (u *BillboardUseCase) discardImage(ctx context.Context, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.images.Remove(ctx, *path); err != nil {
		u.logger.Warn("remove image", slog.String("path", *path), slog.Any("error", err))
	}
}

// parseBillboardForm converts the raw form into a patch. Empty strings
// count as absent.
func parseBillboardForm(form port.BillboardForm) (domain.BillboardPatch, error) {
	var (
		p   domain.BillboardPatch
		err error
	)
	p.Title = present(form.Title)
	p.Description = present(form.Description)
	p.Location = present(form.Location)
	p.City = present(form.City)
	p.Type = present(form.Type)
	p.Size = present(form.Size)
	p.PriceType = present(form.PriceType)

	if p.Price, err = parseAmount(form.Price, "price"); err != nil {
		return p, err
	}
	if p.WeekPrice, err = parseAmount(form.WeekPrice, "weekPrice"); err != nil {
		return p, err
	}
	if p.MonthPrice, err = parseAmount(form.MonthPrice, "monthPrice"); err != nil {
		return p, err
	}
	if bt := present(form.BookingType); bt != nil {
		if err = validate.OneOf(*bt, "bookingType", string(domain.BookingDirect), string(domain.BookingBidding)); err != nil {
			return p, err
		}
		v := domain.BookingType(*bt)
		p.BookingType = &v
	}
	return p, nil
}

func parseAmount(s *string, field string) (*float64, error) {
	v := present(s)
	if v == nil {
		return nil, nil
	}
	n, err := validate.Number(*v, field)
	if err != nil {
		return nil, err
	}
	if n, err = validate.Money(n, field); err != nil {
		return nil, err
	}
	return &n, nil
}

func present(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
