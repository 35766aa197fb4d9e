package usecase

import (
	"context"
	"strings"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/validate"
)

// CampaignUseCase manages client campaigns.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates the campaign service.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create stores an active campaign owned by the caller. The client id is
// always the caller's.
func (u *CampaignUseCase) Create(ctx context.Context, id domain.Identity, in port.CampaignInput) (*domain.Campaign, error) {
	if !id.HasRole(domain.RoleClient) {
		return nil, domain.Forbidden("Forbidden - Requires one of these roles: client")
	}
	if err := validate.Required(validate.Field{Name: "title", Value: in.Title}); err != nil {
		return nil, err
	}
	var budget *float64
	if in.Budget != nil {
		n, err := validate.Money(*in.Budget, "budget")
		if err != nil {
			return nil, err
		}
		budget = &n
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, domain.Validation("endDate must not be before startDate")
	}

	c := &domain.Campaign{
		ClientID:    id.UserID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Budget:      budget,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      domain.CampaignActive,
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the caller's view of campaigns: a client gets their own
// campaigns, an owner every bid placed on their billboards joined with its
// campaign, and any other role an empty list.
func (u *CampaignUseCase) List(ctx context.Context, id domain.Identity) (*port.CampaignList, error) {
	out := &port.CampaignList{
		Campaigns: []domain.Campaign{},
		Bids:      []domain.BidWithCampaign{},
	}
	switch id.Role {
	case domain.RoleClient:
		cs, err := u.repo.ListCampaignsByClient(ctx, id.UserID)
		if err != nil {
			return nil, err
		}
		if cs != nil {
			out.Campaigns = cs
		}
	case domain.RoleOwner:
		bids, err := u.repo.ListBidsForOwner(ctx, id.UserID)
		if err != nil {
			return nil, err
		}
		if bids != nil {
			out.Bids = bids
		}
	}
	return out, nil
}

// Get returns a campaign with its bids. A client may only read their own
// campaigns; owners and admins may read any.
func (u *CampaignUseCase) Get(ctx context.Context, id domain.Identity, campaignID int64) (*domain.CampaignWithBids, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("Campaign not found")
	}
	if id.HasRole(domain.RoleClient) {
		if err = domain.Authorize(id, c.ClientID); err != nil {
			return nil, err
		}
	}
	bids, err := u.repo.ListBidsByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if bids == nil {
		bids = []domain.Bid{}
	}
	return &domain.CampaignWithBids{Campaign: *c, Bids: bids}, nil
}
