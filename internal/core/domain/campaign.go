package domain

import "time"

const CampaignActive = "active"

// Campaign represents an advertiser's campaign. It is owned by the client
// that created it.
type Campaign struct {
	ID          int64      `json:"id"`
	ClientID    int64      `json:"clientId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      string     `json:"status"` // active, paused, ended
	CreatedAt   time.Time  `json:"createdAt"`
}

// CampaignWithBids is a campaign together with every bid placed under it.
type CampaignWithBids struct {
	Campaign
	Bids []Bid `json:"bids"`
}
