package domain

import "time"

type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
)

// Bid is an advertiser's offer for a billboard slot on behalf of a campaign.
type Bid struct {
	ID          int64     `json:"id"`
	CampaignID  int64     `json:"campaignId"`
	BillboardID int64     `json:"billboardId"`
	ClientBid   float64   `json:"clientBid"`
	Status      BidStatus `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BidWithCampaign is a bid joined with the campaign it was placed for. It
// is what an owner sees when listing campaigns.
type BidWithCampaign struct {
	Bid
	Campaign Campaign `json:"campaign"`
}
