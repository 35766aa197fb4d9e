package domain

import (
	"fmt"
	"time"
)

const BookingConfirmed = "confirmed"

// DefaultBookingDuration is the length of a booking created from an
// accepted bid.
const DefaultBookingDuration = 30 * 24 * time.Hour

// Booking reserves a billboard for a client. OwnerID always equals the
// billboard's owner and ClientID the campaign's client.
type Booking struct {
	ID          int64     `json:"id"`
	CampaignID  *int64    `json:"campaignId"`
	BillboardID int64     `json:"billboardId"`
	OwnerID     int64     `json:"ownerId"`
	ClientID    int64     `json:"clientId"`
	Price       float64   `json:"price"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingFromBid builds the confirmed booking that results from accepting
// bid. The booking starts at now and lasts DefaultBookingDuration.
func BookingFromBid(bid Bid, campaign Campaign, billboard Billboard, now time.Time) Booking {
	campaignID := bid.CampaignID
	return Booking{
		CampaignID:  &campaignID,
		BillboardID: bid.BillboardID,
		OwnerID:     billboard.OwnerID,
		ClientID:    campaign.ClientID,
		Price:       bid.ClientBid,
		StartDate:   now,
		EndDate:     now.Add(DefaultBookingDuration),
		Status:      BookingConfirmed,
	}
}

// Scope restricts a booking-backed listing to one party. A zero Scope
// matches every row.
type Scope struct {
	OwnerID  *int64
	ClientID *int64
}

// Matches reports whether a booking falls inside the scope.
func (s Scope) Matches(b Booking) bool {
	if s.OwnerID != nil && b.OwnerID != *s.OwnerID {
		return false
	}
	if s.ClientID != nil && b.ClientID != *s.ClientID {
		return false
	}
	return true
}

func (s Scope) String() string {
	switch {
	case s.OwnerID != nil:
		return fmt.Sprintf("owner:%d", *s.OwnerID)
	case s.ClientID != nil:
		return fmt.Sprintf("client:%d", *s.ClientID)
	}
	return "all"
}
