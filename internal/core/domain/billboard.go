package domain

import "time"

// BookingType controls how a billboard is reserved.
type BookingType string

const (
	BookingDirect  BookingType = "direct"
	BookingBidding BookingType = "bidding"
)

// Billboard is an advertising surface listed by an owner.
type Billboard struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"ownerId"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Location    string      `json:"location"`
	City        string      `json:"city"`
	Type        string      `json:"type"`
	Size        *string     `json:"size,omitempty"`
	Price       float64     `json:"price"`
	PriceType   string      `json:"priceType"` // day, week, month
	WeekPrice   *float64    `json:"weekPrice,omitempty"`
	MonthPrice  *float64    `json:"monthPrice,omitempty"`
	BookingType BookingType `json:"bookingType"`
	Image       *string     `json:"image,omitempty"` // public path of the stored image
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// BillboardFilter narrows a listing. Nil fields impose no constraint and
// the price range is inclusive on both bounds.
type BillboardFilter struct {
	City        *string
	Type        *string
	BookingType *string
	MinPrice    *float64
	MaxPrice    *float64
}

// BillboardPatch carries the fields of a partial update. Nil fields keep
// their prior value.
type BillboardPatch struct {
	Title       *string
	Description *string
	Location    *string
	City        *string
	Type        *string
	Size        *string
	Price       *float64
	PriceType   *string
	WeekPrice   *float64
	MonthPrice  *float64
	BookingType *BookingType
}

// Apply copies every set field of p onto b.
func (p BillboardPatch) Apply(b *Billboard) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = p.Description
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.City != nil {
		b.City = *p.City
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Size != nil {
		b.Size = p.Size
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.PriceType != nil {
		b.PriceType = *p.PriceType
	}
	if p.WeekPrice != nil {
		b.WeekPrice = p.WeekPrice
	}
	if p.MonthPrice != nil {
		b.MonthPrice = p.MonthPrice
	}
	if p.BookingType != nil {
		b.BookingType = *p.BookingType
	}
}
