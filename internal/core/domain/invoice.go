package domain

import (
	"fmt"
	"time"
)

const (
	InvoiceUnpaid = "unpaid"
	InvoicePaid   = "paid"
)

// Invoice bills exactly one booking. Amount is copied from the booking
// price when the invoice is created and never recomputed.
type Invoice struct {
	ID            int64      `json:"id"`
	BookingID     int64      `json:"bookingId"`
	InvoiceNumber string     `json:"invoiceNumber"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// InvoiceNumber derives the invoice number of a booking: "INV-" followed
// by the booking id zero-padded to 8 digits.
func InvoiceNumber(bookingID int64) string {
	return fmt.Sprintf("INV-%08d", bookingID)
}

// InvoiceFor returns the unpaid invoice that accompanies a new booking.
func InvoiceFor(b Booking) Invoice {
	return Invoice{
		BookingID:     b.ID,
		InvoiceNumber: InvoiceNumber(b.ID),
		Amount:        b.Price,
		Status:        InvoiceUnpaid,
	}
}

// BookingWithInvoice is the unit produced by the booking pipeline.
type BookingWithInvoice struct {
	Booking Booking `json:"booking"`
	Invoice Invoice `json:"invoice"`
}
