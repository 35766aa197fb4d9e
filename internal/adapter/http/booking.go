package httpadapter

import (
	"net/http"

	"selmore/internal/core/port"
	"selmore/internal/validate"
)

type bidRequest struct {
	CampaignID  flexString `json:"campaignId"`
	BillboardID flexString `json:"billboardId"`
	ClientBid   flexString `json:"clientBid"`
}

func (req bidRequest) input() (port.BidInput, error) {
	err := validate.Required(
		validate.Field{Name: "campaignId", Value: req.CampaignID.value},
		validate.Field{Name: "billboardId", Value: req.BillboardID.value},
		validate.Field{Name: "clientBid", Value: req.ClientBid.value},
	)
	if err != nil {
		return port.BidInput{}, err
	}
	campaignID, err := req.CampaignID.id("campaignId")
	if err != nil {
		return port.BidInput{}, err
	}
	billboardID, err := req.BillboardID.id("billboardId")
	if err != nil {
		return port.BidInput{}, err
	}
	amount, err := req.ClientBid.float("clientBid")
	if err != nil {
		return port.BidInput{}, err
	}
	return port.BidInput{CampaignID: *campaignID, BillboardID: *billboardID, ClientBid: *amount}, nil
}

// bookingRequest is a direct booking. ownerId is accepted for
// compatibility and ignored: the owner always comes from the billboard.
type bookingRequest struct {
	CampaignID  flexString `json:"campaignId"`
	BillboardID flexString `json:"billboardId"`
	OwnerID     flexString `json:"ownerId"`
	ClientID    flexString `json:"clientId"`
	Price       flexString `json:"price"`
	StartDate   flexString `json:"startDate"`
	EndDate     flexString `json:"endDate"`
}

func (req bookingRequest) input() (port.BookingInput, error) {
	var (
		in  port.BookingInput
		err error
	)
	if in.CampaignID, err = req.CampaignID.id("campaignId"); err != nil {
		return in, err
	}
	billboardID, err := req.BillboardID.id("billboardId")
	if err != nil {
		return in, err
	}
	if billboardID != nil {
		in.BillboardID = *billboardID
	}
	if in.ClientID, err = req.ClientID.id("clientId"); err != nil {
		return in, err
	}
	price, err := req.Price.float("price")
	if err != nil {
		return in, err
	}
	if price != nil {
		in.Price = *price
	}
	if in.StartDate, err = req.StartDate.date("startDate"); err != nil {
		return in, err
	}
	if in.EndDate, err = req.EndDate.date("endDate"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *Handler) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req bidRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bid, err := h.svc.Bookings.PlaceBid(r.Context(), caller, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, bid)
}

func (h *Handler) handleAcceptBid(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	bidID, err := pathID(r, "bidID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Bookings.AcceptBid(r.Context(), caller, bidID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListBookings(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	list, err := h.svc.Bookings.ListBookings(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(list))
}

func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req bookingRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Bookings.CreateBooking(r.Context(), caller, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
