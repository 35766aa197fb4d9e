package httpadapter

import (
	"net/http"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

// campaignRequest accepts "name" as an alias of "title".
type campaignRequest struct {
	Title       flexString `json:"title"`
	Name        flexString `json:"name"`
	Description flexString `json:"description"`
	Budget      flexString `json:"budget"`
	StartDate   flexString `json:"startDate"`
	EndDate     flexString `json:"endDate"`
}

func (req campaignRequest) input() (port.CampaignInput, error) {
	in := port.CampaignInput{Title: req.Title.value, Description: req.Description.ptr()}
	if !req.Title.present() {
		in.Title = req.Name.value
	}

	var err error
	if in.Budget, err = req.Budget.float("budget"); err != nil {
		return in, err
	}
	if in.StartDate, err = req.StartDate.date("startDate"); err != nil {
		return in, err
	}
	if in.EndDate, err = req.EndDate.date("endDate"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req campaignRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), caller, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleListCampaigns answers with campaigns for clients, bids with their
// campaign for owners and an empty array for everybody else.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	list, err := h.svc.Campaigns.List(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	switch caller.Role {
	case domain.RoleClient:
		h.writeJSON(w, http.StatusOK, nonNil(list.Campaigns))
	case domain.RoleOwner:
		h.writeJSON(w, http.StatusOK, nonNil(list.Bids))
	default:
		h.writeJSON(w, http.StatusOK, []struct{}{})
	}
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// nonNil makes empty listings encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
