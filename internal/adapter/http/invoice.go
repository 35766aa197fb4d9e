package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
)

func (h *Handler) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	list, err := h.svc.Invoices.List(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(list))
}

// handleDownloadInvoice streams the rendered invoice as an attachment.
func (h *Handler) handleDownloadInvoice(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.svc.Invoices.Download(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(doc.Body); err != nil {
		h.logger.Warn("write invoice document", slog.Int64("invoice_id", id), slog.Any("error", err))
	}
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	inv, err := h.svc.Invoices.MarkPaid(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inv)
}
