package httpadapter

import "net/http"

// APIVersion is reported by the API index.
const APIVersion = "1.0.0"

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Environment: h.opts.Env,
	})
}

func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, indexResponse{
		Message: "Selmore Billboard Marketplace API",
		Version: APIVersion,
		Endpoints: map[string]string{
			"auth":       "/api/auth",
			"billboards": "/api/billboards",
			"campaigns":  "/api/campaigns",
			"bids":       "/api/bids",
			"bookings":   "/api/bookings",
			"invoices":   "/api/invoices",
			"health":     "/api/health",
		},
	})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, http.StatusNotFound, "Route "+r.URL.RequestURI()+" not found")
}
