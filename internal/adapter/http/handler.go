package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"selmore/internal/config/configs"
	"selmore/internal/core/domain"
	"selmore/internal/core/port"
)

// Services groups the usecases served over HTTP.
type Services struct {
	Auth       port.AuthUseCase
	Billboards port.BillboardUseCase
	Campaigns  port.CampaignUseCase
	Bookings   port.BookingUseCase
	Invoices   port.InvoiceUseCase
}

// Options configure the router.
type Options struct {
	// Env is reported by the health check. Production hides internal error
	// details.
	Env        string
	Production bool

	CORSOrigins []string
	// UploadDir is served read-only under UploadPrefix.
	UploadDir      string
	UploadPrefix   string
	MaxUploadBytes int64

	RateLimit configs.RateLimit
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, resolves the caller identity, calls the
// usecases and formats their results or errors.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router

	// now is the clock used by the health check.
	now func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger, now: time.Now}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.recoverer)
	r.Use(h.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	var (
		rl           = opts.RateLimit
		apiLimit     = newIPLimiter(rl.Window, rl.MaxRequests)
		authLimit    = newIPLimiter(rl.AuthWindow, rl.AuthMaxRequests)
		uploadLimit  = newIPLimiter(rl.UploadWindow, rl.UploadMaxRequests)
		authenticate = h.authenticate
		owner        = requireRole(h, domain.RoleOwner)
		client       = requireRole(h, domain.RoleClient)
	)

	r.Get("/api/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if opts.UploadDir != "" {
		prefix := "/" + strings.Trim(opts.UploadPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, noDirListing(http.FileServer(http.Dir(opts.UploadDir)))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.limit(apiLimit, "Too many requests from this IP, please try again later.", false))

		r.Get("/", h.handleIndex)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.limit(authLimit, "Too many authentication attempts, please try again later.", true)).
				Post("/register", h.handleRegister)
			r.With(h.limit(authLimit, "Too many authentication attempts, please try again later.", true)).
				Post("/login", h.handleLogin)
			r.With(authenticate).Get("/me", h.handleMe)
		})

		r.Route("/billboards", func(r chi.Router) {
			r.Get("/", h.handleListBillboards)
			r.Get("/{id}", h.handleGetBillboard)

			r.Group(func(r chi.Router) {
				r.Use(authenticate, owner)
				upload := h.limit(uploadLimit, "Too many file uploads, please try again later.", false)
				r.With(upload).Post("/", h.handleCreateBillboard)
				r.With(upload).Put("/{id}", h.handleUpdateBillboard)
				r.Delete("/{id}", h.handleDeleteBillboard)
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Use(authenticate)
			r.With(client).Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
		})

		r.Route("/bids", func(r chi.Router) {
			r.Use(authenticate)
			r.With(client).Post("/", h.handlePlaceBid)
			r.With(requireRole(h, domain.RoleOwner, domain.RoleAdmin)).Post("/{bidID}/accept", h.handleAcceptBid)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", h.handleListBookings)
			r.Post("/", h.handleCreateBooking)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", h.handleListInvoices)
			r.Get("/{id}/download", h.handleDownloadInvoice)
			r.Post("/{id}/pay", h.handleMarkPaid)
		})
	})

	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleNotFound)
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// noDirListing answers 404 for directory paths instead of listing them.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
