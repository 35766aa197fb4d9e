package configs

import "time"

// RateLimit configures the per-IP token buckets. The general limiter
// guards every /api route except the health check. The auth limiter
// additionally guards login and registration and only counts failed
// attempts. The upload limiter guards billboard writes.
type RateLimit struct {
	Window      time.Duration `env:"WINDOW" envDefault:"15m"`
	MaxRequests int           `env:"MAX_REQUESTS" envDefault:"100"`

	AuthWindow      time.Duration `env:"AUTH_WINDOW" envDefault:"15m"`
	AuthMaxRequests int           `env:"AUTH_MAX_REQUESTS" envDefault:"5"`

	UploadWindow      time.Duration `env:"UPLOAD_WINDOW" envDefault:"1h"`
	UploadMaxRequests int           `env:"UPLOAD_MAX_REQUESTS" envDefault:"20"`
}
