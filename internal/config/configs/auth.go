package configs

import "time"

// DevJWTSecret is the signing key used when AUTH_JWT_SECRET is unset. It is
// rejected in production.
const DevJWTSecret = "selmore-dev-secret"

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"selmore-dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	// BcryptCost is the bcrypt work factor for new password hashes.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
}
