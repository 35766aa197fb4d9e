package configs

// Upload defines where billboard images are stored and how they are
// served.
type Upload struct {
	Dir          string `env:"DIR" envDefault:"uploads"`
	PublicPrefix string `env:"PUBLIC_PREFIX" envDefault:"/uploads"`
	// MaxBytes caps the size of a multipart request body.
	MaxBytes int64 `env:"MAX_BYTES" envDefault:"10485760"`
}
