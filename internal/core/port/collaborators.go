package port

import (
	"context"
	"io"

	"selmore/internal/core/domain"
)

// ImageStore keeps uploaded billboard images.
type ImageStore interface {
	// Save stores the content under a server-chosen name derived from
	// filename and returns the public path recorded on the billboard.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes the image at publicPath. A missing file is not an
	// error.
	Remove(ctx context.Context, publicPath string) error
}

// InvoiceRenderer writes a printable invoice document.
type InvoiceRenderer interface {
	Render(w io.Writer, inv domain.Invoice) error
	ContentType() string
}

// TokenIssuer signs and verifies bearer tokens carrying an Identity.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
