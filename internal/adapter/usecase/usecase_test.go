package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"selmore/internal/core/domain"
)

var (
	ctx     = context.Background()
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	fixedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	admin   = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	owner   = domain.Identity{UserID: 2, Role: domain.RoleOwner}
	client  = domain.Identity{UserID: 3, Role: domain.RoleClient}
	owner2  = domain.Identity{UserID: 4, Role: domain.RoleOwner}
	client2 = domain.Identity{UserID: 5, Role: domain.RoleClient}
)

func ptr[T any](v T) *T { return &v }

// memImages is an in-memory ImageStore.
type memImages struct {
	mu      sync.Mutex
	files   map[string][]byte
	removed []string
	n       int
	saveErr error
}

func newMemImages() *memImages {
	return &memImages{files: make(map[string][]byte)}
}

func (m *memImages) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	path := "/uploads/" + string(rune('a'+m.n-1)) + "-" + filename
	m.files[path] = body
	return path, nil
}

func (m *memImages) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, path)
	if _, ok := m.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(m.files, path)
	return nil
}

// textRenderer writes the invoice number as plain text.
type textRenderer struct{ err error }

func (r textRenderer) Render(w io.Writer, inv domain.Invoice) error {
	if r.err != nil {
		return r.err
	}
	_, err := io.Copy(w, bytes.NewBufferString(inv.InvoiceNumber))
	return err
}

func (textRenderer) ContentType() string { return "text/plain" }

// stubTokens issues "tok-<id>" tokens.
type stubTokens struct{}

func (stubTokens) Issue(id domain.Identity) (string, error) {
	return "tok-" + string(id.Role), nil
}

func (stubTokens) Verify(token string) (domain.Identity, error) {
	switch token {
	case "tok-client":
		return client, nil
	case "tok-owner":
		return owner, nil
	}
	return domain.Identity{}, domain.Auth("Invalid token")
}

// plainHasher prefixes passwords instead of hashing them.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}
