package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local stores uploaded images in a directory served under a public URL
// prefix. File names are random; only the extension of the upload is kept.
type Local struct {
	dir    string
	prefix string
}

// NewLocal creates dir if needed and returns a store publishing files under
// prefix, e.g. "/uploads".
func NewLocal(dir, prefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, prefix: "/" + strings.Trim(prefix, "/")}, nil
}

// Dir is the directory files are written to.
func (s *Local) Dir() string { return s.dir }

// Save writes r to a new file and returns its public path.
func (s *Local) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(filename)))

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}
	return path.Join(s.prefix, name), nil
}

// Remove deletes the file behind publicPath. Missing files and paths
// outside the prefix are ignored.
func (s *Local) Remove(_ context.Context, publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, s.prefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
