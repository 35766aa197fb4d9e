package pdf

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selmore/internal/core/domain"
)

func TestRender(t *testing.T) {
	inv := domain.Invoice{
		ID:            1,
		BookingID:     42,
		InvoiceNumber: domain.InvoiceNumber(42),
		Amount:        750,
		Status:        domain.InvoiceUnpaid,
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	r := &Renderer{}
	require.NoError(t, r.Render(&buf, inv))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	for _, want := range []string{
		"Invoice #: INV-00000042",
		"Amount: $750.00",
		"Status: unpaid",
		"Date: Sat, 01 Mar 2025 12:00:00 UTC",
	} {
		assert.Contains(t, string(out), want)
	}
	assert.Equal(t, "application/pdf", r.ContentType())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := NewRenderer().Render(failingWriter{}, domain.Invoice{InvoiceNumber: "INV-00000001"})
	require.Error(t, err)
}
