// Package pdf renders invoices as single page PDF documents.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"selmore/internal/core/domain"
)

// ContentType is the MIME type of rendered documents.
const ContentType = "application/pdf"

// Renderer draws an invoice with a centered title followed by its number,
// amount, status and issue date.
type Renderer struct {
	// Compress enables stream compression. It is off in tests so the text
	// can be searched in the output.
	Compress bool
}

// NewRenderer returns a renderer producing compressed documents.
func NewRenderer() *Renderer {
	return &Renderer{Compress: true}
}

func (r *Renderer) ContentType() string { return ContentType }

// Render writes the invoice document to w.
func (r *Renderer) Render(w io.Writer, inv domain.Invoice) error {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(r.Compress)
	doc.SetTitle(inv.InvoiceNumber, true)
	doc.SetCreator("selmore", true)
	doc.AddPage()

	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()

	doc.SetFont("Helvetica", "", 20)
	doc.CellFormat(pageW-left-right, 24, "Invoice", "", 1, "C", false, 0, "")
	doc.Ln(14)

	doc.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Invoice #: " + inv.InvoiceNumber,
		fmt.Sprintf("Amount: $%.2f", inv.Amount),
		"Status: " + inv.Status,
		"Date: " + inv.CreatedAt.UTC().Format(time.RFC1123),
	} {
		doc.Cell(0, 16, line)
		doc.Ln(16)
	}
	if inv.PaidAt != nil {
		doc.Cell(0, 16, "Paid: "+inv.PaidAt.UTC().Format(time.RFC1123))
		doc.Ln(16)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
