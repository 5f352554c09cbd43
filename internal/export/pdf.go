package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Renderer is the document collaborator: it consumes a draw-op sequence and
// produces the binary artifact, returning its path.
type Renderer interface {
	Render(ops []Op, filename string) (string, error)
}

// PDFRenderer renders ops onto A4 pages with go-pdf/fpdf.
type PDFRenderer struct {
	storagePath string
}

func NewPDFRenderer(storagePath string) *PDFRenderer {
	return &PDFRenderer{storagePath: storagePath}
}

func (r *PDFRenderer) Render(ops []Op, filename string) (string, error) {
	if err := os.MkdirAll(r.storagePath, 0755); err != nil {
		return "", fmt.Errorf("export: create storage dir: %w", err)
	}
	filePath := filepath.Join(r.storagePath, filename)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, op := range ops {
		switch op.Kind {
		case OpText:
			pdf.SetFont("Helvetica", op.Style, op.Size)
			if op.Muted {
				pdf.SetTextColor(100, 100, 100)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			x := op.X
			switch op.Align {
			case AlignCenter:
				x -= pdf.GetStringWidth(op.Text) / 2
			case AlignRight:
				x -= pdf.GetStringWidth(op.Text)
			}
			pdf.Text(x, op.Y, op.Text)
		case OpRule:
			pdf.SetDrawColor(0, 0, 0)
			pdf.Line(op.X, op.Y, op.X2, op.Y)
		case OpPageBreak:
			pdf.AddPage()
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("export: write file: %w", err)
	}
	return filePath, nil
}

var _ Renderer = (*PDFRenderer)(nil)

// FileName builds "<Business>_<label>_<timestamp>.pdf". Spaces are collapsed
// to keep the name shell-friendly.
func FileName(businessName, label string, now time.Time) string {
	business := strings.ReplaceAll(strings.TrimSpace(businessName), " ", "-")
	return fmt.Sprintf("%s_%s_%s.pdf", business, label, now.Format("2006-01-02-15-04-05"))
}

// RangeLabel converts a filter range into its filename segment, matching the
// document naming the register has always produced.
func RangeLabel(rng string) string {
	if rng == "last" {
		return "Last_Bill"
	}
	// "1week" -> "1_week", "3months" -> "3_months", "all" stays "all"
	i := 0
	for i < len(rng) && rng[i] >= '0' && rng[i] <= '9' {
		i++
	}
	if i > 0 && i < len(rng) {
		return rng[:i] + "_" + rng[i:]
	}
	return rng
}
