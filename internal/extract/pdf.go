package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor pulls plain text out of a PDF byte buffer. Layout fidelity is
// best-effort: text runs are concatenated in document order.
type pdfExtractor struct{}

// NewPDF returns the PDF extraction strategy.
func NewPDF() Extractor {
	return &pdfExtractor{}
}

func (p *pdfExtractor) Extract(_ context.Context, data []byte, _ string) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
