package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// wordExtractor pulls raw text out of a Word document. Only the OOXML
// container (.docx) can actually be parsed; legacy binary .doc uploads fail
// inside the parser and surface as an extraction error, which matches how
// the rest of the pipeline treats malformed documents.
type wordExtractor struct{}

// NewWord returns the Word document extraction strategy.
func NewWord() Extractor {
	return &wordExtractor{}
}

func (w *wordExtractor) Extract(_ context.Context, data []byte, _ string) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, item)
		}
	}
	return sb.String(), nil
}
