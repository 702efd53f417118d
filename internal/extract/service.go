package extract

import (
	"context"
	"strings"

	"summaryapi/internal/model"
)

// Extractor is a strategy that converts a typed upload's bytes into plain
// text. The filename is passed through for strategies that need it (the
// transcription API sniffs the audio container from the extension).
type Extractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// Service normalizes uploads into plain-text transcripts.
type Service interface {
	// Extract validates the upload, dispatches to the matching extraction
	// strategy, and returns the normalized transcript. The upload's byte
	// buffer is owned by this call and not retained past its return.
	Extract(ctx context.Context, up model.Upload) (model.Transcript, error)
}

type service struct {
	pdf       Extractor
	word      Extractor
	audio     Extractor
	maxUpload int64
}

// NewService constructs the normalization pipeline from injected extraction
// strategies. The plain-text path needs no strategy; it decodes in place.
func NewService(pdf, word, audio Extractor, maxUploadBytes int64) Service {
	return &service{pdf: pdf, word: word, audio: audio, maxUpload: maxUploadBytes}
}

func (s *service) Extract(ctx context.Context, up model.Upload) (model.Transcript, error) {
	size := up.Size
	if n := int64(len(up.Data)); n > size {
		size = n
	}
	// Size gate comes first so oversized uploads never reach an extractor
	// or a remote call.
	if size > s.maxUpload {
		return model.Transcript{}, &SizeError{Size: size, Limit: s.maxUpload}
	}

	kind, ok := KindForMIME(up.ContentType)
	if !ok {
		return model.Transcript{}, &UnsupportedTypeError{MIME: up.ContentType}
	}

	var (
		text string
		err  error
	)
	switch kind {
	case model.SourcePlain:
		// Invalid byte sequences decode lossily to replacement characters
		// rather than rejecting the upload.
		text = strings.ToValidUTF8(string(up.Data), "�")
	case model.SourcePDF:
		text, err = s.pdf.Extract(ctx, up.Data, up.Filename)
	case model.SourceWord:
		text, err = s.word.Extract(ctx, up.Data, up.Filename)
	case model.SourceAudio:
		text, err = s.audio.Extract(ctx, up.Data, up.Filename)
	}
	if err != nil {
		return model.Transcript{}, &ExtractionError{MIME: up.ContentType, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return model.Transcript{}, ErrEmptyText
	}
	return model.Transcript{Text: text, Source: kind}, nil
}
