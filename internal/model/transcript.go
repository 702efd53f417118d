package model

// SourceKind classifies where a transcript's text came from. The set is
// closed: dispatch over it must handle every constant.
type SourceKind string

const (
	SourcePlain SourceKind = "plain"
	SourcePDF   SourceKind = "pdf"
	SourceWord  SourceKind = "docx"
	SourceAudio SourceKind = "audio"
)

// Upload is a single in-memory file submitted with a request. It lives only
// for the duration of extraction and is never persisted; the Data buffer is
// released when the extraction call returns.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Transcript is the normalized plain-text result of extraction, independent
// of the source format. Text is UTF-8 and non-empty after trimming.
type Transcript struct {
	Text   string
	Source SourceKind
}
