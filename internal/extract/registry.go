package extract

import "summaryapi/internal/model"

// kindByMIME is the closed allow-list of accepted upload content types.
// Adding a supported type means adding exactly one entry here.
var kindByMIME = map[string]model.SourceKind{
	"text/plain":         model.SourcePlain,
	"application/pdf":    model.SourcePDF,
	"application/msword": model.SourceWord,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": model.SourceWord,
	"audio/mpeg": model.SourceAudio,
	"audio/wav":  model.SourceAudio,
	"audio/mp4":  model.SourceAudio,
	"audio/m4a":  model.SourceAudio,
	"audio/webm": model.SourceAudio,
	"audio/ogg":  model.SourceAudio,
}

// KindForMIME maps a declared content type to its extraction strategy.
// Pure dispatch, no side effects. The second return is false when the type
// is not in the allow-list.
func KindForMIME(mimeType string) (model.SourceKind, bool) {
	k, ok := kindByMIME[mimeType]
	return k, ok
}
