package mail

import (
	"bytes"
	"html/template"
	"strings"
)

// summaryTemplate is the fixed message layout. The summary body is escaped
// before newline conversion, so model output cannot inject markup.
const summaryTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Meeting Summary</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px;">
    {{.Body}}
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    This summary was generated using AI-powered meeting notes summarizer.
  </p>
</div>`

var summaryTpl = template.Must(template.New("summary").Parse(summaryTemplate))

// renderHTML produces the message body for a summary, converting newlines
// to line breaks for HTML display.
func renderHTML(summary string) (string, error) {
	escaped := template.HTMLEscapeString(summary)
	body := template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))

	var buf bytes.Buffer
	if err := summaryTpl.Execute(&buf, struct{ Body template.HTML }{Body: body}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
