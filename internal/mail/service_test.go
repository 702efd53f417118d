package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"summaryapi/internal/config"
	"summaryapi/internal/mail/mocks"
)

func configuredMail() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.gmail.com",
		Port:     587,
		Username: "sender@example.com",
		Password: "app-password",
	}
}

func TestShare_NotConfigured(t *testing.T) {
	sender := new(mocks.MockSender)
	svc := NewService(sender, config.MailConfig{})

	err := svc.Share(context.Background(), "summary", []string{"a@x.com"}, "")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "EMAIL_USER")
	assert.Contains(t, err.Error(), "EMAIL_PASS")
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestShare_InputValidation(t *testing.T) {
	sender := new(mocks.MockSender)
	svc := NewService(sender, configuredMail())

	assert.ErrorIs(t, svc.Share(context.Background(), "  ", []string{"a@x.com"}, ""), ErrEmptySummary)
	assert.ErrorIs(t, svc.Share(context.Background(), "summary", nil, ""), ErrNoRecipients)
	assert.ErrorIs(t, svc.Share(context.Background(), "summary", []string{}, ""), ErrNoRecipients)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestShare_BuildsSingleMessageForAllRecipients(t *testing.T) {
	sender := new(mocks.MockSender)
	svc := NewService(sender, configuredMail())

	var sent *gomail.Message
	sender.On("Send", mock.AnythingOfType("*gomail.Message")).Run(func(args mock.Arguments) {
		sent = args.Get(0).(*gomail.Message)
	}).Return(nil).Once()

	err := svc.Share(context.Background(), "line one\nline two", []string{"a@x.com", "b@y.com"}, "")

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"sender@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Meeting Summary"}, sent.GetHeader("Subject"))
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestShare_CustomSubject(t *testing.T) {
	sender := new(mocks.MockSender)
	svc := NewService(sender, configuredMail())

	var sent *gomail.Message
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(*gomail.Message)
	}).Return(nil).Once()

	require.NoError(t, svc.Share(context.Background(), "summary", []string{"a@x.com"}, "Sprint Review"))
	assert.Equal(t, []string{"Sprint Review"}, sent.GetHeader("Subject"))
}

func TestShare_SendErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		wantErr error
	}{
		{"bad credentials", errors.New("535 5.7.8 Username and Password not accepted"), ErrAuth},
		{"refused", errors.New("dial tcp 142.250.0.1:587: connection refused"), ErrConnection},
		{"unknown host", errors.New("dial tcp: lookup smtp.gmail.com: no such host"), ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mocks.MockSender)
			svc := NewService(sender, configuredMail())
			sender.On("Send", mock.Anything).Return(tt.sendErr).Once()

			err := svc.Share(context.Background(), "summary", []string{"a@x.com"}, "")

			assert.ErrorIs(t, err, tt.wantErr)
			// Single submission attempt, never retried.
			sender.AssertNumberOfCalls(t, "Send", 1)
		})
	}
}

func TestShare_UnrecognizedSendErrorIsWrapped(t *testing.T) {
	sender := new(mocks.MockSender)
	svc := NewService(sender, configuredMail())
	cause := errors.New("short write")
	sender.On("Send", mock.Anything).Return(cause)

	err := svc.Share(context.Background(), "summary", []string{"a@x.com"}, "")

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.NotErrorIs(t, err, ErrConnection)
}

func TestRenderHTML(t *testing.T) {
	html, err := renderHTML("first line\nsecond <b>line</b>")

	require.NoError(t, err)
	assert.Contains(t, html, "first line<br>second")
	// Summary content is escaped, not interpreted as markup.
	assert.Contains(t, html, "&lt;b&gt;line&lt;/b&gt;")
	assert.Contains(t, html, "Meeting Summary")
	assert.True(t, strings.Contains(html, "AI-powered meeting notes summarizer"))
}
