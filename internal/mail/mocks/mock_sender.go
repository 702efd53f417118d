package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gopkg.in/gomail.v2"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg *gomail.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Share(ctx context.Context, summary string, recipients []string, subject string) error {
	args := m.Called(ctx, summary, recipients, subject)
	return args.Error(0)
}
