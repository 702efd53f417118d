package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	args := m.Called(ctx, transcript, instruction)
	return args.String(0), args.Error(1)
}
