package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"summaryapi/internal/model"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	return args.String(0), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Extract(ctx context.Context, up model.Upload) (model.Transcript, error) {
	args := m.Called(ctx, up)
	if args.Get(0) == nil {
		return model.Transcript{}, args.Error(1)
	}
	return args.Get(0).(model.Transcript), args.Error(1)
}
