package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docbrief/internal/domain"
)

// MockTextDetector is a mock implementation of port.TextDetector.
type MockTextDetector struct {
	mock.Mock
}

func (m *MockTextDetector) DetectInline(ctx context.Context, data []byte) ([]domain.Block, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Block), args.Error(1)
}

func (m *MockTextDetector) DetectStored(ctx context.Context, bucket, key string) ([]domain.Block, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Block), args.Error(1)
}
