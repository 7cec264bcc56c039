package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docbrief/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Ingest(ctx context.Context, input service.IngestInput) (*service.IngestOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IngestOutput), args.Error(1)
}

func (m *MockDocumentService) Answer(ctx context.Context, extractedText, question string) (string, error) {
	args := m.Called(ctx, extractedText, question)
	return args.String(0), args.Error(1)
}
