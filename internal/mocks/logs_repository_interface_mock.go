// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/munchbox/shipment-service/internal/repository"
)

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
