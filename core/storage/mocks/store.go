package mocks

import (
	"context"

	"translation-manager/core/tree"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of storage.Store
type Store struct {
	mock.Mock
}

func (m *Store) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Load(ctx context.Context, id string) (*tree.Value, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(*tree.Value); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Save(ctx context.Context, id string, doc *tree.Value) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *Store) Location(id string) string {
	return id + ".json"
}
