package demo_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongodemo/internal/person"
)

// MockStore is a mock implementation of demo.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, p *person.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) CreateMany(ctx context.Context, people []*person.Person) error {
	args := m.Called(ctx, people)
	return args.Error(0)
}

func (m *MockStore) Find(ctx context.Context, q person.Query) ([]person.Person, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]person.Person), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, f person.Filter) (*person.Person, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockStore) FindByID(ctx context.Context, id bson.ObjectID) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, p *person.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) FindOneAndUpdate(ctx context.Context, f person.Filter, u person.Update) (*person.Person, error) {
	args := m.Called(ctx, f, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockStore) FindByIDAndDelete(ctx context.Context, id bson.ObjectID) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockStore) DeleteMany(ctx context.Context, f person.Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}
