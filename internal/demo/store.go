package demo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongodemo/internal/person"
)

// Store is the set of person operations the demo exercises.
// Implemented by person.MongoStore and person.MemoryStore.
type Store interface {
	Create(ctx context.Context, p *person.Person) error
	CreateMany(ctx context.Context, people []*person.Person) error
	Find(ctx context.Context, q person.Query) ([]person.Person, error)
	FindOne(ctx context.Context, f person.Filter) (*person.Person, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*person.Person, error)
	Save(ctx context.Context, p *person.Person) error
	FindOneAndUpdate(ctx context.Context, f person.Filter, u person.Update) (*person.Person, error)
	FindByIDAndDelete(ctx context.Context, id bson.ObjectID) (*person.Person, error)
	DeleteMany(ctx context.Context, f person.Filter) (int64, error)
}
