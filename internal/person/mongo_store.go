package person

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the collection people are stored in.
const CollectionName = "people"

// MongoStore persists people in a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store backed by coll.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// NewMongoStoreFromDatabase returns a store backed by the people collection of db.
func NewMongoStoreFromDatabase(db *mongo.Database) *MongoStore {
	return NewMongoStore(db.Collection(CollectionName))
}

// Create validates p, assigns an ID when missing and inserts it.
func (s *MongoStore) Create(ctx context.Context, p *Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return errors.Join(ErrCreate, err)
	}
	return nil
}

// CreateMany validates every record before inserting all of them in one call.
func (s *MongoStore) CreateMany(ctx context.Context, people []*Person) error {
	if len(people) == 0 {
		return ErrNoPeople
	}
	for _, p := range people {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, p := range people {
		if p.ID.IsZero() {
			p.ID = bson.NewObjectID()
		}
	}
	if _, err := s.coll.InsertMany(ctx, people); err != nil {
		return errors.Join(ErrCreate, err)
	}
	return nil
}

// Find returns every person matching q, in the order and shape q asks for.
func (s *MongoStore) Find(ctx context.Context, q Query) ([]Person, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	cur, err := s.coll.Find(ctx, q.Filter.BSON(), q.FindOptions())
	if err != nil {
		return nil, errors.Join(ErrQuery, err)
	}
	people := []Person{}
	if err := cur.All(ctx, &people); err != nil {
		return nil, errors.Join(ErrQuery, err)
	}
	return people, nil
}

// FindOne returns the first person matching f.
func (s *MongoStore) FindOne(ctx context.Context, f Filter) (*Person, error) {
	return s.decodeOne(s.coll.FindOne(ctx, f.BSON()), ErrQuery)
}

// FindByID returns the person with the given id.
func (s *MongoStore) FindByID(ctx context.Context, id bson.ObjectID) (*Person, error) {
	return s.decodeOne(s.coll.FindOne(ctx, byID(id)), ErrQuery)
}

// Save replaces the stored document with p as a whole.
func (s *MongoStore) Save(ctx context.Context, p *Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID.IsZero() {
		return ErrInvalidID
	}
	res, err := s.coll.ReplaceOne(ctx, byID(p.ID), p)
	if err != nil {
		return errors.Join(ErrUpdate, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindOneAndUpdate atomically applies u to the first match of f and returns
// the document as it is after the update.
func (s *MongoStore) FindOneAndUpdate(ctx context.Context, f Filter, u Update) (*Person, error) {
	if u.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.decodeOne(s.coll.FindOneAndUpdate(ctx, f.BSON(), u.BSON(), opts), ErrUpdate)
}

// FindByIDAndDelete deletes the person with the given id and returns it.
func (s *MongoStore) FindByIDAndDelete(ctx context.Context, id bson.ObjectID) (*Person, error) {
	return s.decodeOne(s.coll.FindOneAndDelete(ctx, byID(id)), ErrDelete)
}

// DeleteMany deletes every match of f and returns how many were deleted.
func (s *MongoStore) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, f.BSON())
	if err != nil {
		return 0, errors.Join(ErrDelete, err)
	}
	return res.DeletedCount, nil
}

// Count returns the number of matches of f.
func (s *MongoStore) Count(ctx context.Context, f Filter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, f.BSON())
	if err != nil {
		return 0, errors.Join(ErrQuery, err)
	}
	return n, nil
}

func (s *MongoStore) decodeOne(res *mongo.SingleResult, wrap error) (*Person, error) {
	var p Person
	if err := res.Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(wrap, err)
	}
	return &p, nil
}

func byID(id bson.ObjectID) bson.D {
	return bson.D{{Key: FieldID, Value: id}}
}
