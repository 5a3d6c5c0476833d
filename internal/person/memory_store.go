package person

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore keeps people in memory with the same semantics as MongoStore.
// It is used by tests and by the in-memory storage mode of the demo.
type MemoryStore struct {
	mu     sync.RWMutex
	people []Person // insertion order, like a collection scan without an index
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, p *Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if s.indexOf(p.ID) >= 0 {
		return ErrCreate
	}
	s.people = append(s.people, p.Clone())
	return nil
}

func (s *MemoryStore) CreateMany(ctx context.Context, people []*Person) error {
	if len(people) == 0 {
		return ErrNoPeople
	}
	for _, p := range people {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range people {
		if p.ID.IsZero() {
			p.ID = bson.NewObjectID()
		}
		if s.indexOf(p.ID) >= 0 {
			return ErrCreate
		}
	}
	for _, p := range people {
		s.people = append(s.people, p.Clone())
	}
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, q Query) ([]Person, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := []Person{}
	for _, p := range s.people {
		if q.Filter.Match(p) {
			out = append(out, p.Clone())
		}
	}
	s.mu.RUnlock()

	if len(q.Sort) > 0 {
		slices.SortStableFunc(out, func(a, b Person) int {
			for _, sf := range q.Sort {
				c := compareField(a, b, sf.Field)
				if sf.Descending {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	for i := range out {
		for _, f := range q.Exclude {
			switch f {
			case FieldName:
				out[i].Name = ""
			case FieldAge:
				out[i].Age = nil
			case FieldFavoriteFoods:
				out[i].FavoriteFoods = nil
			}
		}
	}
	return out, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, f Filter) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if f.Match(p) {
			c := p.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByID(ctx context.Context, id bson.ObjectID) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	c := s.people[i].Clone()
	return &c, nil
}

func (s *MemoryStore) Save(ctx context.Context, p *Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID.IsZero() {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(p.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.people[i] = p.Clone()
	return nil
}

func (s *MemoryStore) FindOneAndUpdate(ctx context.Context, f Filter, u Update) (*Person, error) {
	if u.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.people {
		if f.Match(s.people[i]) {
			u.Apply(&s.people[i])
			c := s.people[i].Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByIDAndDelete(ctx context.Context, id bson.ObjectID) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	deleted := s.people[i]
	s.people = slices.Delete(s.people, i, i+1)
	return &deleted, nil
}

func (s *MemoryStore) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.people)
	s.people = slices.DeleteFunc(s.people, f.Match)
	return int64(before - len(s.people)), nil
}

func (s *MemoryStore) Count(ctx context.Context, f Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, p := range s.people {
		if f.Match(p) {
			n++
		}
	}
	return n, nil
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(id bson.ObjectID) int {
	return slices.IndexFunc(s.people, func(p Person) bool { return p.ID == id })
}

func compareField(a, b Person, field string) int {
	switch field {
	case FieldName:
		return cmp.Compare(a.Name, b.Name)
	case FieldAge:
		// Missing values sort first, as in MongoDB.
		switch {
		case a.Age == nil && b.Age == nil:
			return 0
		case a.Age == nil:
			return -1
		case b.Age == nil:
			return 1
		}
		return cmp.Compare(*a.Age, *b.Age)
	case FieldID:
		return cmp.Compare(a.ID.Hex(), b.ID.Hex())
	}
	return 0
}
