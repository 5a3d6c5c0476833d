package person

import (
	"log/slog"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Person is a single record of the people collection.
type Person struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id" yaml:"-"`
	Name          string        `bson:"name" json:"name" yaml:"name"`
	Age           *int          `bson:"age,omitempty" json:"age,omitempty" yaml:"age,omitempty"`
	FavoriteFoods []string      `bson:"favoriteFoods,omitempty" json:"favoriteFoods,omitempty" yaml:"favoriteFoods,omitempty"`
}

// New returns a Person with the given fields. Pass a negative age to leave it unset.
func New(name string, age int, foods ...string) Person {
	p := Person{Name: name, FavoriteFoods: foods}
	if age >= 0 {
		p.Age = &age
	}
	return p
}

// Validate reports whether the record can be persisted.
func (p *Person) Validate() error {
	if p == nil {
		return ErrNilPerson
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// HasFavoriteFood reports whether food is one of the favorite foods.
func (p *Person) HasFavoriteFood(food string) bool {
	return slices.Contains(p.FavoriteFoods, food)
}

// AddFavoriteFood appends food to the favorite foods in memory.
// The change is persisted only by a subsequent Save.
func (p *Person) AddFavoriteFood(food string) {
	p.FavoriteFoods = append(p.FavoriteFoods, food)
}

// Clone returns a deep copy.
func (p Person) Clone() Person {
	c := p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	c.FavoriteFoods = slices.Clone(p.FavoriteFoods)
	return c
}

// LogValue implements slog.LogValuer.
func (p Person) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	if !p.ID.IsZero() {
		attrs = append(attrs, slog.String("id", p.ID.Hex()))
	}
	attrs = append(attrs, slog.String("name", p.Name))
	if p.Age != nil {
		attrs = append(attrs, slog.Int("age", *p.Age))
	}
	attrs = append(attrs, slog.Any("favoriteFoods", p.FavoriteFoods))
	return slog.GroupValue(attrs...)
}

// ParseID parses a hex encoded identifier.
func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}
