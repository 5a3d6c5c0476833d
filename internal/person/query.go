package person

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Field names as stored in the collection.
const (
	FieldID            = "_id"
	FieldName          = "name"
	FieldAge           = "age"
	FieldFavoriteFoods = "favoriteFoods"
)

// Filter selects people. Unset fields do not constrain the match; set fields
// are combined with AND.
type Filter struct {
	Name         *string
	FavoriteFood *string
}

// ByName matches people whose name equals name exactly.
func ByName(name string) Filter {
	return Filter{Name: &name}
}

// WithFavoriteFood matches people whose favorite foods contain food.
func WithFavoriteFood(food string) Filter {
	return Filter{FavoriteFood: &food}
}

// And returns a filter requiring both f and other. Fields set in other take precedence.
func (f Filter) And(other Filter) Filter {
	if other.Name != nil {
		f.Name = other.Name
	}
	if other.FavoriteFood != nil {
		f.FavoriteFood = other.FavoriteFood
	}
	return f
}

// BSON renders the filter document. An equality match against an array
// field in MongoDB is a membership test, which is what favoriteFoods needs.
func (f Filter) BSON() bson.D {
	d := bson.D{}
	if f.Name != nil {
		d = append(d, bson.E{Key: FieldName, Value: *f.Name})
	}
	if f.FavoriteFood != nil {
		d = append(d, bson.E{Key: FieldFavoriteFoods, Value: *f.FavoriteFood})
	}
	return d
}

// Match reports whether p satisfies the filter.
func (f Filter) Match(p Person) bool {
	if f.Name != nil && p.Name != *f.Name {
		return false
	}
	if f.FavoriteFood != nil && !p.HasFavoriteFood(*f.FavoriteFood) {
		return false
	}
	return true
}

// Update is a partial modification applied server side.
type Update struct {
	Age *int
}

// SetAge sets the age field.
func SetAge(age int) Update {
	return Update{Age: &age}
}

// IsEmpty reports whether the update sets nothing.
func (u Update) IsEmpty() bool {
	return u.Age == nil
}

// BSON renders the update document.
func (u Update) BSON() bson.D {
	set := bson.D{}
	if u.Age != nil {
		set = append(set, bson.E{Key: FieldAge, Value: *u.Age})
	}
	return bson.D{{Key: "$set", Value: set}}
}

// Apply applies the update to p in memory.
func (u Update) Apply(p *Person) {
	if u.Age != nil {
		age := *u.Age
		p.Age = &age
	}
}

// SortField orders results by a single field.
type SortField struct {
	Field      string
	Descending bool
}

// SortBy orders ascending by field.
func SortBy(field string) SortField { return SortField{Field: field} }

// SortByDesc orders descending by field.
func SortByDesc(field string) SortField { return SortField{Field: field, Descending: true} }

// Query is a filter with sort, limit and field exclusion.
type Query struct {
	Filter  Filter
	Sort    []SortField
	Limit   int64
	Exclude []string
}

// Validate checks that sort and projection fields are known.
func (q Query) Validate() error {
	for _, s := range q.Sort {
		if !knownField(s.Field) {
			return ErrUnsupportedField
		}
	}
	for _, f := range q.Exclude {
		// _id exclusion would leave records without their handle.
		if f == FieldID || !knownField(f) {
			return ErrUnsupportedField
		}
	}
	return nil
}

// FindOptions renders sort, limit and projection for the driver.
func (q Query) FindOptions() *options.FindOptionsBuilder {
	opts := options.Find()
	if len(q.Sort) > 0 {
		sort := make(bson.D, 0, len(q.Sort))
		for _, s := range q.Sort {
			dir := 1
			if s.Descending {
				dir = -1
			}
			sort = append(sort, bson.E{Key: s.Field, Value: dir})
		}
		opts.SetSort(sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if len(q.Exclude) > 0 {
		projection := make(bson.D, 0, len(q.Exclude))
		for _, f := range q.Exclude {
			projection = append(projection, bson.E{Key: f, Value: 0})
		}
		opts.SetProjection(projection)
	}
	return opts
}

func knownField(f string) bool {
	switch f {
	case FieldID, FieldName, FieldAge, FieldFavoriteFoods:
		return true
	}
	return false
}
