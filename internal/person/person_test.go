package person_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongodemo/internal/person"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    *person.Person
		err  error
	}{
		{"valid", &person.Person{Name: "Chalma"}, nil},
		{"name only spaces", &person.Person{Name: "   "}, person.ErrNameRequired},
		{"missing name", &person.Person{FavoriteFoods: []string{"pizza"}}, person.ErrNameRequired},
		{"nil", nil, person.ErrNilPerson},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNew(t *testing.T) {
	p := person.New("Chalma", 22, "tajine", "couscous")
	require.NotNil(t, p.Age)
	assert.Equal(t, 22, *p.Age)
	assert.Equal(t, []string{"tajine", "couscous"}, p.FavoriteFoods)

	noAge := person.New("Awa", -1)
	assert.Nil(t, noAge.Age)
}

func TestClone(t *testing.T) {
	p := person.New("Aissa", 30, "pizza", "pasta")
	c := p.Clone()

	c.AddFavoriteFood("ramen")
	*c.Age = 31

	assert.Equal(t, []string{"pizza", "pasta"}, p.FavoriteFoods)
	assert.Equal(t, 30, *p.Age)
	assert.True(t, c.HasFavoriteFood("ramen"))
	assert.False(t, p.HasFavoriteFood("ramen"))
}

func TestLogValue(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))

	p := person.New("Chalma", 22, "tajine")
	p.ID = bson.NewObjectID()
	log.Info("stored", slog.Any("person", p))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	got, ok := entry["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, p.ID.Hex(), got["id"])
	assert.Equal(t, "Chalma", got["name"])
	assert.EqualValues(t, 22, got["age"])
	assert.Equal(t, []any{"tajine"}, got["favoriteFoods"])
}

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()

	got, err := person.ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = person.ParseID("not-an-id")
	assert.ErrorIs(t, err, person.ErrInvalidID)
}

func TestSerializationOmitsMissingAge(t *testing.T) {
	p := person.Person{ID: bson.NewObjectID(), Name: "Abdoulaye", FavoriteFoods: []string{"burritos"}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"age"`)

	doc, err := bson.Marshal(p)
	require.NoError(t, err)
	_, lookupErr := bson.Raw(doc).LookupErr("age")
	assert.Error(t, lookupErr)
}
