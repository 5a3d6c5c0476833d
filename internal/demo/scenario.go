package demo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mongodemo/internal/person"
)

//go:embed scenario.yaml
var defaultScenario []byte

// Scenario holds the literal records and query values used by the steps.
type Scenario struct {
	Single      person.Person   `yaml:"single"`
	Many        []person.Person `yaml:"many"`
	FindByName  string          `yaml:"findByName"`
	FindOneFood string          `yaml:"findOneFood"`
	AppendFood  string          `yaml:"appendFood"`
	UpdateName  string          `yaml:"updateName"`
	UpdateAge   int             `yaml:"updateAge"`
	DeleteName  string          `yaml:"deleteName"`
	Search      Search          `yaml:"search"`
}

// Search describes the compound query of the last step.
type Search struct {
	Food    string   `yaml:"food"`
	SortBy  string   `yaml:"sortBy"`
	Limit   int64    `yaml:"limit"`
	Exclude []string `yaml:"exclude"`
}

// Query converts the search into a store query.
func (s Search) Query() person.Query {
	q := person.Query{
		Filter:  person.WithFavoriteFood(s.Food),
		Limit:   s.Limit,
		Exclude: slices.Clone(s.Exclude),
	}
	if s.SortBy != "" {
		q.Sort = []person.SortField{person.SortBy(s.SortBy)}
	}
	return q
}

// DefaultScenario returns the embedded scenario.
// It panics if the embedded file is broken, which only a bad build can cause.
func DefaultScenario() Scenario {
	sc, err := ParseScenario(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("embedded scenario: %v", err))
	}
	return sc
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Join(ErrInvalidScenario, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML into a validated scenario. Unknown keys are rejected.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, errors.Join(ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks that every record can be persisted and every query literal is set.
func (sc Scenario) Validate() error {
	var errs []error
	if err := sc.Single.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("single: %w", err))
	}
	if len(sc.Many) == 0 {
		errs = append(errs, errors.New("many: at least one record is required"))
	}
	for i := range sc.Many {
		if err := sc.Many[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("many[%d]: %w", i, err))
		}
	}
	for _, f := range []struct{ name, value string }{
		{"findByName", sc.FindByName},
		{"findOneFood", sc.FindOneFood},
		{"appendFood", sc.AppendFood},
		{"updateName", sc.UpdateName},
		{"deleteName", sc.DeleteName},
		{"search.food", sc.Search.Food},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s: value is required", f.name))
		}
	}
	if sc.Search.Limit <= 0 {
		errs = append(errs, errors.New("search.limit: must be greater than zero"))
	}
	if err := sc.Search.Query().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("search: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidScenario}, errs...)...)
	}
	return nil
}

// names returns every distinct name the scenario inserts.
func (sc Scenario) names() []string {
	names := []string{sc.Single.Name}
	for _, p := range sc.Many {
		if !slices.Contains(names, p.Name) {
			names = append(names, p.Name)
		}
	}
	return names
}
