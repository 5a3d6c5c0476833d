package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/mongodemo/internal/person"
)

// Step names in execution order.
const (
	StepInsertOne         = "insert_one"
	StepInsertMany        = "insert_many"
	StepFindByName        = "find_by_name"
	StepFindOneByFood     = "find_one_by_food"
	StepFindByID          = "find_by_id"
	StepMutateAndSave     = "mutate_and_save"
	StepFindOneAndUpdate  = "find_one_and_update"
	StepFindByIDAndDelete = "find_by_id_and_delete"
	StepDeleteMany        = "delete_many"
	StepSearch            = "search"
)

// Absent is the value of a step whose single-document lookup matched nothing.
type Absent struct{}

func (Absent) String() string { return "absent" }

// Step is one operation of the demo.
type Step struct {
	Name string
	Run  func(ctx context.Context, store Store, state *State) (any, error)
}

// State carries results from earlier steps to later ones.
type State struct {
	Inserted    *person.Person
	InsertedAll []person.Person
	NameMatches []person.Person
	Loaded      *person.Person
	Updated     *person.Person
}

// Steps returns the demo steps for sc in execution order.
func Steps(sc Scenario) []Step {
	return []Step{
		{Name: StepInsertOne, Run: insertOne(sc)},
		{Name: StepInsertMany, Run: insertMany(sc)},
		{Name: StepFindByName, Run: findByName(sc)},
		{Name: StepFindOneByFood, Run: findOneByFood(sc)},
		{Name: StepFindByID, Run: findByID},
		{Name: StepMutateAndSave, Run: mutateAndSave(sc)},
		{Name: StepFindOneAndUpdate, Run: findOneAndUpdate(sc)},
		{Name: StepFindByIDAndDelete, Run: findByIDAndDelete},
		{Name: StepDeleteMany, Run: deleteMany(sc)},
		{Name: StepSearch, Run: search(sc)},
	}
}

func insertOne(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, state *State) (any, error) {
		p := sc.Single.Clone()
		if err := store.Create(ctx, &p); err != nil {
			return nil, err
		}
		state.Inserted = &p
		return &p, nil
	}
}

func insertMany(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, state *State) (any, error) {
		batch := make([]*person.Person, len(sc.Many))
		for i := range sc.Many {
			p := sc.Many[i].Clone()
			batch[i] = &p
		}
		if err := store.CreateMany(ctx, batch); err != nil {
			return nil, err
		}
		created := make([]person.Person, len(batch))
		for i, p := range batch {
			created[i] = *p
		}
		state.InsertedAll = created
		return created, nil
	}
}

func findByName(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, state *State) (any, error) {
		found, err := store.Find(ctx, person.Query{Filter: person.ByName(sc.FindByName)})
		if err != nil {
			return nil, err
		}
		state.NameMatches = found
		return found, nil
	}
}

func findOneByFood(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, _ *State) (any, error) {
		p, err := store.FindOne(ctx, person.WithFavoriteFood(sc.FindOneFood))
		if errors.Is(err, person.ErrNotFound) {
			return Absent{}, nil
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// findByID looks up the first name match. An empty match list stops the run.
// A match that is gone by now is reported as absent and stops the next step.
func findByID(ctx context.Context, store Store, state *State) (any, error) {
	if len(state.NameMatches) == 0 {
		return nil, fmt.Errorf("%w: %s returned no records", ErrMissingPrerequisite, StepFindByName)
	}
	state.Loaded = nil
	p, err := store.FindByID(ctx, state.NameMatches[0].ID)
	if errors.Is(err, person.ErrNotFound) {
		return Absent{}, nil
	}
	if err != nil {
		return nil, err
	}
	state.Loaded = p
	return p, nil
}

func mutateAndSave(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, state *State) (any, error) {
		if state.Loaded == nil {
			return nil, fmt.Errorf("%w: %s loaded no record", ErrMissingPrerequisite, StepFindByID)
		}
		p := state.Loaded.Clone()
		p.AddFavoriteFood(sc.AppendFood)
		if err := store.Save(ctx, &p); err != nil {
			return nil, err
		}
		state.Loaded = &p
		return &p, nil
	}
}

func findOneAndUpdate(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, state *State) (any, error) {
		p, err := store.FindOneAndUpdate(ctx, person.ByName(sc.UpdateName), person.SetAge(sc.UpdateAge))
		if errors.Is(err, person.ErrNotFound) {
			state.Updated = nil
			return Absent{}, nil
		}
		if err != nil {
			return nil, err
		}
		state.Updated = p
		return p, nil
	}
}

// findByIDAndDelete deletes the record updated by the previous step.
// Without one there is no id to delete by, and the run stops.
func findByIDAndDelete(ctx context.Context, store Store, state *State) (any, error) {
	if state.Updated == nil {
		return nil, fmt.Errorf("%w: %s matched no record", ErrMissingPrerequisite, StepFindOneAndUpdate)
	}
	p, err := store.FindByIDAndDelete(ctx, state.Updated.ID)
	if errors.Is(err, person.ErrNotFound) {
		return Absent{}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func deleteMany(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, _ *State) (any, error) {
		return store.DeleteMany(ctx, person.ByName(sc.DeleteName))
	}
}

func search(sc Scenario) func(context.Context, Store, *State) (any, error) {
	return func(ctx context.Context, store Store, _ *State) (any, error) {
		return store.Find(ctx, sc.Search.Query())
	}
}
