// Package scenario keeps the in-memory list of saved parameter sets.
// The list lives only for the process; scenarios are snapshots taken on
// an explicit save and removed on an explicit delete, nothing else.
package scenario

import (
	"time"

	"github.com/Oseltamivir/Amortization-schedule/internal/model"

	"github.com/google/uuid"
)

// Store is an ordered, append-only-until-deleted list of scenarios.
// It is only ever touched from the single interactive goroutine, so it
// carries no locking.
type Store struct {
	scenarios []model.Scenario
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Save snapshots the given parameters and summary under a name and
// appends the scenario to the list. The stored copy is immutable from
// the caller's point of view.
func (s *Store) Save(name string, params model.LoanParameters, sum model.Summary) model.Scenario {
	sc := model.Scenario{
		ID:             uuid.NewString(),
		Name:           name,
		Params:         params,
		MonthlyPayment: sum.MonthlyPayment,
		TotalInterest:  sum.TotalInterest,
		InterestRatio:  sum.InterestRatio,
		SavedAt:        time.Now(),
	}
	s.scenarios = append(s.scenarios, sc)
	return sc
}

// Remove deletes the scenario with the given ID. Returns false if no
// scenario has that ID.
func (s *Store) Remove(id string) bool {
	for i, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the scenario with the given ID.
func (s *Store) Get(id string) (model.Scenario, bool) {
	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return model.Scenario{}, false
}

// Load returns the parameters stored under the given ID for the caller
// to install as the current parameters.
func (s *Store) Load(id string) (model.LoanParameters, bool) {
	sc, ok := s.Get(id)
	return sc.Params, ok
}

// All returns the scenarios in save order. The slice is a copy; the
// store's own entries cannot be mutated through it.
func (s *Store) All() []model.Scenario {
	out := make([]model.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Len returns the number of saved scenarios.
func (s *Store) Len() int {
	return len(s.scenarios)
}
