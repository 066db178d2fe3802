package repository

import (
	"context"
	"fmt"

	"github.com/mwhitley/capquiz/internal/models"
)

type StatesR struct {
	db QueryI
}

func NewStatesRepository(db QueryI) *StatesR {
	return &StatesR{db: db}
}

// StoreState inserts a state and returns it with the store-assigned id.
func (s *StatesR) StoreState(ctx context.Context, state models.State) (models.State, error) {
	query := `INSERT INTO states (name, capital, city2, city3) VALUES (?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query, state.Name, state.Capital, state.City2, state.City3)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to store state %q: %w", state.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.State{}, fmt.Errorf("failed to read state id: %w", err)
	}
	state.ID = id

	return state, nil
}

func (s *StatesR) AllStates(ctx context.Context) ([]models.State, error) {
	query := `SELECT id, name, capital, city2, city3 FROM states`

	states := make([]models.State, 0, 50)
	if err := s.db.SelectContext(ctx, &states, query); err != nil {
		return nil, fmt.Errorf("failed to retrieve states: %w", err)
	}

	return states, nil
}
