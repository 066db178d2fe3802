package models

// State is one quiz subject: the capital is the correct answer,
// city2 and city3 are the distractors.
type State struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Capital string `db:"capital"`
	City2   string `db:"city2"`
	City3   string `db:"city3"`
}
