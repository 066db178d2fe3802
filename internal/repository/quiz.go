package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitley/capquiz/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

// CreateQuiz inserts a fresh quiz row stamped with the current time and
// returns its id.
func (q *QuizR) CreateQuiz(ctx context.Context) (int64, error) {
	query := `INSERT INTO quizzes (date, score, questions_answered) VALUES (?, 0, 0)`

	date := time.Now().Format("2006-01-02 15:04:05")

	res, err := q.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to create quiz: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read quiz id: %w", err)
	}

	return id, nil
}

// StoreQuizQuestion appends the answer record for one question. Records are
// never updated or deleted; their insertion order is the question order.
func (q *QuizR) StoreQuizQuestion(ctx context.Context, quizID, stateID int64, userAnswer string) error {
	query := `INSERT INTO quiz_questions (quiz_id, state_id, user_answer) VALUES (?, ?, ?)`

	_, err := q.db.ExecContext(ctx, query, quizID, stateID, userAnswer)
	if err != nil {
		return fmt.Errorf("failed to store quiz question: %w", err)
	}

	return nil
}

// UpdateQuizProgress overwrites score, questions answered and the last
// submitted answer. Safe to call repeatedly with the same arguments.
func (q *QuizR) UpdateQuizProgress(ctx context.Context, quizID int64, score, questionsAnswered int, lastAnswer string) error {
	query := `UPDATE quizzes SET score = ?, questions_answered = ?, last_answer = ? WHERE id = ?`

	answer := sql.NullString{String: lastAnswer, Valid: lastAnswer != ""}

	_, err := q.db.ExecContext(ctx, query, score, questionsAnswered, answer, quizID)
	if err != nil {
		return fmt.Errorf("failed to update quiz %d: %w", quizID, err)
	}

	return nil
}

// QuizInProgress returns the most recent quiz with at least one answered
// question and fewer than models.QuestionsPerQuiz. Quizzes with zero answered
// questions are indistinguishable from abandoned fresh ones and are skipped.
// Returns sql.ErrNoRows when nothing is resumable.
func (q *QuizR) QuizInProgress(ctx context.Context) (models.Quiz, error) {
	query := `
		SELECT id, date, score, questions_answered, last_answer
		FROM quizzes
		WHERE questions_answered > 0 AND questions_answered < ?
		ORDER BY date DESC, id DESC
		LIMIT 1
	`

	var quiz models.Quiz
	if err := q.db.GetContext(ctx, &quiz, query, models.QuestionsPerQuiz); err != nil {
		return models.Quiz{}, err
	}

	return quiz, nil
}

// QuizStates returns the states already asked in a quiz, ordered by the
// insertion order of their answer records.
func (q *QuizR) QuizStates(ctx context.Context, quizID int64) ([]models.State, error) {
	query := `
		SELECT s.id, s.name, s.capital, s.city2, s.city3
		FROM states s
		JOIN quiz_questions qq ON s.id = qq.state_id
		WHERE qq.quiz_id = ?
		ORDER BY qq.id
	`

	states := make([]models.State, 0, models.QuestionsPerQuiz)
	if err := q.db.SelectContext(ctx, &states, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to retrieve quiz states: %w", err)
	}

	return states, nil
}

func (q *QuizR) PastResults(ctx context.Context) ([]models.QuizResult, error) {
	query := `SELECT id, date, score FROM quizzes ORDER BY date DESC, id DESC`

	results := make([]models.QuizResult, 0)
	if err := q.db.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to retrieve quiz results: %w", err)
	}

	return results, nil
}

func (q *QuizR) QuizStats(ctx context.Context) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN questions_answered = ? THEN 1 ELSE 0 END), 0) AS completed_count,
		COALESCE(MAX(CASE WHEN questions_answered = ? THEN score END), 0) AS best_score
	FROM quizzes`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query, models.QuestionsPerQuiz, models.QuestionsPerQuiz)
	if err != nil {
		return models.QuizStats{}, err
	}

	return stats, nil
}
