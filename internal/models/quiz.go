package models

import "database/sql"

// QuestionsPerQuiz is the fixed length of every quiz.
const QuestionsPerQuiz = 6

// Quiz is one quiz attempt. A quiz with 0 < QuestionsAnswered < QuestionsPerQuiz
// is resumable after a restart; once QuestionsAnswered reaches QuestionsPerQuiz
// it is terminal and stays in storage as history.
type Quiz struct {
	ID                int64          `db:"id"`
	Date              string         `db:"date"`
	Score             int            `db:"score"`
	QuestionsAnswered int            `db:"questions_answered"`
	LastAnswer        sql.NullString `db:"last_answer"`
}

// QuizResult is one row of the history list.
type QuizResult struct {
	ID    int64  `db:"id"`
	Date  string `db:"date"`
	Score int    `db:"score"`
}

type QuizStats struct {
	TotalCount     int `db:"total_count"`
	CompletedCount int `db:"completed_count"`
	BestScore      int `db:"best_score"`
}

// Question is the current prompt shown to the user. Choices holds the
// capital and both distractors in display order.
type Question struct {
	StateName string
	Choices   []string
	Number    int
	Total     int
}

type AnswerResult struct {
	Done    bool
	Correct bool
	Score   int
	Total   int
}
