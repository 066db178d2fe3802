package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/mwhitley/capquiz/internal/models"
	"github.com/mwhitley/capquiz/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	// ErrNotEnoughStates is returned when the catalog holds fewer distinct
	// states than a quiz needs. Fatal for the start transition.
	ErrNotEnoughStates = errors.New("not enough states to start a quiz")

	// ErrNoAnswerSelected rejects an empty submission without any state change.
	ErrNoAnswerSelected = errors.New("no answer selected")

	// ErrQuizFinished is returned when answering a quiz that already reached
	// its last question.
	ErrQuizFinished = errors.New("quiz already finished")
)

type QuizRI interface {
	CreateQuiz(ctx context.Context) (int64, error)
	StoreQuizQuestion(ctx context.Context, quizID, stateID int64, userAnswer string) error
	UpdateQuizProgress(ctx context.Context, quizID int64, score, questionsAnswered int, lastAnswer string) error
	QuizInProgress(ctx context.Context) (models.Quiz, error)
	QuizStates(ctx context.Context, quizID int64) ([]models.State, error)
}

// ActiveQuiz is the live state of one quiz attempt. Its transitions are
// serialized by the embedded mutex: two Answer calls for the same quiz never
// interleave. The invariant Score <= Index <= models.QuestionsPerQuiz holds
// at every point.
type ActiveQuiz struct {
	mu     sync.Mutex
	ID     int64
	States []models.State
	Index  int
	Score  int
}

type QuizS struct {
	repo  QuizRI
	aux   StateRI
	cache *cache.Cache
	log   *zap.Logger
}

func NewQuizService(repo QuizRI, aux StateRI, cache *cache.Cache, log *zap.Logger) *QuizS {
	return &QuizS{
		repo:  repo,
		aux:   aux,
		cache: cache,
		log:   log,
	}
}

// StartQuiz draws models.QuestionsPerQuiz distinct states from the catalog
// and creates the quiz row. Unlike answer-flow writes, a failed insert here
// aborts the start: resume semantics need a real quiz id.
func (q *QuizS) StartQuiz(ctx context.Context) (*ActiveQuiz, error) {
	all, err := q.aux.AllStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state catalog: %w", err)
	}

	states, err := drawStates(all, models.QuestionsPerQuiz, nil)
	if err != nil {
		return nil, err
	}

	id, err := q.repo.CreateQuiz(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return &ActiveQuiz{
		ID:     id,
		States: states,
	}, nil
}

// ResumableQuiz reports the most recent interrupted quiz, if any. A quiz
// with zero answered questions is never resumable.
func (q *QuizS) ResumableQuiz(ctx context.Context) (models.Quiz, bool, error) {
	quiz, err := q.repo.QuizInProgress(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quiz{}, false, nil
		}
		return models.Quiz{}, false, fmt.Errorf("failed to look up quiz in progress: %w", err)
	}

	return quiz, true, nil
}

// ResumeQuiz rebuilds the live state of an interrupted quiz: the recorded
// states in the order they were asked, topped up with fresh distinct states
// for the questions still to come, continuing at index QuestionsAnswered.
func (q *QuizS) ResumeQuiz(ctx context.Context, quiz models.Quiz) (*ActiveQuiz, error) {
	states, err := q.repo.QuizStates(ctx, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load states for quiz %d: %w", quiz.ID, err)
	}

	if len(states) < models.QuestionsPerQuiz {
		all, err := q.aux.AllStates(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load state catalog: %w", err)
		}

		used := make(map[int64]bool, len(states))
		for _, s := range states {
			used[s.ID] = true
		}

		fresh, err := drawStates(all, models.QuestionsPerQuiz-len(states), used)
		if err != nil {
			return nil, err
		}
		states = append(states, fresh...)
	}

	return &ActiveQuiz{
		ID:     quiz.ID,
		States: states,
		Index:  quiz.QuestionsAnswered,
		Score:  quiz.Score,
	}, nil
}

// Question returns the current prompt. The choice order is drawn once per
// question and cached, so re-displaying the same question keeps the order.
func (q *QuizS) Question(quiz *ActiveQuiz) (models.Question, error) {
	quiz.mu.Lock()
	defer quiz.mu.Unlock()

	if quiz.Index >= len(quiz.States) {
		return models.Question{}, ErrQuizFinished
	}

	state := quiz.States[quiz.Index]

	choices, ok := q.cache.Choices(quiz.ID)
	if !ok {
		choices = []string{state.Capital, state.City2, state.City3}
		rand.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
		q.cache.SetChoices(quiz.ID, choices)
	}

	return models.Question{
		StateName: state.Name,
		Choices:   choices,
		Number:    quiz.Index + 1,
		Total:     models.QuestionsPerQuiz,
	}, nil
}

// Answer records the submitted answer for the current question and advances
// the quiz. Storage failures are logged and the quiz still advances: a
// storage hiccup never blocks the user mid-quiz. Progress is persisted after
// every answered question so an interrupted quiz resumes exactly where it
// stopped.
func (q *QuizS) Answer(ctx context.Context, quiz *ActiveQuiz, userAnswer string) (models.AnswerResult, error) {
	userAnswer = strings.TrimSpace(userAnswer)
	if userAnswer == "" {
		return models.AnswerResult{}, ErrNoAnswerSelected
	}

	quiz.mu.Lock()
	defer quiz.mu.Unlock()

	if quiz.Index >= models.QuestionsPerQuiz || quiz.Index >= len(quiz.States) {
		return models.AnswerResult{}, ErrQuizFinished
	}

	state := quiz.States[quiz.Index]

	if err := q.repo.StoreQuizQuestion(ctx, quiz.ID, state.ID, userAnswer); err != nil {
		q.log.Warn("failed to store quiz answer", zap.Int64("quiz_id", quiz.ID), zap.Int64("state_id", state.ID), zap.Error(err))
	}

	correct := userAnswer == state.Capital
	if correct {
		quiz.Score++
	}
	quiz.Index++

	if err := q.repo.UpdateQuizProgress(ctx, quiz.ID, quiz.Score, quiz.Index, userAnswer); err != nil {
		q.log.Warn("failed to update quiz progress", zap.Int64("quiz_id", quiz.ID), zap.Error(err))
	}

	q.cache.DeleteChoices(quiz.ID)

	return models.AnswerResult{
		Done:    quiz.Index >= models.QuestionsPerQuiz,
		Correct: correct,
		Score:   quiz.Score,
		Total:   models.QuestionsPerQuiz,
	}, nil
}

// drawStates picks n distinct states via a partial shuffle, skipping ids in
// used. A reject-and-retry loop degenerates when the catalog is barely large
// enough, so the shuffle does the dedup up front.
func drawStates(all []models.State, n int, used map[int64]bool) ([]models.State, error) {
	pool := make([]models.State, 0, len(all))
	for _, s := range all {
		if used[s.ID] {
			continue
		}
		pool = append(pool, s)
	}

	if len(pool) < n {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughStates, len(pool), n)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool[:n], nil
}
