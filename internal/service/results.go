package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/mwhitley/capquiz/internal/models"
	"go.uber.org/zap"
)

type ResultRI interface {
	PastResults(ctx context.Context) ([]models.QuizResult, error)
	QuizStats(ctx context.Context) (models.QuizStats, error)
}

type ResultsS struct {
	repo ResultRI
	log  *zap.Logger
}

func NewResultsService(repo ResultRI, log *zap.Logger) *ResultsS {
	return &ResultsS{
		repo: repo,
		log:  log,
	}
}

// PastResults lists every quiz most recent first. Interrupted quizzes appear
// with their partial scores.
func (r *ResultsS) PastResults(ctx context.Context) ([]models.QuizResult, error) {
	results, err := r.repo.PastResults(ctx)
	if err != nil {
		r.log.Warn("failed to get past results", zap.Error(err))
		return nil, err
	}

	return results, nil
}

func (r *ResultsS) ResultsSummary(ctx context.Context) (string, error) {
	stats, err := r.repo.QuizStats(ctx)
	if err != nil {
		r.log.Warn("failed to get quiz stats", zap.Error(err))
		return "", err
	}

	return quizStatsFormat(stats), nil
}

func quizStatsFormat(stats models.QuizStats) string {
	var sb strings.Builder

	sb.WriteString("Quizzes taken: ")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString(" | Completed: ")
	sb.WriteString(strconv.Itoa(stats.CompletedCount))
	sb.WriteString(" | Best score: ")
	sb.WriteString(strconv.Itoa(stats.BestScore))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(models.QuestionsPerQuiz))

	return sb.String()
}
