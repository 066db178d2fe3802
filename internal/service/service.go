package service

import (
	"github.com/mwhitley/capquiz/internal/storage/cache"
	"go.uber.org/zap"
)

type RepositoryI interface {
	StateRI
	QuizRI
	ResultRI
}

type Service struct {
	*CatalogS
	*QuizS
	*ResultsS
}

func InitServices(repo RepositoryI, cache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		CatalogS: NewCatalogService(repo, log),
		QuizS:    NewQuizService(repo, repo, cache, log),
		ResultsS: NewResultsService(repo, log),
	}
}
