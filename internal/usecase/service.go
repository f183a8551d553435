package usecase

import (
	"murray-moving/internal/data/repository"
	"murray-moving/pkg/metrics"
	"murray-moving/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Quote   QuoteService
	Contact ContactService
}

func NewService(
	repo *repository.Repository,
	notifier QuoteNotifier,
	config *utils.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, m, log),
		Quote:   NewQuoteService(repo.Quote, notifier, m, log),
		Contact: NewContactService(repo.Contact, m, log),
	}
}
