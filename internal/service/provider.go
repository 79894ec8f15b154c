package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"agenda/internal/domain"
	"agenda/internal/repository"
	"agenda/pkg/phone"
)

type ProviderServiceImpl struct {
	repo   repository.ProviderRepository
	logger *zap.Logger
}

func NewProviderService(repo repository.ProviderRepository, logger *zap.Logger) *ProviderServiceImpl {
	return &ProviderServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// List fetches the providers and formats their phones for display.
func (s *ProviderServiceImpl) List(ctx context.Context) ([]domain.Provider, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("erro ao buscar prestadores", zap.Error(err))
		return nil, errors.New("não foi possível carregar os prestadores de serviço")
	}

	for i := range providers {
		providers[i].Phone = phone.Format(providers[i].Phone)
	}

	return providers, nil
}
