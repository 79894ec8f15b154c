package repository

import (
	"context"
	"fmt"

	"agenda/internal/domain"
	"agenda/pkg/httpapi"
)

type ProviderRepositoryImpl struct {
	client *httpapi.Client
}

func NewProviderRepository(client *httpapi.Client) *ProviderRepositoryImpl {
	return &ProviderRepositoryImpl{client: client}
}

func (r *ProviderRepositoryImpl) List(ctx context.Context) ([]domain.Provider, error) {
	var providers []domain.Provider
	if err := r.client.Get(ctx, "/providers", nil, &providers); err != nil {
		return nil, fmt.Errorf("erro ao buscar prestadores: %w", err)
	}
	return providers, nil
}
