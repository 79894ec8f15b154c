package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"agenda/internal/domain"
	"agenda/pkg/httpapi"
)

type AvailabilityRepositoryImpl struct {
	client *httpapi.Client
}

func NewAvailabilityRepository(client *httpapi.Client) *AvailabilityRepositoryImpl {
	return &AvailabilityRepositoryImpl{client: client}
}

func (r *AvailabilityRepositoryImpl) Month(ctx context.Context, providerID string, year, month int) ([]domain.MonthDay, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var days []domain.MonthDay
	path := fmt.Sprintf("/providers/%s/month-availability", providerID)
	if err := r.client.Get(ctx, path, query, &days); err != nil {
		return nil, fmt.Errorf("erro ao buscar disponibilidade do mês: %w", err)
	}
	return days, nil
}

func (r *AvailabilityRepositoryImpl) Day(ctx context.Context, providerID string, year, month, day int) ([]domain.DaySlot, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	query.Set("day", strconv.Itoa(day))

	var slots []domain.DaySlot
	path := fmt.Sprintf("/providers/%s/day-availability", providerID)
	if err := r.client.Get(ctx, path, query, &slots); err != nil {
		return nil, fmt.Errorf("erro ao buscar disponibilidade do dia: %w", err)
	}
	return slots, nil
}
