package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"agenda/internal/domain"
	"agenda/pkg/httpapi"
)

type AppointmentRepositoryImpl struct {
	client *httpapi.Client
}

func NewAppointmentRepository(client *httpapi.Client) *AppointmentRepositoryImpl {
	return &AppointmentRepositoryImpl{client: client}
}

func (r *AppointmentRepositoryImpl) ListMine(ctx context.Context, providerID string, year, month, day int) ([]domain.Appointment, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	query.Set("day", strconv.Itoa(day))
	query.Set("providerId", providerID)

	var appointments []domain.Appointment
	if err := r.client.Get(ctx, "/appointments/me", query, &appointments); err != nil {
		return nil, fmt.Errorf("erro ao buscar agendamentos: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	var created domain.Appointment
	if err := r.client.Post(ctx, "/appointments", dto, &created); err != nil {
		return nil, fmt.Errorf("erro ao criar agendamento: %w", err)
	}
	return &created, nil
}
