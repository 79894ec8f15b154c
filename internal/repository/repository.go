package repository

import (
	"context"

	"agenda/internal/domain"
	"agenda/pkg/httpapi"
)

type Repositories struct {
	Provider     ProviderRepository
	Availability AvailabilityRepository
	Appointment  AppointmentRepository
}

func NewRepositories(client *httpapi.Client) *Repositories {
	return &Repositories{
		Provider:     NewProviderRepository(client),
		Availability: NewAvailabilityRepository(client),
		Appointment:  NewAppointmentRepository(client),
	}
}

type ProviderRepository interface {
	List(ctx context.Context) ([]domain.Provider, error)
}

// AvailabilityRepository reads a provider's bookable days and slots. Both
// answers are scoped to the queried month or day and are refetched on every
// relevant state change.
type AvailabilityRepository interface {
	Month(ctx context.Context, providerID string, year, month int) ([]domain.MonthDay, error)
	Day(ctx context.Context, providerID string, year, month, day int) ([]domain.DaySlot, error)
}

type AppointmentRepository interface {
	ListMine(ctx context.Context, providerID string, year, month, day int) ([]domain.Appointment, error)
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
}
