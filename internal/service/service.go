package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agenda/config"
	"agenda/internal/domain"
	"agenda/internal/notify"
	"agenda/internal/repository"
)

type Deps struct {
	Repos    *repository.Repositories
	Logger   *zap.Logger
	Config   *config.Config
	Notifier notify.Notifier
	Now      func() time.Time
}

type Services struct {
	Auth     AuthService
	Provider ProviderService
	Schedule ScheduleService
	Booking  BookingService
}

func NewServices(deps Deps) *Services {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Services{
		Auth:     NewAuthService(deps.Config.Session, deps.Logger),
		Provider: NewProviderService(deps.Repos.Provider, deps.Logger),
		Schedule: NewScheduleService(deps.Repos.Availability, deps.Repos.Appointment, now, deps.Logger),
		Booking:  NewBookingService(deps.Repos.Appointment, deps.Notifier, deps.Logger),
	}
}

type AuthService interface {
	CurrentUser() domain.User
	SignedIn() bool
	SignOut()
}

type ProviderService interface {
	List(ctx context.Context) ([]domain.Provider, error)
}

// SlotGroups buckets a day's bookable slots by period, preserving the
// backend's order inside each bucket.
type SlotGroups struct {
	Morning   []domain.DaySlot
	Afternoon []domain.DaySlot
}

// DaySchedule is the provider's agenda for one day, ready for display:
// buckets sorted chronologically and Next pointing at the first appointment
// after the current time, when there is one.
type DaySchedule struct {
	Morning   []domain.Appointment
	Afternoon []domain.Appointment
	Next      *domain.Appointment
}

type ScheduleService interface {
	DisabledDays(ctx context.Context, providerID string, month time.Time) ([]time.Time, error)
	DaySlots(ctx context.Context, providerID string, date time.Time) (*SlotGroups, error)
	DayAppointments(ctx context.Context, providerID string, date time.Time) (*DaySchedule, error)
}

// BookingInput carries the form fields plus the ambient selection state the
// dashboard accumulated before submitting.
type BookingInput struct {
	Name       string
	Phone      string
	ProviderID string
	Date       time.Time
	Hour       string
}

type BookingService interface {
	Submit(ctx context.Context, input BookingInput) (domain.FieldErrors, error)
}
