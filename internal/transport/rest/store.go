package rest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"agenda/internal/domain"
)

const (
	openingHour = 8
	closingHour = 17
)

type storedAppointment struct {
	providerID  string
	appointment domain.Appointment
}

// Store is the in-memory dataset behind the local fake backend. Nothing is
// persisted on purpose: a booking must show up through the next fetch, the
// same way the real backend behaves.
type Store struct {
	mu           sync.RWMutex
	providers    []domain.Provider
	appointments []storedAppointment
	now          func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		providers: []domain.Provider{
			{
				ID:        uuid.NewString(),
				Name:      "Diego Fernandes",
				Email:     "diego@idstudio.com.br",
				Phone:     "11987654321",
				AvatarURL: "https://avatars.example.com/diego.png",
			},
			{
				ID:        uuid.NewString(),
				Name:      "Mariana Costa",
				Email:     "mariana@idstudio.com.br",
				Phone:     "11976543210",
				AvatarURL: "https://avatars.example.com/mariana.png",
			},
			{
				ID:        uuid.NewString(),
				Name:      "Rafael Lima",
				Email:     "rafael@idstudio.com.br",
				Phone:     "1132654321",
				AvatarURL: "https://avatars.example.com/rafael.png",
			},
		},
		now: now,
	}
}

func (s *Store) Providers() []domain.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *Store) providerExists(id string) bool {
	for _, p := range s.providers {
		if p.ID == id {
			return true
		}
	}
	return false
}

// MonthAvailability reports, for every day of the month, whether the
// provider still has at least one bookable slot.
func (s *Store) MonthAvailability(providerID string, year, month int) []domain.MonthDay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
	days := make([]domain.MonthDay, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		available := false
		for _, slot := range s.daySlots(providerID, year, month, day) {
			if slot.FullHourAvailable || slot.HalfHourAvailable {
				available = true
				break
			}
		}
		days = append(days, domain.MonthDay{Day: day, Available: available})
	}

	return days
}

func (s *Store) DayAvailability(providerID string, year, month, day int) []domain.DaySlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.daySlots(providerID, year, month, day)
}

func (s *Store) daySlots(providerID string, year, month, day int) []domain.DaySlot {
	now := s.now()
	slots := make([]domain.DaySlot, 0, closingHour-openingHour+1)

	for hour := openingHour; hour <= closingHour; hour++ {
		full := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.Local)
		half := full.Add(30 * time.Minute)

		slots = append(slots, domain.DaySlot{
			Hour:              hour,
			FullHour:          fmt.Sprintf("%02d:00", hour),
			FullHourAvailable: full.After(now) && !s.taken(providerID, full),
			HalfHour:          fmt.Sprintf("%02d:30", hour),
			HalfHourAvailable: half.After(now) && !s.taken(providerID, half),
		})
	}

	return slots
}

func (s *Store) taken(providerID string, at time.Time) bool {
	for _, stored := range s.appointments {
		if stored.providerID == providerID && stored.appointment.Date.Equal(at) {
			return true
		}
	}
	return false
}

func (s *Store) AppointmentsFor(providerID string, year, month, day int) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Appointment
	for _, stored := range s.appointments {
		if stored.providerID != providerID {
			continue
		}
		date := stored.appointment.Date
		if date.Year() == year && int(date.Month()) == month && date.Day() == day {
			out = append(out, stored.appointment)
		}
	}
	return out
}

var (
	ErrProviderNotFound = errors.New("prestador não encontrado")
	ErrSlotTaken        = errors.New("horário já está ocupado")
)

func (s *Store) CreateAppointment(dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	date, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		return nil, fmt.Errorf("data inválida: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.providerExists(dto.ProviderID) {
		return nil, ErrProviderNotFound
	}
	if s.taken(dto.ProviderID, date) {
		return nil, ErrSlotTaken
	}

	appointment := domain.Appointment{
		ID:    uuid.NewString(),
		Date:  date,
		Name:  dto.Name,
		Phone: dto.Phone,
		User: domain.AppointmentUser{
			Name:  dto.Name,
			Phone: dto.Phone,
		},
	}
	s.appointments = append(s.appointments, storedAppointment{
		providerID:  dto.ProviderID,
		appointment: appointment,
	})

	return &appointment, nil
}
