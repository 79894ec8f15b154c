package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"agenda/internal/domain"
	"agenda/internal/repository"
	"agenda/pkg/phone"
)

type ScheduleServiceImpl struct {
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
	now              func() time.Time
	logger           *zap.Logger
}

func NewScheduleService(
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	now func() time.Time,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		now:              now,
		logger:           logger,
	}
}

// DisabledDays resolves the calendar days that cannot be picked in the
// displayed month: every day the backend flags as unavailable plus every
// Sunday, which is closed regardless of the backend.
func (s *ScheduleServiceImpl) DisabledDays(ctx context.Context, providerID string, month time.Time) ([]time.Time, error) {
	days, err := s.availabilityRepo.Month(ctx, providerID, month.Year(), int(month.Month()))
	if err != nil {
		s.logger.Warn("erro ao buscar disponibilidade do mês", zap.String("providerID", providerID), zap.Error(err))
		return nil, errors.New("não foi possível carregar a disponibilidade do mês")
	}

	return disabledDates(days, month), nil
}

func (s *ScheduleServiceImpl) DaySlots(ctx context.Context, providerID string, date time.Time) (*SlotGroups, error) {
	slots, err := s.availabilityRepo.Day(ctx, providerID, date.Year(), int(date.Month()), date.Day())
	if err != nil {
		s.logger.Warn("erro ao buscar disponibilidade do dia", zap.String("providerID", providerID), zap.Error(err))
		return nil, errors.New("não foi possível carregar os horários do dia")
	}

	morning, afternoon := splitSlots(slots)
	return &SlotGroups{Morning: morning, Afternoon: afternoon}, nil
}

func (s *ScheduleServiceImpl) DayAppointments(ctx context.Context, providerID string, date time.Time) (*DaySchedule, error) {
	appointments, err := s.appointmentRepo.ListMine(ctx, providerID, date.Year(), int(date.Month()), date.Day())
	if err != nil {
		s.logger.Warn("erro ao buscar agendamentos do dia", zap.String("providerID", providerID), zap.Error(err))
		return nil, errors.New("não foi possível carregar os agendamentos do dia")
	}

	for i := range appointments {
		appointments[i].HourFormatted = appointments[i].Date.Format("15:04")
		appointments[i].PhoneFormatted = phone.Format(appointments[i].Phone)
	}

	morning, afternoon := splitAppointments(appointments)

	return &DaySchedule{
		Morning:   morning,
		Afternoon: afternoon,
		Next:      nextAppointment(appointments, s.now()),
	}, nil
}

func splitSlots(slots []domain.DaySlot) (morning, afternoon []domain.DaySlot) {
	for _, slot := range slots {
		if slot.Hour < 12 {
			morning = append(morning, slot)
		} else {
			afternoon = append(afternoon, slot)
		}
	}
	return morning, afternoon
}

// splitAppointments buckets by the hour of each appointment's timestamp and
// sorts each bucket chronologically, since the backend gives no order
// guarantee.
func splitAppointments(appointments []domain.Appointment) (morning, afternoon []domain.Appointment) {
	for _, appointment := range appointments {
		if appointment.Date.Hour() < 12 {
			morning = append(morning, appointment)
		} else {
			afternoon = append(afternoon, appointment)
		}
	}

	byDate := func(list []domain.Appointment) func(i, j int) bool {
		return func(i, j int) bool {
			return list[i].Date.Before(list[j].Date)
		}
	}
	sort.SliceStable(morning, byDate(morning))
	sort.SliceStable(afternoon, byDate(afternoon))

	return morning, afternoon
}

func disabledDates(days []domain.MonthDay, month time.Time) []time.Time {
	seen := make(map[int]struct{})
	var dates []time.Time

	add := func(day int) {
		if _, ok := seen[day]; ok {
			return
		}
		seen[day] = struct{}{}
		dates = append(dates, time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local))
	}

	for _, day := range days {
		if !day.Available {
			add(day.Day)
		}
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			add(d.Day())
		}
	}

	return dates
}

// nextAppointment scans in fetch order and returns the first appointment
// strictly after now. First match wins, not the earliest future time.
func nextAppointment(appointments []domain.Appointment, now time.Time) *domain.Appointment {
	for i := range appointments {
		if appointments[i].Date.After(now) {
			return &appointments[i]
		}
	}
	return nil
}
