package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"agenda/internal/domain"
	"agenda/internal/notify"
	"agenda/internal/repository"
)

type BookingServiceImpl struct {
	repo     repository.AppointmentRepository
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewBookingService(repo repository.AppointmentRepository, notifier notify.Notifier, logger *zap.Logger) *BookingServiceImpl {
	return &BookingServiceImpl{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit validates the form, composes the appointment timestamp from the
// selected date and hour label and posts it. Field errors keep the user on
// the form and never reach the network; any other outcome, success or
// failure, is surfaced as a notification and concludes the flow.
func (s *BookingServiceImpl) Submit(ctx context.Context, input BookingInput) (domain.FieldErrors, error) {
	fieldErrors := domain.FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "Nome é obrigatório"
	}
	if strings.TrimSpace(input.Phone) == "" {
		fieldErrors["phone"] = "Telefone é obrigatório"
	}
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	hour, err := time.Parse("15:04", input.Hour)
	if err != nil {
		s.logger.Error("horário selecionado inválido", zap.String("hour", input.Hour), zap.Error(err))
		s.notifyFailure()
		return nil, errors.New("horário selecionado inválido")
	}

	date := time.Date(
		input.Date.Year(),
		input.Date.Month(),
		input.Date.Day(),
		hour.Hour(),
		hour.Minute(),
		0, 0, time.Local,
	)

	dto := domain.CreateAppointmentDTO{
		Name:       input.Name,
		Phone:      input.Phone,
		ProviderID: input.ProviderID,
		Date:       date.Format(time.RFC3339),
	}

	if _, err := s.repo.Create(ctx, dto); err != nil {
		s.logger.Error("erro ao criar agendamento", zap.String("providerID", input.ProviderID), zap.Error(err))
		s.notifyFailure()
		return nil, errors.New("erro ao criar agendamento")
	}

	s.notifier.Notify(notify.Notification{
		Type:        notify.TypeSuccess,
		Title:       "Agendamento concluído",
		Description: "O Agendamento foi marcado com sucesso!",
	})

	return nil, nil
}

func (s *BookingServiceImpl) notifyFailure() {
	s.notifier.Notify(notify.Notification{
		Type:        notify.TypeError,
		Title:       "Erro ao criar agendamento",
		Description: "Ocorreu um erro ao criar um agendamento, tente novamente!",
	})
}
