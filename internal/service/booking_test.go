package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agenda/internal/domain"
	"agenda/internal/notify"
)

type notifierSpy struct {
	notifications []notify.Notification
}

func (n *notifierSpy) Notify(notification notify.Notification) {
	n.notifications = append(n.notifications, notification)
}

func validInput() BookingInput {
	return BookingInput{
		Name:       "João da Silva",
		Phone:      "11987654321",
		ProviderID: "p1",
		Date:       time.Date(2026, time.March, 2, 8, 15, 0, 0, time.Local),
		Hour:       "14:30",
	}
}

func TestSubmit_MissingNameOnlyFlagsNameField(t *testing.T) {
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
			t.Fatal("não deve chamar a API com erro de validação")
			return nil, nil
		},
	}
	spy := &notifierSpy{}
	svc := NewBookingService(repo, spy, zap.NewNop())

	input := validInput()
	input.Name = ""

	fieldErrors, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.FieldErrors{"name": "Nome é obrigatório"}, fieldErrors)
	assert.Empty(t, spy.notifications, "validação de campo não gera toast")
}

func TestSubmit_MissingBothFields(t *testing.T) {
	svc := NewBookingService(&fakeAppointmentRepo{}, &notifierSpy{}, zap.NewNop())

	fieldErrors, err := svc.Submit(context.Background(), BookingInput{Hour: "08:00"})

	require.NoError(t, err)
	assert.Len(t, fieldErrors, 2)
	assert.Equal(t, "Nome é obrigatório", fieldErrors["name"])
	assert.Equal(t, "Telefone é obrigatório", fieldErrors["phone"])
}

func TestSubmit_ComposesLocalTimestampAndNotifiesSuccess(t *testing.T) {
	var created domain.CreateAppointmentDTO
	calls := 0
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
			calls++
			created = dto
			return &domain.Appointment{ID: "novo"}, nil
		},
	}
	spy := &notifierSpy{}
	svc := NewBookingService(repo, spy, zap.NewNop())

	fieldErrors, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Nil(t, fieldErrors)
	assert.Equal(t, 1, calls)

	want := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.Local).Format(time.RFC3339)
	assert.Equal(t, want, created.Date, "data composta do dia selecionado + horário escolhido")
	assert.Equal(t, "João da Silva", created.Name)
	assert.Equal(t, "11987654321", created.Phone)
	assert.Equal(t, "p1", created.ProviderID)

	require.Len(t, spy.notifications, 1)
	assert.Equal(t, notify.TypeSuccess, spy.notifications[0].Type)
	assert.Equal(t, "Agendamento concluído", spy.notifications[0].Title)
}

func TestSubmit_CreateFailureNotifiesGenericError(t *testing.T) {
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
			return nil, errors.New("api respondeu status=500")
		},
	}
	spy := &notifierSpy{}
	svc := NewBookingService(repo, spy, zap.NewNop())

	fieldErrors, err := svc.Submit(context.Background(), validInput())

	assert.Error(t, err)
	assert.Nil(t, fieldErrors)
	require.Len(t, spy.notifications, 1)
	assert.Equal(t, notify.TypeError, spy.notifications[0].Type)
	assert.Equal(t, "Erro ao criar agendamento", spy.notifications[0].Title)
}

func TestSubmit_InvalidHourLabelNotifiesGenericError(t *testing.T) {
	spy := &notifierSpy{}
	svc := NewBookingService(&fakeAppointmentRepo{}, spy, zap.NewNop())

	input := validInput()
	input.Hour = "depois do almoço"

	_, err := svc.Submit(context.Background(), input)

	assert.Error(t, err)
	require.Len(t, spy.notifications, 1)
	assert.Equal(t, notify.TypeError, spy.notifications[0].Type)
}
