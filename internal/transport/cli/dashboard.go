package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"agenda/internal/domain"
	"agenda/internal/service"
)

type dashboardData struct {
	slots    *service.SlotGroups
	schedule *service.DaySchedule
}

// dashboardScreen is the booking flow for one provider. It returns when the
// user goes back or when a submission concludes.
func (a *App) dashboardScreen(ctx context.Context, providerID string) {
	selection := service.NewSelection(a.now())

	a.refreshMonth(ctx, providerID, selection)
	data := a.loadDay(ctx, providerID, selection.SelectedDate())

	for {
		a.renderDashboard(selection, data)

		input, ok := a.readLine("\n[dia N] [h HH:MM] [a]nterior [p]róximo mês [agendar] [v]oltar: ")
		if !ok {
			return
		}

		switch {
		case input == "v":
			return

		case input == "a" || input == "p":
			offset := 1
			if input == "a" {
				offset = -1
			}
			selection.ChangeMonth(selection.CurrentMonth().AddDate(0, offset, 0))
			a.refreshMonth(ctx, providerID, selection)

		case len(input) > 4 && input[:4] == "dia ":
			day, err := strconv.Atoi(input[4:])
			if err != nil {
				fmt.Fprintln(a.out, "Dia inválido.")
				continue
			}
			month := selection.CurrentMonth()
			date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)
			if !selection.PickDay(date) {
				fmt.Fprintln(a.out, "Esse dia não está disponível para agendamento.")
				continue
			}
			data = a.loadDay(ctx, providerID, selection.SelectedDate())

		case len(input) > 2 && input[:2] == "h ":
			label := input[2:]
			available, found := slotAvailable(data.slots, label)
			if !found {
				fmt.Fprintln(a.out, "Horário não encontrado.")
				continue
			}
			if !selection.PickHour(label, available) {
				fmt.Fprintln(a.out, "Esse horário não está disponível.")
				continue
			}

		case input == "agendar":
			if !selection.HourPicked() {
				fmt.Fprintln(a.out, "Escolha um horário antes de agendar.")
				continue
			}
			if a.submitBooking(ctx, providerID, selection) {
				// Success or generic failure both conclude the flow.
				return
			}

		default:
			fmt.Fprintln(a.out, "Opção inválida.")
		}
	}
}

// refreshMonth refetches month availability and swaps the disabled-day set.
// On failure the previous set stays and the section is reported as stale.
func (a *App) refreshMonth(ctx context.Context, providerID string, selection *service.Selection) {
	disabled, err := a.services.Schedule.DisabledDays(ctx, providerID, selection.CurrentMonth())
	if err != nil {
		a.logger.Warn("falha ao atualizar a disponibilidade do mês", zap.Error(err))
		fmt.Fprintf(a.out, "%v\n", err)
		return
	}
	selection.SetDisabledDays(disabled)
}

// loadDay refetches the slots and appointments of the selected date. A
// failed fetch leaves the section empty, never stops the screen.
func (a *App) loadDay(ctx context.Context, providerID string, date time.Time) dashboardData {
	data := dashboardData{}

	slots, err := a.services.Schedule.DaySlots(ctx, providerID, date)
	if err != nil {
		a.logger.Warn("falha ao carregar os horários do dia", zap.Error(err))
		fmt.Fprintf(a.out, "%v\n", err)
	} else {
		data.slots = slots
	}

	schedule, err := a.services.Schedule.DayAppointments(ctx, providerID, date)
	if err != nil {
		a.logger.Warn("falha ao carregar os agendamentos do dia", zap.Error(err))
		fmt.Fprintf(a.out, "%v\n", err)
	} else {
		data.schedule = schedule
	}

	return data
}

func (a *App) renderDashboard(selection *service.Selection, data dashboardData) {
	now := a.now()
	selected := selection.SelectedDate()

	fmt.Fprintln(a.out, "\nHorários agendados")
	if sameDay(selected, now) {
		fmt.Fprint(a.out, "Hoje | ")
	}
	fmt.Fprintf(a.out, "%s | %s\n", dateLine(selected), weekdayName(selected))
	fmt.Fprintf(a.out, "Mês exibido: %s\n", monthLabel(selection.CurrentMonth()))

	if data.schedule != nil {
		if sameDay(selected, now) && data.schedule.Next != nil {
			next := data.schedule.Next
			fmt.Fprintf(a.out, "\nAgendamento a seguir: %s às %s (%s)\n", next.Name, next.HourFormatted, next.PhoneFormatted)
		}
		a.renderAppointments("Manhã", data.schedule.Morning)
		a.renderAppointments("Tarde", data.schedule.Afternoon)
	}

	if data.slots != nil {
		fmt.Fprintln(a.out, "\nEscolha o horário")
		a.renderSlots("Manhã", data.slots.Morning, selection.SelectedHour())
		a.renderSlots("Tarde", data.slots.Afternoon, selection.SelectedHour())
	}
}

func (a *App) renderAppointments(title string, appointments []domain.Appointment) {
	fmt.Fprintf(a.out, "\n%s\n", title)
	if len(appointments) == 0 {
		fmt.Fprintln(a.out, "  Nenhum agendamento nesse período")
		return
	}
	for _, appointment := range appointments {
		fmt.Fprintf(a.out, "  %s — %s (%s)\n", appointment.HourFormatted, appointment.Name, appointment.PhoneFormatted)
	}
}

func (a *App) renderSlots(title string, slots []domain.DaySlot, selectedHour string) {
	fmt.Fprintf(a.out, "%s: ", title)
	for _, slot := range slots {
		fmt.Fprint(a.out, slotMark(slot.FullHour, slot.FullHourAvailable, selectedHour))
		fmt.Fprint(a.out, slotMark(slot.HalfHour, slot.HalfHourAvailable, selectedHour))
	}
	fmt.Fprintln(a.out)
}

func slotMark(label string, available bool, selectedHour string) string {
	switch {
	case label == selectedHour:
		return "[" + label + "*] "
	case !available:
		return "(" + label + ") "
	default:
		return " " + label + "  "
	}
}

func slotAvailable(groups *service.SlotGroups, label string) (available, found bool) {
	if groups == nil {
		return false, false
	}
	for _, slot := range append(append([]domain.DaySlot{}, groups.Morning...), groups.Afternoon...) {
		if slot.FullHour == label {
			return slot.FullHourAvailable, true
		}
		if slot.HalfHour == label {
			return slot.HalfHourAvailable, true
		}
	}
	return false, false
}

// submitBooking runs the form: reads name and phone, submits, and reports
// field errors inline. It returns true when the flow concluded (booked or
// generic failure) and false when the user must fix the form.
func (a *App) submitBooking(ctx context.Context, providerID string, selection *service.Selection) bool {
	name, ok := a.readLine("Nome: ")
	if !ok {
		return true
	}
	phone, ok := a.readLine("Telefone: ")
	if !ok {
		return true
	}

	fieldErrors, err := a.services.Booking.Submit(ctx, service.BookingInput{
		Name:       name,
		Phone:      phone,
		ProviderID: providerID,
		Date:       selection.SelectedDate(),
		Hour:       selection.SelectedHour(),
	})

	if len(fieldErrors) > 0 {
		a.renderFieldErrors(fieldErrors)
		return false
	}
	if err != nil {
		a.logger.Error("falha no envio do agendamento", zap.Error(err))
	}
	return true
}

var fieldLabels = map[string]string{
	"name":  "nome",
	"phone": "telefone",
}

func (a *App) renderFieldErrors(fieldErrors domain.FieldErrors) {
	for _, field := range []string{"name", "phone"} {
		if msg, ok := fieldErrors[field]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", fieldLabels[field], msg)
		}
	}
}
