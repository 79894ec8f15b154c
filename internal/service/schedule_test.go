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
)

type fakeAvailabilityRepo struct {
	monthFn func(ctx context.Context, providerID string, year, month int) ([]domain.MonthDay, error)
	dayFn   func(ctx context.Context, providerID string, year, month, day int) ([]domain.DaySlot, error)
}

func (f *fakeAvailabilityRepo) Month(ctx context.Context, providerID string, year, month int) ([]domain.MonthDay, error) {
	if f.monthFn == nil {
		panic("Month not configured")
	}
	return f.monthFn(ctx, providerID, year, month)
}

func (f *fakeAvailabilityRepo) Day(ctx context.Context, providerID string, year, month, day int) ([]domain.DaySlot, error) {
	if f.dayFn == nil {
		panic("Day not configured")
	}
	return f.dayFn(ctx, providerID, year, month, day)
}

type fakeAppointmentRepo struct {
	listFn   func(ctx context.Context, providerID string, year, month, day int) ([]domain.Appointment, error)
	createFn func(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) ListMine(ctx context.Context, providerID string, year, month, day int) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("ListMine not configured")
	}
	return f.listFn(ctx, providerID, year, month, day)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, dto)
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, time.Local)
}

func TestSplitSlots_PreservesInputOrder(t *testing.T) {
	slots := []domain.DaySlot{
		{Hour: 8}, {Hour: 13}, {Hour: 9}, {Hour: 15},
	}

	morning, afternoon := splitSlots(slots)

	assert.Equal(t, []int{8, 9}, slotHours(morning))
	assert.Equal(t, []int{13, 15}, slotHours(afternoon))
	assert.Len(t, morning, 2)
	assert.Len(t, afternoon, 2)
}

func TestSplitAppointments_SortsEachBucketByTimestamp(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "a", Date: at(10, 0)},
		{ID: "b", Date: at(9, 0)},
		{ID: "c", Date: at(14, 0)},
		{ID: "d", Date: at(13, 30)},
	}

	morning, afternoon := splitAppointments(appointments)

	assert.Equal(t, []string{"b", "a"}, appointmentIDs(morning))
	assert.Equal(t, []string{"d", "c"}, appointmentIDs(afternoon))
}

func TestDisabledDates_UnavailableEntriesPlusSundays(t *testing.T) {
	// March 2026 has Sundays on 1, 8, 15, 22 and 29.
	month := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	entries := []domain.MonthDay{
		{Day: 5, Available: false},
		{Day: 8, Available: false},
		{Day: 10, Available: true},
	}

	dates := disabledDates(entries, month)

	want := map[int]bool{1: true, 5: true, 8: true, 15: true, 22: true, 29: true}
	got := map[int]bool{}
	for _, d := range dates {
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.False(t, got[d.Day()], "dia %d duplicado", d.Day())
		got[d.Day()] = true
	}
	assert.Equal(t, want, got)
}

func TestDisabledDates_NoEntriesMeansOnlySundays(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)

	dates := disabledDates(nil, month)

	require.Len(t, dates, 5)
	for _, d := range dates {
		assert.Equal(t, time.Sunday, d.Weekday())
	}
}

func TestNextAppointment_FirstMatchInFetchOrder(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "past", Date: at(9, 0)},
		{ID: "next", Date: at(11, 0)},
		{ID: "earlier-future", Date: at(10, 30)},
	}

	got := nextAppointment(appointments, at(10, 0))

	require.NotNil(t, got)
	assert.Equal(t, "next", got.ID, "deve vencer o primeiro da lista, não o mais cedo")
}

func TestNextAppointment_NoneAfterNow(t *testing.T) {
	appointments := []domain.Appointment{
		{Date: at(9, 0)},
		{Date: at(10, 0)},
	}

	assert.Nil(t, nextAppointment(appointments, at(10, 0)))
}

func TestDayAppointments_DecoratesAndFindsNext(t *testing.T) {
	svc := NewScheduleService(
		&fakeAvailabilityRepo{},
		&fakeAppointmentRepo{
			listFn: func(ctx context.Context, providerID string, year, month, day int) ([]domain.Appointment, error) {
				return []domain.Appointment{
					{ID: "a", Date: at(9, 0), Phone: "11987654321"},
					{ID: "b", Date: at(14, 30), Phone: "1132654321"},
				}, nil
			},
		},
		func() time.Time { return at(10, 0) },
		zap.NewNop(),
	)

	schedule, err := svc.DayAppointments(context.Background(), "p1", at(0, 0))

	require.NoError(t, err)
	require.Len(t, schedule.Morning, 1)
	require.Len(t, schedule.Afternoon, 1)
	assert.Equal(t, "09:00", schedule.Morning[0].HourFormatted)
	assert.Equal(t, "(11) 98765-4321", schedule.Morning[0].PhoneFormatted)
	assert.Equal(t, "(11) 3265-4321", schedule.Afternoon[0].PhoneFormatted)
	require.NotNil(t, schedule.Next)
	assert.Equal(t, "b", schedule.Next.ID)
}

func TestDisabledDays_FetchFailureReturnsError(t *testing.T) {
	svc := NewScheduleService(
		&fakeAvailabilityRepo{
			monthFn: func(ctx context.Context, providerID string, year, month int) ([]domain.MonthDay, error) {
				return nil, errors.New("rede fora do ar")
			},
		},
		&fakeAppointmentRepo{},
		time.Now,
		zap.NewNop(),
	)

	dates, err := svc.DisabledDays(context.Background(), "p1", time.Now())

	assert.Error(t, err)
	assert.Nil(t, dates)
}

func slotHours(slots []domain.DaySlot) []int {
	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, s.Hour)
	}
	return hours
}

func appointmentIDs(appointments []domain.Appointment) []string {
	ids := make([]string, 0, len(appointments))
	for _, a := range appointments {
		ids = append(ids, a.ID)
	}
	return ids
}
