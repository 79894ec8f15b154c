package service

import (
	"time"
)

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	return dateKey{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Selection holds the dashboard's transient picking state. The selected hour
// label is only meaningful for the date it was picked under, so PickDay
// always clears it.
type Selection struct {
	selectedDate time.Time
	selectedHour string
	currentMonth time.Time
	disabled     map[dateKey]struct{}
}

func NewSelection(now time.Time) *Selection {
	return &Selection{
		selectedDate: now,
		currentMonth: now,
		disabled:     make(map[dateKey]struct{}),
	}
}

// SetDisabledDays replaces the disabled set. Called after every
// month-availability fetch.
func (s *Selection) SetDisabledDays(days []time.Time) {
	s.disabled = make(map[dateKey]struct{}, len(days))
	for _, day := range days {
		s.disabled[keyOf(day)] = struct{}{}
	}
}

// PickDay moves the selection to day and clears the selected hour. Disabled
// days and Sundays are refused and leave the state untouched.
func (s *Selection) PickDay(day time.Time) bool {
	if day.Weekday() == time.Sunday {
		return false
	}
	if _, ok := s.disabled[keyOf(day)]; ok {
		return false
	}

	s.selectedDate = day
	s.selectedHour = ""
	return true
}

// ChangeMonth switches the displayed month without touching the selected
// date. The caller refetches month availability afterwards.
func (s *Selection) ChangeMonth(month time.Time) {
	s.currentMonth = month
}

// PickHour selects a slot label. Unavailable slots are refused.
func (s *Selection) PickHour(label string, available bool) bool {
	if !available {
		return false
	}
	s.selectedHour = label
	return true
}

func (s *Selection) SelectedDate() time.Time { return s.selectedDate }
func (s *Selection) SelectedHour() string    { return s.selectedHour }
func (s *Selection) CurrentMonth() time.Time { return s.currentMonth }

func (s *Selection) HourPicked() bool { return s.selectedHour != "" }
