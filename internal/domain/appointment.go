package domain

import (
	"time"
)

type AppointmentUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Phone     string `json:"phone"`
}

type Appointment struct {
	ID    string          `json:"id"`
	Date  time.Time       `json:"date"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	User  AppointmentUser `json:"user"`

	// Display fields filled by the schedule service, never by the backend.
	HourFormatted  string `json:"-"`
	PhoneFormatted string `json:"-"`
}

type CreateAppointmentDTO struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	ProviderID string `json:"provider_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}
