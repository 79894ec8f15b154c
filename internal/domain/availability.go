package domain

// MonthDay is one calendar day of a provider's month-availability response.
// Days missing from the response count as available.
type MonthDay struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// DaySlot describes the two bookable half-hour slots of one hour of a
// provider's day. Labels are "HH:00" and "HH:30" and are only meaningful for
// the date they were fetched for.
type DaySlot struct {
	Hour              int    `json:"hour"`
	FullHour          string `json:"fullHour"`
	FullHourAvailable bool   `json:"fullHourAvailable"`
	HalfHour          string `json:"halfHour"`
	HalfHourAvailable bool   `json:"halfHourAvailable"`
}
