package dto

import "time"

type SetTimezoneRequest struct {
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

type TimezoneResponse struct {
	Timezone string `json:"timezone"`
}

type FormatDateRequest struct {
	Date   string `json:"date" validate:"max=64"`
	Format string `json:"format" validate:"max=128"`
}

type FormatDateResponse struct {
	Formatted string `json:"formatted"`
	Timezone  string `json:"timezone"`
}

// TimezoneUpdatedEvent is published after a device's timezone preference is stored.
type TimezoneUpdatedEvent struct {
	DeviceID  string    `json:"deviceId"`
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updatedAt"`
}
