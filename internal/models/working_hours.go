package models

import "time"

// SalonWorkingHours é o expediente do salão por dia da semana.
// Fonte read-only para o sweeper de fim de dia.
type SalonWorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_salon_weekday" json:"salon_id"`

	Weekday int `gorm:"index:idx_salon_weekday" json:"weekday"`

	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
