package models

import "time"

// StatusLogEntry é append-only: nunca atualizado nem deletado.
type StatusLogEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkerID uint `gorm:"index:idx_status_logs_worker_date" json:"worker_id"`
	SalonID  uint `gorm:"index" json:"salon_id"`

	PreviousStatus string    `gorm:"size:20;not null" json:"previous_status"`
	NewStatus      string    `gorm:"size:20;not null" json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`

	DurationInPreviousStatusMinutes int `json:"duration_in_previous_status_minutes"`

	// Data local (meia-noite) de ChangedAt, para agregação diária barata.
	CalendarDate time.Time `gorm:"index:idx_status_logs_worker_date" json:"calendar_date"`

	AutoTracked bool   `json:"auto_tracked"`
	Reason      string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
