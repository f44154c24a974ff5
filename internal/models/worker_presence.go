package models

import "time"

// WorkerPresence guarda o estado atual de cada worker.
// Mutado exclusivamente pela state machine (RecordTransition).
type WorkerPresence struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"uniqueIndex;not null" json:"worker_id"`
	SalonID  uint `gorm:"index" json:"salon_id"`

	CurrentStatus    string    `gorm:"size:20;not null;default:'offline'" json:"current_status"`
	LastStatusChange time.Time `json:"last_status_change"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
