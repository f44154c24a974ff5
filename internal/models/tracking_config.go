package models

import "time"

type TrackingConfig struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex;not null" json:"salon_id"`

	// manual | wifi | gps
	Method string `gorm:"size:20;not null;default:'manual'" json:"method"`

	WifiSSID    string `gorm:"size:100" json:"wifi_ssid"`
	WifiEnabled bool   `json:"wifi_enabled"`

	GPSLatitude     float64 `json:"gps_latitude"`
	GPSLongitude    float64 `json:"gps_longitude"`
	GPSRadiusMeters int     `gorm:"default:100" json:"gps_radius_meters"`
	GPSEnabled      bool    `json:"gps_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
