package presence

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/salon-presence/internal/models"
)

// ===============================
// Tracking Methods
// ===============================

const (
	MethodManual = "manual"
	MethodWifi   = "wifi"
	MethodGPS    = "gps"
)

const (
	EarthRadiusMeters = 6371000.0

	MinGPSRadiusMeters = 10
	MaxGPSRadiusMeters = 1000
)

// ===============================
// Geofence (funções puras, sem side effects)
// ===============================

// EvaluateWifi decide presença comparando o SSID reportado com o SSID
// configurado do salão: case-insensitive, com trim. Fail closed: método
// desabilitado ou sem SSID configurado nunca deriva presença.
func EvaluateWifi(reportedSSID string, cfg *models.TrackingConfig) bool {
	if cfg == nil || !cfg.WifiEnabled || cfg.WifiSSID == "" {
		return false
	}

	reported := strings.ToLower(strings.TrimSpace(reportedSSID))
	expected := strings.ToLower(strings.TrimSpace(cfg.WifiSSID))

	if reported == "" || expected == "" {
		return false
	}

	return reported == expected
}

// EvaluateGPS decide presença pela distância haversine entre o ponto
// reportado e o centro do salão, contra o raio configurado. Fail closed
// se o método está desabilitado ou não há centro configurado.
func EvaluateGPS(lat, lng float64, cfg *models.TrackingConfig) bool {
	if cfg == nil || !cfg.GPSEnabled {
		return false
	}

	if cfg.GPSLatitude == 0 && cfg.GPSLongitude == 0 {
		return false
	}

	radius := cfg.GPSRadiusMeters
	if radius < MinGPSRadiusMeters || radius > MaxGPSRadiusMeters {
		return false
	}

	dist := HaversineMeters(lat, lng, cfg.GPSLatitude, cfg.GPSLongitude)
	return dist <= float64(radius)
}

// HaversineMeters calcula a distância great-circle entre dois pontos.
// a = sin²(Δφ/2) + cos(φ1)·cos(φ2)·sin²(Δλ/2)
// c = 2·atan2(√a, √(1−a))
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}
