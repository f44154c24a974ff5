package presence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-presence/internal/models"
)

func TestHaversineMeters_SamePoint(t *testing.T) {
	d := HaversineMeters(-23.5505, -46.6333, -23.5505, -46.6333)
	assert.Equal(t, 0.0, d)
}

func TestHaversineMeters_EquatorHundredKm(t *testing.T) {
	// ~100km ao longo do equador: Δlng ≈ 0.8993°, mesma latitude.
	d := HaversineMeters(0, 0, 0, 0.8993)

	if math.Abs(d-100000) > 1000 {
		t.Fatalf("expected ~100000m within 1%%, got %f", d)
	}
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := HaversineMeters(-23.5505, -46.6333, -23.5510, -46.6340)
	b := HaversineMeters(-23.5510, -46.6340, -23.5505, -46.6333)
	assert.Equal(t, a, b)
}

func TestEvaluateWifi_CaseInsensitiveAndTrimmed(t *testing.T) {
	cfg := &models.TrackingConfig{
		Method:      MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}

	assert.True(t, EvaluateWifi("MySalon ", cfg))
	assert.True(t, EvaluateWifi("  MYSALON", cfg))
	assert.False(t, EvaluateWifi("OtherNetwork", cfg))
}

func TestEvaluateWifi_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		ssid string
		cfg  *models.TrackingConfig
	}{
		{
			name: "nil config",
			ssid: "MySalon",
			cfg:  nil,
		},
		{
			name: "wifi disabled",
			ssid: "MySalon",
			cfg:  &models.TrackingConfig{WifiSSID: "MySalon", WifiEnabled: false},
		},
		{
			name: "no ssid configured",
			ssid: "MySalon",
			cfg:  &models.TrackingConfig{WifiEnabled: true},
		},
		{
			name: "empty reported ssid",
			ssid: "   ",
			cfg:  &models.TrackingConfig{WifiSSID: "MySalon", WifiEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, EvaluateWifi(tt.ssid, tt.cfg))
		})
	}
}

func TestEvaluateGPS_InsideRadius(t *testing.T) {
	cfg := &models.TrackingConfig{
		Method:          MethodGPS,
		GPSLatitude:     -23.5505,
		GPSLongitude:    -46.6333,
		GPSRadiusMeters: 100,
		GPSEnabled:      true,
	}

	// Mesmo ponto
	assert.True(t, EvaluateGPS(-23.5505, -46.6333, cfg))

	// ~50m de distância (0.00045° de latitude)
	assert.True(t, EvaluateGPS(-23.55095, -46.6333, cfg))

	// ~500m de distância
	assert.False(t, EvaluateGPS(-23.5550, -46.6333, cfg))
}

func TestEvaluateGPS_FailsClosed(t *testing.T) {
	assert.False(t, EvaluateGPS(-23.5505, -46.6333, nil))

	disabled := &models.TrackingConfig{
		GPSLatitude:     -23.5505,
		GPSLongitude:    -46.6333,
		GPSRadiusMeters: 100,
		GPSEnabled:      false,
	}
	assert.False(t, EvaluateGPS(-23.5505, -46.6333, disabled))

	noCenter := &models.TrackingConfig{
		GPSRadiusMeters: 100,
		GPSEnabled:      true,
	}
	assert.False(t, EvaluateGPS(0, 0, noCenter))
}

func TestEvaluateGPS_RadiusBounds(t *testing.T) {
	cfg := &models.TrackingConfig{
		GPSLatitude:     -23.5505,
		GPSLongitude:    -46.6333,
		GPSRadiusMeters: 5, // abaixo do mínimo
		GPSEnabled:      true,
	}
	assert.False(t, EvaluateGPS(-23.5505, -46.6333, cfg))

	cfg.GPSRadiusMeters = 5000 // acima do máximo
	assert.False(t, EvaluateGPS(-23.5505, -46.6333, cfg))
}
