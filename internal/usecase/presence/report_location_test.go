package presence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/models"
)

func setupReport(t *testing.T) (*ReportLocation, *mockRepo, *mockFlags) {
	t.Helper()

	repo := newMockRepo()
	repo.salons[1] = &models.Salon{ID: 1, Name: "Salon Test", Timezone: "UTC"}

	flags := newMockFlags()
	uc := NewReportLocation(repo, flags)
	return uc, repo, flags
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func atHour(h int) time.Time { return time.Date(2025, 3, 10, h, 0, 0, 0, time.UTC) }

func setPresence(r *mockRepo, workerID uint, status domain.Status, at time.Time) {
	r.presences[workerID] = &models.WorkerPresence{
		ID:               workerID,
		WorkerID:         workerID,
		SalonID:          1,
		CurrentStatus:    string(status),
		LastStatusChange: at,
	}
}

func TestReportLocation_ManualMethodIsNoOp(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{SalonID: 1, Method: domain.MethodManual}

	uc.now = func() time.Time { return atHour(14) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("MySalon"),
	})
	require.NoError(t, err)

	assert.Nil(t, res.AutoStatus)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, repo.logs)
}

func TestReportLocation_MissingConfigIsNoOp(t *testing.T) {
	uc, repo, _ := setupReport(t)

	uc.now = func() time.Time { return atHour(14) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("MySalon"),
	})
	require.NoError(t, err)

	assert.Nil(t, res.AutoStatus)
	assert.Empty(t, repo.logs)
}

func TestReportLocation_WifiMatchSetsAvailable(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:     1,
		Method:      domain.MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}
	setPresence(repo, 10, domain.StatusOffline, atHour(8))

	uc.now = func() time.Time { return atHour(9) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("MySalon "),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "available", *res.AutoStatus)
	assert.Equal(t, "offline", res.PreviousStatus)
	assert.True(t, res.Changed)

	require.Len(t, repo.logs, 1)
	assert.True(t, repo.logs[0].AutoTracked)
	assert.Equal(t, "Connected to salon WiFi", repo.logs[0].Reason)
}

func TestReportLocation_UnchangedWritesNoLog(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:     1,
		Method:      domain.MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}
	setPresence(repo, 10, domain.StatusAvailable, atHour(9))

	uc.now = func() time.Time { return atHour(10) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("MySalon"),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "available", *res.AutoStatus)
	assert.False(t, res.Changed)
	assert.Empty(t, repo.logs)
}

func TestReportLocation_AwayDuringWorkdayBecomesBreak(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:     1,
		Method:      domain.MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}
	setPresence(repo, 10, domain.StatusAvailable, atHour(9))

	// 14:00, dentro da janela 09–18
	uc.now = func() time.Time { return atHour(14) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("OtherNetwork"),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "on_break", *res.AutoStatus)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, "Not connected to salon WiFi", repo.logs[0].Reason)
}

func TestReportLocation_AwayAtNightBecomesOffline(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:     1,
		Method:      domain.MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}
	setPresence(repo, 10, domain.StatusAvailable, atHour(9))

	// 20:00, fora da janela
	uc.now = func() time.Time { return atHour(20) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("OtherNetwork"),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "offline", *res.AutoStatus)
}

func TestReportLocation_OfflineWorkerStaysOffline(t *testing.T) {
	uc, repo, _ := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:     1,
		Method:      domain.MethodWifi,
		WifiSSID:    "mysalon",
		WifiEnabled: true,
	}
	setPresence(repo, 10, domain.StatusOffline, atHour(8))

	// 14:00, fora do geofence: offline não vira on_break
	uc.now = func() time.Time { return atHour(14) }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID: 10,
		SalonID:  1,
		WifiSSID: strPtr("OtherNetwork"),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "offline", *res.AutoStatus)
	assert.Empty(t, repo.logs)
}

func TestReportLocation_GPSPresenceMarksDailyFlag(t *testing.T) {
	uc, repo, flags := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:         1,
		Method:          domain.MethodGPS,
		GPSLatitude:     -23.5505,
		GPSLongitude:    -46.6333,
		GPSRadiusMeters: 100,
		GPSEnabled:      true,
	}
	setPresence(repo, 10, domain.StatusOffline, atHour(8))

	now := atHour(9)
	uc.now = func() time.Time { return now }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID:  10,
		SalonID:   1,
		Latitude:  floatPtr(-23.5505),
		Longitude: floatPtr(-46.6333),
	})
	require.NoError(t, err)

	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "available", *res.AutoStatus)

	confirmed, err := flags.IsConfirmed(context.Background(), 10, now)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestReportLocation_GPSDisabledFailsClosed(t *testing.T) {
	uc, repo, flags := setupReport(t)
	repo.configs[1] = &models.TrackingConfig{
		SalonID:         1,
		Method:          domain.MethodGPS,
		GPSLatitude:     -23.5505,
		GPSLongitude:    -46.6333,
		GPSRadiusMeters: 100,
		GPSEnabled:      false,
	}
	setPresence(repo, 10, domain.StatusOffline, atHour(8))

	now := atHour(9)
	uc.now = func() time.Time { return now }

	res, err := uc.Execute(context.Background(), ReportLocationInput{
		WorkerID:  10,
		SalonID:   1,
		Latitude:  floatPtr(-23.5505),
		Longitude: floatPtr(-46.6333),
	})
	require.NoError(t, err)

	// Método desabilitado nunca deriva "available": offline continua.
	require.NotNil(t, res.AutoStatus)
	assert.Equal(t, "offline", *res.AutoStatus)
	assert.Empty(t, repo.logs)

	confirmed, _ := flags.IsConfirmed(context.Background(), 10, now)
	assert.False(t, confirmed)
}
