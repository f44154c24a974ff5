package presence

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/models"
	"github.com/BruksfildServices01/salon-presence/internal/timezone"
)

// ── mock repository (espelha a semântica transacional do gorm repo) ──

type mockRepo struct {
	salons    map[uint]*models.Salon
	presences map[uint]*models.WorkerPresence
	configs   map[uint]*models.TrackingConfig
	hours     map[string]*models.SalonWorkingHours

	logs []models.StatusLogEntry

	failSalon map[uint]error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		salons:    map[uint]*models.Salon{},
		presences: map[uint]*models.WorkerPresence{},
		configs:   map[uint]*models.TrackingConfig{},
		hours:     map[string]*models.SalonWorkingHours{},
		failSalon: map[uint]error{},
	}
}

func hoursKey(salonID uint, weekday int) string {
	return fmt.Sprintf("%d:%d", salonID, weekday)
}

func (m *mockRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	if err, ok := m.failSalon[id]; ok {
		return nil, err
	}
	s, ok := m.salons[id]
	if !ok {
		return nil, errors.New("salon not found")
	}
	return s, nil
}

func (m *mockRepo) GetOrCreatePresence(ctx context.Context, workerID, salonID uint) (*models.WorkerPresence, error) {
	if p, ok := m.presences[workerID]; ok {
		return p, nil
	}
	p := &models.WorkerPresence{
		ID:               workerID,
		WorkerID:         workerID,
		SalonID:          salonID,
		CurrentStatus:    string(domain.DefaultStatus),
		LastStatusChange: timezone.Now(),
	}
	m.presences[workerID] = p
	return p, nil
}

func (m *mockRepo) RecordTransition(ctx context.Context, in domain.TransitionInput) (*models.WorkerPresence, bool, error) {
	p, ok := m.presences[in.WorkerID]
	if !ok {
		return nil, false, errors.New("presence not found")
	}

	if p.CurrentStatus == string(in.To) {
		return p, false, nil
	}

	dwell := int(in.At.Sub(p.LastStatusChange).Minutes())
	if dwell < 0 {
		dwell = 0
	}

	m.logs = append(m.logs, models.StatusLogEntry{
		WorkerID:                        p.WorkerID,
		SalonID:                         p.SalonID,
		PreviousStatus:                  p.CurrentStatus,
		NewStatus:                       string(in.To),
		ChangedAt:                       in.At,
		DurationInPreviousStatusMinutes: dwell,
		CalendarDate:                    timezone.Midnight(in.At),
		AutoTracked:                     in.AutoTracked,
		Reason:                          in.Reason,
	})

	p.CurrentStatus = string(in.To)
	p.LastStatusChange = in.At
	return p, true, nil
}

func (m *mockRepo) ListActivePresences(ctx context.Context) ([]models.WorkerPresence, error) {
	var out []models.WorkerPresence
	for _, p := range m.presences {
		if domain.IsActive(domain.Status(p.CurrentStatus)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockRepo) GetTrackingConfig(ctx context.Context, salonID uint) (*models.TrackingConfig, error) {
	return m.configs[salonID], nil
}

func (m *mockRepo) GetWorkingHours(ctx context.Context, salonID uint, weekday int) (*models.SalonWorkingHours, error) {
	return m.hours[hoursKey(salonID, weekday)], nil
}

var _ domain.Repository = (*mockRepo)(nil)

// ── mock flag store ──

type mockFlags struct {
	confirmed map[string]bool
	failAll   error
}

func newMockFlags() *mockFlags {
	return &mockFlags{confirmed: map[string]bool{}}
}

func flagKey(workerID uint, day time.Time) string {
	return fmt.Sprintf("%d:%s", workerID, day.Format("2006-01-02"))
}

func (m *mockFlags) MarkConfirmed(ctx context.Context, workerID uint, day time.Time) error {
	if m.failAll != nil {
		return m.failAll
	}
	m.confirmed[flagKey(workerID, day)] = true
	return nil
}

func (m *mockFlags) IsConfirmed(ctx context.Context, workerID uint, day time.Time) (bool, error) {
	if m.failAll != nil {
		return false, m.failAll
	}
	return m.confirmed[flagKey(workerID, day)], nil
}

func (m *mockFlags) ClearConfirmed(ctx context.Context, workerID uint, day time.Time) error {
	if m.failAll != nil {
		return m.failAll
	}
	delete(m.confirmed, flagKey(workerID, day))
	return nil
}
