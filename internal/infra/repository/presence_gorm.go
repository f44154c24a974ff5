package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/httperr"
	"github.com/BruksfildServices01/salon-presence/internal/models"
	"github.com/BruksfildServices01/salon-presence/internal/timezone"
)

type PresenceGormRepository struct {
	db *gorm.DB
}

func NewPresenceGormRepository(db *gorm.DB) *PresenceGormRepository {
	return &PresenceGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *PresenceGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Presence
// --------------------------------------------------

func (r *PresenceGormRepository) GetOrCreatePresence(
	ctx context.Context,
	workerID uint,
	salonID uint,
) (*models.WorkerPresence, error) {

	var p models.WorkerPresence
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		First(&p).Error

	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p = models.WorkerPresence{
		WorkerID:         workerID,
		SalonID:          salonID,
		CurrentStatus:    string(domain.DefaultStatus),
		LastStatusChange: timezone.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

// RecordTransition executa a state machine: lê o registro com lock,
// calcula dwell time, grava o StatusLogEntry e atualiza o presence na
// mesma transação. O update é guardado por CAS em last_status_change
// para que um toggle manual e um report automático concorrentes nunca
// percam um intervalo de dwell.
func (r *PresenceGormRepository) RecordTransition(
	ctx context.Context,
	in domain.TransitionInput,
) (*models.WorkerPresence, bool, error) {

	var out models.WorkerPresence
	changed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var p models.WorkerPresence
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("worker_id = ?", in.WorkerID).
			First(&p).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("presence_not_found")
			}
			return err
		}

		// Idempotente: alvo == atual, nada a gravar.
		if p.CurrentStatus == string(in.To) {
			out = p
			return nil
		}

		dwell := int(in.At.Sub(p.LastStatusChange).Minutes())
		if dwell < 0 {
			dwell = 0
		}

		entry := models.StatusLogEntry{
			WorkerID:                        p.WorkerID,
			SalonID:                         p.SalonID,
			PreviousStatus:                  p.CurrentStatus,
			NewStatus:                       string(in.To),
			ChangedAt:                       in.At,
			DurationInPreviousStatusMinutes: dwell,
			CalendarDate:                    timezone.Midnight(in.At),
			AutoTracked:                     in.AutoTracked,
			Reason:                          in.Reason,
		}

		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		res := tx.Model(&models.WorkerPresence{}).
			Where(
				"id = ? AND last_status_change = ?",
				p.ID,
				p.LastStatusChange,
			).
			Updates(map[string]any{
				"current_status":     string(in.To),
				"last_status_change": in.At,
			})

		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Outra transição venceu a corrida; rollback do log.
			return httperr.ErrBusiness("presence_conflict")
		}

		p.CurrentStatus = string(in.To)
		p.LastStatusChange = in.At
		out = p
		changed = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}

	return &out, changed, nil
}

func (r *PresenceGormRepository) ListActivePresences(
	ctx context.Context,
) ([]models.WorkerPresence, error) {

	var list []models.WorkerPresence
	if err := r.db.WithContext(ctx).
		Where(
			"current_status IN ?",
			[]string{
				string(domain.StatusAvailable),
				string(domain.StatusOnBreak),
			},
		).
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// --------------------------------------------------
// Tracking config
// --------------------------------------------------

func (r *PresenceGormRepository) GetTrackingConfig(
	ctx context.Context,
	salonID uint,
) (*models.TrackingConfig, error) {

	var cfg models.TrackingConfig
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		First(&cfg).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Ausência de config é estado legítimo, não erro.
			return nil, nil
		}
		return nil, err
	}

	return &cfg, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *PresenceGormRepository) GetWorkingHours(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.SalonWorkingHours, error) {

	var wh models.SalonWorkingHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&wh).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &wh, nil
}

// Compile-time check
var _ domain.Repository = (*PresenceGormRepository)(nil)
