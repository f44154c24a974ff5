package presence

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/models"
	"github.com/BruksfildServices01/salon-presence/internal/timezone"
)

// ======================================================
// USE CASE — toggle manual do worker
// ======================================================

type ToggleStatus struct {
	repo domain.Repository

	now func() time.Time
}

func NewToggleStatus(
	repo domain.Repository,
) *ToggleStatus {
	return &ToggleStatus{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ToggleStatus) Execute(
	ctx context.Context,
	workerID uint,
	salonID uint,
	rawStatus string,
) (*models.WorkerPresence, error) {

	// 1️⃣ Valida o enum antes de tocar qualquer estado
	target, err := domain.Parse(rawStatus)
	if err != nil {
		return nil, err
	}

	// 2️⃣ Timezone do salão
	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(timezone.Location(salon.Timezone))

	// 3️⃣ Garante o registro (default offline)
	if _, err := uc.repo.GetOrCreatePresence(ctx, workerID, salonID); err != nil {
		return nil, err
	}

	// 4️⃣ Transição manual (idempotente se alvo == atual)
	p, _, err := uc.repo.RecordTransition(ctx, domain.TransitionInput{
		WorkerID:    workerID,
		SalonID:     salonID,
		To:          target,
		At:          now,
		AutoTracked: false,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
