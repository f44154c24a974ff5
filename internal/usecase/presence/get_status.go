package presence

import (
	"context"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/models"
)

type GetStatus struct {
	repo domain.Repository
}

func NewGetStatus(
	repo domain.Repository,
) *GetStatus {
	return &GetStatus{
		repo: repo,
	}
}

// Execute devolve o presence atual do worker. O registro é criado
// lazy com default offline se a conta nunca teve transição.
func (uc *GetStatus) Execute(
	ctx context.Context,
	workerID uint,
	salonID uint,
) (*models.WorkerPresence, error) {

	return uc.repo.GetOrCreatePresence(ctx, workerID, salonID)
}
