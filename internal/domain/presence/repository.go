package presence

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-presence/internal/models"
)

// TransitionInput é o pedido de transição validado que chega ao
// repositório. A transição inteira (read → dwell → log → update)
// executa como unidade atômica por worker.
type TransitionInput struct {
	WorkerID uint
	SalonID  uint

	To Status
	At time.Time

	AutoTracked bool
	Reason      string
}

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Presence --------
	GetOrCreatePresence(
		ctx context.Context,
		workerID uint,
		salonID uint,
	) (*models.WorkerPresence, error)

	// RecordTransition aplica a transição. Se o status alvo já é o
	// atual, é no-op idempotente: nenhuma entrada de log é criada e
	// changed retorna false.
	RecordTransition(
		ctx context.Context,
		in TransitionInput,
	) (p *models.WorkerPresence, changed bool, err error)

	ListActivePresences(
		ctx context.Context,
	) ([]models.WorkerPresence, error)

	// -------- Tracking config --------
	GetTrackingConfig(
		ctx context.Context,
		salonID uint,
	) (*models.TrackingConfig, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.SalonWorkingHours, error)
}
