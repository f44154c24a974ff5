package presence

import (
	"context"
	"log"
	"time"

	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/models"
	"github.com/BruksfildServices01/salon-presence/internal/presenceflags"
	"github.com/BruksfildServices01/salon-presence/internal/timezone"
)

// Buffer após o fechamento antes de forçar offline.
const closingBuffer = 1 * time.Hour

// Timeout por worker: um write travado não pode segurar a passada.
const perWorkerTimeout = 5 * time.Second

const (
	ReasonSalonClosed  = "Salon is closed today"
	ReasonEndOfWorkDay = "End of work day - automatically set to offline"
)

// ======================================================
// USE CASE — sweep de fim de dia
// ======================================================

// SweepOffline força para offline todo worker ainda em status ativo
// depois do fechamento do salão (+ buffer). Re-rodar na mesma hora é
// inofensivo: worker já offline sai do predicado de seleção e a
// transição é idempotente.
type SweepOffline struct {
	repo  domain.Repository
	flags presenceflags.Store

	now func() time.Time
}

func NewSweepOffline(
	repo domain.Repository,
	flags presenceflags.Store,
) *SweepOffline {
	return &SweepOffline{
		repo:  repo,
		flags: flags,
		now:   time.Now,
	}
}

// Execute roda uma passada completa. Falha de um worker não aborta os
// demais; a passada nunca propaga erro para o invocador, apenas loga
// o resumo.
func (uc *SweepOffline) Execute(ctx context.Context) int {

	presences, err := uc.repo.ListActivePresences(ctx)
	if err != nil {
		log.Printf("sweep: failed to list active workers: %v", err)
		return 0
	}

	changed := 0
	for i := range presences {
		p := &presences[i]

		workerCtx, cancel := context.WithTimeout(ctx, perWorkerTimeout)
		ok, err := uc.sweepWorker(workerCtx, p)
		cancel()

		if err != nil {
			// Isolado: fica para o próximo tick, o worker continua
			// no predicado de seleção.
			log.Printf("sweep: worker %d skipped: %v", p.WorkerID, err)
			continue
		}
		if ok {
			changed++
		}
	}

	log.Printf("sweep: pass complete, %d worker(s) set offline", changed)
	return changed
}

func (uc *SweepOffline) sweepWorker(
	ctx context.Context,
	p *models.WorkerPresence,
) (bool, error) {

	salon, err := uc.repo.GetSalonByID(ctx, p.SalonID)
	if err != nil {
		return false, err
	}

	loc := timezone.Location(salon.Timezone)
	now := uc.now().In(loc)

	// --------------------------------------------------
	// Tracking GPS: só varre quem confirmou presença hoje
	// --------------------------------------------------
	cfg, err := uc.repo.GetTrackingConfig(ctx, p.SalonID)
	if err != nil {
		return false, err
	}

	if cfg != nil && cfg.Method == domain.MethodGPS {
		confirmed, err := uc.flags.IsConfirmed(ctx, p.WorkerID, now)
		if err != nil {
			return false, err
		}
		if !confirmed {
			return false, nil
		}
	}

	// --------------------------------------------------
	// Expediente do salão para o dia da semana
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, p.SalonID, int(now.Weekday()))
	if err != nil {
		return false, err
	}

	if wh == nil {
		// Sem expediente configurado não dá para saber o fechamento.
		return false, nil
	}

	reason := ""
	switch {
	case wh.Closed:
		reason = ReasonSalonClosed

	case wh.CloseTime != "":
		closeAt, err := parseClock(wh.CloseTime, now, loc)
		if err != nil {
			return false, err
		}
		if now.After(closeAt.Add(closingBuffer)) {
			reason = ReasonEndOfWorkDay
		}
	}

	if reason == "" {
		return false, nil
	}

	// --------------------------------------------------
	// Força offline pela mesma state machine
	// --------------------------------------------------
	_, changed, err := uc.repo.RecordTransition(ctx, domain.TransitionInput{
		WorkerID:    p.WorkerID,
		SalonID:     p.SalonID,
		To:          domain.StatusOffline,
		At:          now,
		AutoTracked: true,
		Reason:      reason,
	})
	if err != nil {
		return false, err
	}

	if changed {
		// Amanhã o geofence começa do zero.
		if err := uc.flags.ClearConfirmed(ctx, p.WorkerID, now); err != nil {
			log.Printf("sweep: failed to clear confirmed flag for worker %d: %v", p.WorkerID, err)
		}
	}

	return changed, nil
}

// parseClock resolve um "15:04" no dia corrente do salão.
func parseClock(hm string, day time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
