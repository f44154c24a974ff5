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

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ReportLocationInput struct {
	WorkerID uint
	SalonID  uint

	WifiSSID  *string
	Latitude  *float64
	Longitude *float64
}

type ReportLocationResult struct {
	// nil quando tracking é manual (nenhuma avaliação acontece)
	AutoStatus *string `json:"auto_status"`

	PreviousStatus string `json:"previous_status,omitempty"`
	Reason         string `json:"reason,omitempty"`
	Message        string `json:"message,omitempty"`

	Changed bool `json:"changed"`
}

// ======================================================
// USE CASE — report automático do device
// ======================================================

type ReportLocation struct {
	repo   domain.Repository
	flags  presenceflags.Store
	window domain.BreakWindow

	now func() time.Time
}

func NewReportLocation(
	repo domain.Repository,
	flags presenceflags.Store,
) *ReportLocation {
	return &ReportLocation{
		repo:   repo,
		flags:  flags,
		window: domain.DefaultBreakWindow,
		now:    time.Now,
	}
}

func (uc *ReportLocation) Execute(
	ctx context.Context,
	in ReportLocationInput,
) (*ReportLocationResult, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(timezone.Location(salon.Timezone))

	// --------------------------------------------------
	// 1️⃣ Config de tracking do salão
	// --------------------------------------------------
	cfg, err := uc.repo.GetTrackingConfig(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	if cfg == nil || cfg.Method == domain.MethodManual {
		// Tracking manual: o report é aceito mas nada é avaliado.
		return &ReportLocationResult{
			AutoStatus: nil,
			Message:    "tracking is manual, no automatic status change",
		}, nil
	}

	// --------------------------------------------------
	// 2️⃣ Geofence (puro, fail closed)
	// --------------------------------------------------
	present, reason := uc.evaluate(in, cfg)

	// --------------------------------------------------
	// 3️⃣ Estado atual
	// --------------------------------------------------
	p, err := uc.repo.GetOrCreatePresence(ctx, in.WorkerID, in.SalonID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(p.CurrentStatus)

	// --------------------------------------------------
	// 4️⃣ Alvo
	// --------------------------------------------------
	var target domain.Status

	switch {
	case present:
		target = domain.StatusAvailable

	case current == domain.StatusOffline:
		// Worker já offline e fora do geofence: nada muda. Nunca
		// derivamos on_break de quem não estava trabalhando.
		target = domain.StatusOffline

	default:
		// Saiu do geofence em status ativo: dentro da janela de
		// expediente vira pausa, fora vira offline.
		target = uc.window.AwayTarget(now)
	}

	// Flag diária de confirmação GPS, lida pelo sweeper.
	if present && cfg.Method == domain.MethodGPS {
		if err := uc.flags.MarkConfirmed(ctx, in.WorkerID, now); err != nil {
			log.Printf("presence: failed to mark confirmed flag for worker %d: %v", in.WorkerID, err)
		}
	}

	// --------------------------------------------------
	// 5️⃣ Sem mudança → sem log entry
	// --------------------------------------------------
	if target == current {
		status := string(current)
		return &ReportLocationResult{
			AutoStatus: &status,
			Reason:     reason,
		}, nil
	}

	// --------------------------------------------------
	// 6️⃣ Transição automática
	// --------------------------------------------------
	updated, changed, err := uc.repo.RecordTransition(ctx, domain.TransitionInput{
		WorkerID:    in.WorkerID,
		SalonID:     in.SalonID,
		To:          target,
		At:          now,
		AutoTracked: true,
		Reason:      reason,
	})
	if err != nil {
		return nil, err
	}

	status := updated.CurrentStatus
	return &ReportLocationResult{
		AutoStatus:     &status,
		PreviousStatus: string(current),
		Reason:         reason,
		Changed:        changed,
	}, nil
}

// evaluate roda o geofence do método configurado e devolve a razão
// gravada no log entry quando houver transição.
func (uc *ReportLocation) evaluate(
	in ReportLocationInput,
	cfg *models.TrackingConfig,
) (bool, string) {

	switch cfg.Method {
	case domain.MethodWifi:
		if in.WifiSSID == nil {
			return false, "No WiFi network reported"
		}
		if domain.EvaluateWifi(*in.WifiSSID, cfg) {
			return true, "Connected to salon WiFi"
		}
		return false, "Not connected to salon WiFi"

	case domain.MethodGPS:
		if in.Latitude == nil || in.Longitude == nil {
			return false, "No GPS coordinates reported"
		}
		if domain.EvaluateGPS(*in.Latitude, *in.Longitude, cfg) {
			return true, "Within salon GPS area"
		}
		return false, "Outside salon GPS area"
	}

	return false, "Tracking method not configured"
}
