package presence

import "time"

// BreakWindow é a janela de expediente usada para decidir entre
// on_break e offline quando um report automático diz "não presente".
// Fixa em 09:00–18:00, independente do expediente real do salão.
type BreakWindow struct {
	StartHour int
	EndHour   int
}

var DefaultBreakWindow = BreakWindow{StartHour: 9, EndHour: 18}

func (w BreakWindow) Contains(now time.Time) bool {
	h := now.Hour()
	return h >= w.StartHour && h < w.EndHour
}

// AwayTarget decide o destino de um worker que saiu do geofence:
// dentro da janela assume pausa, fora assume fim de expediente.
func (w BreakWindow) AwayTarget(now time.Time) Status {
	if w.Contains(now) {
		return StatusOnBreak
	}
	return StatusOffline
}
