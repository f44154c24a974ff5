package presence

import "github.com/BruksfildServices01/salon-presence/internal/httperr"

// ===============================
// Presence Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusOnBreak   Status = "on_break"
	StatusOffline   Status = "offline"
)

// DefaultStatus é o estado atribuído quando a conta do worker é criada.
const DefaultStatus = StatusOffline

// ===============================
// Validations
// ===============================

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnBreak, StatusOffline:
		return true
	}
	return false
}

// Parse valida o valor vindo do cliente. Qualquer coisa fora do enum
// é erro de input, nenhum estado é tocado.
func Parse(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return s, nil
}

// IsActive diz se o status entra na seleção do sweeper de fim de dia.
func IsActive(s Status) bool {
	return s == StatusAvailable || s == StatusOnBreak
}
