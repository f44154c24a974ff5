package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-presence/internal/httperr"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	ucPresence "github.com/BruksfildServices01/salon-presence/internal/usecase/presence"
)

type PresenceHandler struct {
	getStatusUC      *ucPresence.GetStatus
	toggleStatusUC   *ucPresence.ToggleStatus
	reportLocationUC *ucPresence.ReportLocation
}

func NewPresenceHandler(
	getStatusUC *ucPresence.GetStatus,
	toggleStatusUC *ucPresence.ToggleStatus,
	reportLocationUC *ucPresence.ReportLocation,
) *PresenceHandler {
	return &PresenceHandler{
		getStatusUC:      getStatusUC,
		toggleStatusUC:   toggleStatusUC,
		reportLocationUC: reportLocationUC,
	}
}

// --------- Requests ---------

type ToggleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReportLocationRequest struct {
	WifiSSID  *string  `json:"wifi_ssid"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// --------- Handlers ---------

// GET /api/me/presence
func (h *PresenceHandler) GetStatus(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	p, err := h.getStatusUC.Execute(c.Request.Context(), workerID, salonID)
	if err != nil {
		httperr.Internal(c, "presence_get_failed", "Erro ao buscar status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_status":     p.CurrentStatus,
		"last_status_change": p.LastStatusChange,
	})
}

// PUT /api/me/presence/status
func (h *PresenceHandler) ToggleStatus(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p, err := h.toggleStatusUC.Execute(c.Request.Context(), workerID, salonID, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status deve ser available, on_break ou offline.")
			return
		}
		if httperr.IsBusiness(err, "salon_not_found") {
			httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
			return
		}
		httperr.Internal(c, "presence_toggle_failed", "Erro ao alterar status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_status":     p.CurrentStatus,
		"last_status_change": p.LastStatusChange,
	})
}

// POST /api/me/presence/report
func (h *PresenceHandler) ReportLocation(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.reportLocationUC.Execute(c.Request.Context(), ucPresence.ReportLocationInput{
		WorkerID:  workerID,
		SalonID:   salonID,
		WifiSSID:  req.WifiSSID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		if httperr.IsBusiness(err, "salon_not_found") {
			httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
			return
		}
		httperr.Internal(c, "presence_report_failed", "Erro ao processar report de localização.")
		return
	}

	c.JSON(http.StatusOK, result)
}
