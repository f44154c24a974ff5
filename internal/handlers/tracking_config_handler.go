package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-presence/internal/audit"
	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/models"
)

// ======================================================
// HANDLER — settings de tracking (Owner)
// ======================================================

type TrackingConfigHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTrackingConfigHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *TrackingConfigHandler {
	return &TrackingConfigHandler{db: db, audit: auditDispatcher}
}

type TrackingConfigUpdateRequest struct {
	Method string `json:"method" binding:"required,oneof=manual wifi gps"`

	WifiSSID    string `json:"wifi_ssid"`
	WifiEnabled bool   `json:"wifi_enabled"`

	GPSLatitude     float64 `json:"gps_latitude"`
	GPSLongitude    float64 `json:"gps_longitude"`
	GPSRadiusMeters int     `json:"gps_radius_meters"`
	GPSEnabled      bool    `json:"gps_enabled"`
}

func (h *TrackingConfigHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var cfg models.TrackingConfig
	if err := h.db.Where("salon_id = ?", salonID).First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Sem config ainda: o engine trata como manual.
			c.JSON(http.StatusOK, gin.H{"method": domain.MethodManual})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_tracking_config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *TrackingConfigHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req TrackingConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.GPSEnabled {
		if req.GPSRadiusMeters < domain.MinGPSRadiusMeters ||
			req.GPSRadiusMeters > domain.MaxGPSRadiusMeters {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_gps_radius"})
			return
		}
	}

	var cfg models.TrackingConfig
	err := h.db.Where("salon_id = ?", salonID).First(&cfg).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_tracking_config"})
		return
	}

	cfg.SalonID = salonID
	cfg.Method = req.Method
	cfg.WifiSSID = req.WifiSSID
	cfg.WifiEnabled = req.WifiEnabled
	cfg.GPSLatitude = req.GPSLatitude
	cfg.GPSLongitude = req.GPSLongitude
	cfg.GPSRadiusMeters = req.GPSRadiusMeters
	cfg.GPSEnabled = req.GPSEnabled

	if err := h.db.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_tracking_config"})
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "tracking_config_updated",
		Entity:   "tracking_config",
		EntityID: &cfg.ID,
		Metadata: gin.H{"method": cfg.Method},
	})

	c.JSON(http.StatusOK, cfg)
}
