package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-presence/internal/audit"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: auditDispatcher}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Closed    bool   `json:"closed"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var hours []models.SalonWorkingHours
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Where("salon_id = ?", salonID).Delete(&models.SalonWorkingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.SalonWorkingHours
	for _, d := range req.Days {
		wh := models.SalonWorkingHours{
			SalonID:   salonID,
			Weekday:   d.Weekday,
			Closed:    d.Closed,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		}
		toCreate = append(toCreate, wh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
			return
		}
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "working_hours_updated",
		Entity:   "salon_working_hours",
		Metadata: gin.H{"days": len(toCreate)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
