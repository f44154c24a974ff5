package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-presence/internal/httperr"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/models"
)

// ======================================================
// HANDLER — trilha de status (Owner, read-only)
// ======================================================

type StatusLogsHandler struct {
	db *gorm.DB
}

func NewStatusLogsHandler(db *gorm.DB) *StatusLogsHandler {
	return &StatusLogsHandler{db: db}
}

func (h *StatusLogsHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	workerIDStr := c.Query("worker_id")
	status := c.Query("status")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Query base (sempre protegido por salon)
	// --------------------------------------------------

	q := h.db.
		Model(&models.StatusLogEntry{}).
		Where("salon_id = ?", salonID)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if workerIDStr != "" {
		if workerID, err := strconv.Atoi(workerIDStr); err == nil {
			q = q.Where("worker_id = ?", workerID)
		}
	}

	if status != "" {
		q = q.Where("new_status = ?", status)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("calendar_date >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("calendar_date <= ?", to)
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "status_logs_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.StatusLogEntry
	if err := q.
		Order("changed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "status_logs_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

// ======================================================
// Estatísticas diárias (agregação sobre calendar_date)
// ======================================================

type DailyStatusStat struct {
	CalendarDate   time.Time `json:"calendar_date"`
	PreviousStatus string    `json:"status"`
	TotalMinutes   int       `json:"total_minutes"`
	Transitions    int       `json:"transitions"`
}

func (h *StatusLogsHandler) Stats(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	workerIDStr := c.Query("worker_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	q := h.db.
		Model(&models.StatusLogEntry{}).
		Select(
			"calendar_date",
			"previous_status",
			"SUM(duration_in_previous_status_minutes) AS total_minutes",
			"COUNT(*) AS transitions",
		).
		Where("salon_id = ?", salonID).
		Group("calendar_date, previous_status")

	if workerIDStr != "" {
		if workerID, err := strconv.Atoi(workerIDStr); err == nil {
			q = q.Where("worker_id = ?", workerID)
		}
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("calendar_date >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("calendar_date <= ?", to)
		}
	}

	var stats []DailyStatusStat
	if err := q.
		Order("calendar_date DESC").
		Scan(&stats).Error; err != nil {

		httperr.Internal(c, "status_stats_failed", "Erro ao agregar estatísticas.")
		return
	}

	c.JSON(200, gin.H{"stats": stats})
}
