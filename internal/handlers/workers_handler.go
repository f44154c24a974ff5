package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-presence/internal/audit"
	domain "github.com/BruksfildServices01/salon-presence/internal/domain/presence"
	"github.com/BruksfildServices01/salon-presence/internal/httpresp"
	"github.com/BruksfildServices01/salon-presence/internal/middleware"
	"github.com/BruksfildServices01/salon-presence/internal/models"
	"github.com/BruksfildServices01/salon-presence/internal/timezone"
)

type WorkersHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkersHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *WorkersHandler {
	return &WorkersHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateWorkerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// --------- Responses ---------

type WorkerPresenceView struct {
	WorkerID         uint   `json:"worker_id"`
	Name             string `json:"name"`
	CurrentStatus    string `json:"current_status"`
	LastStatusChange string `json:"last_status_change"`
}

// --------- Handlers ---------

// POST /api/me/workers — cria a conta do worker já com o registro de
// presence default offline, na mesma transação.
func (h *WorkersHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	worker := models.User{
		SalonID:      salonID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "worker",
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&worker).Error; err != nil {
			return err
		}

		presence := models.WorkerPresence{
			WorkerID:         worker.ID,
			SalonID:          salonID,
			CurrentStatus:    string(domain.DefaultStatus),
			LastStatusChange: timezone.Now(),
		}
		return tx.Create(&presence).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_worker"})
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &ownerID,
		Action:   "worker_created",
		Entity:   "user",
		EntityID: &worker.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"worker": gin.H{
			"id":       worker.ID,
			"name":     worker.Name,
			"email":    worker.Email,
			"phone":    worker.Phone,
			"salon_id": worker.SalonID,
		},
	})
}

// GET /api/me/salon/presence — status atual de todos os workers.
func (h *WorkersHandler) ListPresence(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var rows []struct {
		WorkerID         uint
		Name             string
		CurrentStatus    string
		LastStatusChange time.Time
	}

	if err := h.db.
		Model(&models.WorkerPresence{}).
		Select("worker_presences.worker_id, users.name, worker_presences.current_status, worker_presences.last_status_change").
		Joins("JOIN users ON users.id = worker_presences.worker_id").
		Where("worker_presences.salon_id = ?", salonID).
		Order("users.name ASC").
		Scan(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_presence"})
		return
	}

	out := make([]WorkerPresenceView, 0, len(rows))
	for _, r := range rows {
		out = append(out, WorkerPresenceView{
			WorkerID:         r.WorkerID,
			Name:             r.Name,
			CurrentStatus:    r.CurrentStatus,
			LastStatusChange: r.LastStatusChange.Format(time.RFC3339),
		})
	}

	httpresp.List(c, out)
}
