package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kral14/mobilsayt/internal/apierror"
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

const notificationPageSize = 50

type NotificationsHandler struct{ repo repository.NotificationRepository }

func NewNotificationsHandler(repo repository.NotificationRepository) *NotificationsHandler {
	return &NotificationsHandler{repo: repo}
}

// List godoc
// @Summary      Most recent notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200 {array} model.Notification
// @Router       /notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	rows, err := h.repo.ListRecent(c.Request.Context(), notificationPageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list notifications")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list notifications"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateNotificationRequest true "Notification payload"
// @Success      201 {object} model.Notification
// @Router       /notifications [post]
func (h *NotificationsHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	now := time.Now().UTC()
	unread := false
	n := model.Notification{
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: &now,
		Read:      &unread,
	}
	if err := h.repo.Create(c.Request.Context(), &n); err != nil {
		log.Error().Err(err).Msg("failed to create notification")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create notification"))
		return
	}
	c.JSON(http.StatusCreated, n)
}

// MarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Param        id path int true "Notification ID"
// @Success      200 {object} apierror.APIError "message envelope"
// @Router       /notifications/{id} [patch]
func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.MarkRead(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Int("notification_id", id).Msg("failed to mark notification read")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update notification"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
