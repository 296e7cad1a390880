package notification

import (
	"errors"
	"net/http"
	"strconv"

	"groomslot/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListNotifications godoc
// @Summary      List notifications
// @Description  Returns every notification of the authenticated groomer, newest first.
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Notification
// @Failure      401  {object}  gin.H
// @Router       /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	groomerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notifications, err := h.service.List(c.Request.Context(), groomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// ListUnread godoc
// @Summary      List unread notifications
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Notification
// @Failure      401  {object}  gin.H
// @Router       /notifications/unread [get]
func (h *Handler) ListUnread(c *gin.Context) {
	groomerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notifications, err := h.service.ListUnread(c.Request.Context(), groomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  UnreadCountResponse
// @Failure      401  {object}  gin.H
// @Router       /notifications/unread/count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	groomerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), groomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkRead godoc
// @Summary      Mark notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        notificationID  path      int  true  "Notification ID"
// @Success      200             {object}  gin.H
// @Failure      400             {object}  gin.H
// @Failure      404             {object}  gin.H
// @Router       /notifications/{notificationID}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	groomerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notificationID, err := strconv.Atoi(c.Param("notificationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), notificationID, groomerID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Router       /notifications/read-all [post]
func (h *Handler) MarkAllRead(c *gin.Context) {
	groomerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), groomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": updated})
}
