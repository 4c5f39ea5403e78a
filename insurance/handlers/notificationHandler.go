package handlers

import (
	"Ensurance/middlewares"
	"Ensurance/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationHandler sends notification emails through the configured
// SMTP server.
type NotificationHandler struct {
	send func(utils.EmailRequest) error
}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{send: utils.SendNotificationEmail}
}

func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req utils.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateEmailRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.send(req); err != nil {
		middlewares.HttpError(c, "failed to send email", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
