package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// ContactController relays public contact-form submissions.
type ContactController struct {
	notifier services.NotificationService
}

// NewContactController creates a new ContactController.
func NewContactController(notifier services.NotificationService) *ContactController {
	return &ContactController{notifier: notifier}
}

// SubmitContact handles POST /contact.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := cc.notifier.SendContactMessage(c.Request.Context(), &req); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
