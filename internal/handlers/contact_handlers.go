package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/mail"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Contact handles POST /v1/contact: a pass-through relay to the operator's
// inbox. No retry, no queue; the provider error goes straight back.
func (h *Handlers) Contact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Mailer.SendContactInquiry(c.Request.Context(), mail.ContactInquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
			return
		}
		log.WithError(err).Error("Contact relay failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry sent"})
}

type NewsletterInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Newsletter handles POST /v1/newsletter.
func (h *Handlers) Newsletter(c *gin.Context) {
	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Mailer.SendNewsletterSignup(c.Request.Context(), input.Email); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
			return
		}
		log.WithError(err).Error("Newsletter relay failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
