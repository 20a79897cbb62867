package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/auth"
	"github.com/soocci/soocci-backend/internal/models"
	"github.com/soocci/soocci-backend/internal/repository"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/login.
// Sign-out has no endpoint: the console discards its token and every later
// request fails the guard, which is the whole of the session lifecycle.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.Admins.GetByEmail(input.Email)
	if err != nil {
		if err != repository.ErrNotFound {
			log.WithError(err).Error("Admin lookup failed")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	password := models.Password{Hash: admin.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Me handles GET /admin/me: the per-request session re-check the console
// runs on every admin route entry.
func (h *Handlers) Me(c *gin.Context) {
	adminID := c.GetInt64("adminID")

	admin, err := h.Admins.GetByID(adminID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session no longer valid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
