package handlers

import (
	"Ensurance/pharmacy/repositories"
	"Ensurance/pharmacy/services"
	"Ensurance/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email and password. A match returns the user
// with the password stripped; a miss is a bodiless 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateCredentials(req.Email, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.Status(http.StatusUnauthorized)
			return
		}
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Verification answers a plain "1" or "0" body depending on whether an
// enabled account exists for the email.
func (h *AuthHandler) Verification(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	verified, err := h.service.IsVerified(c.Request.Context(), email)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	body := "0"
	if verified {
		body = "1"
	}
	c.String(http.StatusOK, body)
}
