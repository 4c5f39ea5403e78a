package handlers

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"Ensurance/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *repositories.UserRepository
}

func NewUserHandler(users *repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(c *gin.Context) {
	rawID, present := c.GetQuery("id")
	if !present {
		users, err := h.users.GetAll(c.Request.Context())
		if err != nil {
			writeStorageError(c, err)
			return
		}
		sanitized := make([]models.User, 0, len(users))
		for _, u := range users {
			sanitized = append(sanitized, u.Sanitized())
		}
		c.JSON(http.StatusOK, sanitized)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

// GetByEmail serves /users/by-email?email=.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email parameter"})
		return
	}
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateUserFields(user.Name, user.Email, user.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.Sanitized())
}

func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if user.IDUser == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing record id"})
		return
	}
	if err := h.users.Update(c.Request.Context(), &user); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}
