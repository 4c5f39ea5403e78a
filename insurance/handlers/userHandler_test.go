package handlers

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	handler := NewUserHandler(repositories.NewUserRepository(db))
	router := newTestRouter()
	api := router.Group("/api")
	api.GET("/users", handler.Get)
	api.POST("/users", handler.Create)
	api.PUT("/users", handler.Update)
	api.GET("/users/by-email", handler.GetByEmail)
	return router, db
}

func userPayload(cui int64, email string) gin.H {
	return gin.H{
		"name":     "Jane Roe",
		"cui":      cui,
		"email":    email,
		"password": "s3cret",
		"enabled":  1,
	}
}

func TestUserCreateReturns201WithoutPassword(t *testing.T) {
	router, _ := newUserRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", userPayload(1000123450101, "jane@example.com"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cret")
}

func TestUserCreateDuplicateEmailIs400(t *testing.T) {
	router, db := newUserRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", userPayload(1000123450101, "jane@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/users", userPayload(2000123450101, "jane@example.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserCreateValidation(t *testing.T) {
	router, _ := newUserRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "",
		"email":    "bad",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserGetByEmail(t *testing.T) {
	router, _ := newUserRouter(t)
	doJSON(t, router, http.MethodPost, "/api/users", userPayload(1000123450101, "jane@example.com"))

	rec := doJSON(t, router, http.MethodGet, "/api/users/by-email?email=jane@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	decodeJSON(t, rec, &user)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Empty(t, user.Password)

	rec = doJSON(t, router, http.MethodGet, "/api/users/by-email?email=nobody@example.com", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserListIsSanitized(t *testing.T) {
	router, _ := newUserRouter(t)
	doJSON(t, router, http.MethodPost, "/api/users", userPayload(1000123450101, "jane@example.com"))

	rec := doJSON(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cret")
}
