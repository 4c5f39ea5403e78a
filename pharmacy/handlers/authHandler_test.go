package handlers

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"Ensurance/pharmacy/services"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	handler := NewAuthHandler(services.NewAuthService(repositories.NewUserRepository(db)))
	router := newTestRouter()
	router.POST("/api2/login", handler.Login)
	router.GET("/api2/verification", handler.Verification)
	return router, db
}

func storedUser(enabled int) *models.User {
	return &models.User{
		Name:     "Jane Roe",
		CUI:      "0012345678901",
		Email:    "jane@example.com",
		Password: "s3cret",
		Enabled:  enabled,
	}
}

func TestPharmacyLoginStripsPassword(t *testing.T) {
	router, db := newAuthRouter(t)
	mustCreate(t, db, storedUser(1))

	rec := doJSON(t, router, http.MethodPost, "/api2/login", gin.H{
		"email":    "jane@example.com",
		"password": "s3cret",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cret")
}

func TestPharmacyLoginMismatch(t *testing.T) {
	router, db := newAuthRouter(t)
	mustCreate(t, db, storedUser(1))

	rec := doJSON(t, router, http.MethodPost, "/api2/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestVerificationFlags(t *testing.T) {
	router, db := newAuthRouter(t)
	mustCreate(t, db, storedUser(1))

	rec := doJSON(t, router, http.MethodGet, "/api2/verification?email=jane@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api2/verification?email=nobody@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Body.String())
}

func TestVerificationDisabledAccount(t *testing.T) {
	router, db := newAuthRouter(t)
	user := storedUser(1)
	mustCreate(t, db, user)
	assert.NoError(t, db.Model(user).Update("enabled", 0).Error)

	rec := doJSON(t, router, http.MethodGet, "/api2/verification?email=jane@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Body.String())
}

func TestVerificationRequiresEmail(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api2/verification", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
