package handlers

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"Ensurance/insurance/services"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApprovalRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	require.NoError(t, models.SeedConfigurableAmount(db))

	service := services.NewApprovalService(
		repositories.NewPrescriptionApprovalRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewConfigRepository(db),
	)
	handler := NewApprovalHandler(service)

	router := newTestRouter()
	router.POST("/api/prescriptions/approve", handler.Approve)
	router.GET("/api/prescriptions/approvals", handler.ListApprovals)
	return router, db
}

func coveredUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	paid := true
	user := &models.User{
		Name:        "Jane Roe",
		CUI:         1000123450101,
		Email:       "jane@example.com",
		Password:    "s3cret",
		Enabled:     1,
		PaidService: &paid,
	}
	mustCreate(t, db, user)
	return user
}

func TestApproveUnknownUser(t *testing.T) {
	router, db := newApprovalRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/prescriptions/approve", gin.H{
		"userId":    9999,
		"totalCost": 500,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "User not found", body["error"])
	assert.Equal(t, "Rejected", body["status"])

	var count int64
	require.NoError(t, db.Model(&models.PrescriptionApproval{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApproveBelowThreshold(t *testing.T) {
	router, db := newApprovalRouter(t)
	user := coveredUser(t, db)

	rec := doJSON(t, router, http.MethodPost, "/api/prescriptions/approve", gin.H{
		"userId":    user.IDUser,
		"totalCost": 120.5,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Contains(t, body["error"], "Q120.50")
	assert.Contains(t, body["error"], "Q250.00")
	assert.Equal(t, "Rejected", body["status"])
}

func TestApproveSuccess(t *testing.T) {
	router, db := newApprovalRouter(t)
	user := coveredUser(t, db)

	rec := doJSON(t, router, http.MethodPost, "/api/prescriptions/approve", gin.H{
		"userId":    user.IDUser,
		"totalCost": 400,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "Approved", body["status"])
	assert.Regexp(t, `^AUTH-[A-F0-9]{12}$`, body["authorizationNumber"])
}

func TestListApprovalsFiltersByUser(t *testing.T) {
	router, db := newApprovalRouter(t)
	user := coveredUser(t, db)

	doJSON(t, router, http.MethodPost, "/api/prescriptions/approve", gin.H{
		"userId":    user.IDUser,
		"totalCost": 400,
	})
	doJSON(t, router, http.MethodPost, "/api/prescriptions/approve", gin.H{
		"userId":    9999,
		"totalCost": 400,
	})

	rec := doJSON(t, router, http.MethodGet, "/api/prescriptions/approvals", nil)
	var all []models.PrescriptionApproval
	decodeJSON(t, rec, &all)
	assert.Len(t, all, 2)

	rec = doJSON(t, router, http.MethodGet, "/api/prescriptions/approvals?userId=9999", nil)
	var filtered []models.PrescriptionApproval
	decodeJSON(t, rec, &filtered)
	assert.Len(t, filtered, 1)
	assert.EqualValues(t, 9999, filtered[0].IDUser)
}
