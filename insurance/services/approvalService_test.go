package services

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newApprovalService(t *testing.T) (*ApprovalService, *repositories.UserRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	require.NoError(t, models.SeedConfigurableAmount(db))

	users := repositories.NewUserRepository(db)
	service := NewApprovalService(
		repositories.NewPrescriptionApprovalRepository(db),
		users,
		repositories.NewConfigRepository(db),
	)
	return service, users, db
}

func createCoveredUser(t *testing.T, users *repositories.UserRepository) *models.User {
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
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestApprovalMissingUserPersistsRejection(t *testing.T) {
	service, _, db := newApprovalService(t)

	outcome, err := service.RequestApproval(context.Background(), ApprovalRequest{
		UserID:    9999,
		TotalCost: 500,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NotNil(t, outcome)
	assert.Equal(t, models.StatusRejected, outcome.Approval.Status)
	assert.Equal(t, "User not found", outcome.Approval.RejectionReason)

	var persisted []models.PrescriptionApproval
	require.NoError(t, db.Find(&persisted).Error)
	require.Len(t, persisted, 1)
	assert.Equal(t, models.StatusRejected, persisted[0].Status)
	assert.Regexp(t, `^N/A-[a-f0-9]{8}$`, persisted[0].AuthorizationNumber)
}

func TestApprovalInactiveCoverageRejected(t *testing.T) {
	service, users, _ := newApprovalService(t)

	user := &models.User{
		Name:     "John Doe",
		CUI:      2000123450101,
		Email:    "john@example.com",
		Password: "s3cret",
		Enabled:  1,
	}
	require.NoError(t, users.Create(context.Background(), user))

	outcome, err := service.RequestApproval(context.Background(), ApprovalRequest{
		UserID:    user.IDUser,
		TotalCost: 500,
	})
	assert.ErrorIs(t, err, ErrCoverageInactive)
	assert.Equal(t, models.StatusRejected, outcome.Approval.Status)
	assert.Equal(t, "Client coverage inactive", outcome.Approval.RejectionReason)
}

func TestApprovalBelowThresholdRejectedWithAmounts(t *testing.T) {
	service, users, _ := newApprovalService(t)
	user := createCoveredUser(t, users)

	outcome, err := service.RequestApproval(context.Background(), ApprovalRequest{
		UserID:    user.IDUser,
		TotalCost: 100,
	})
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Equal(t, models.StatusRejected, outcome.Approval.Status)
	assert.Contains(t, outcome.Reason, "Q100.00")
	assert.Contains(t, outcome.Reason, "Q250.00")
}

func TestApprovalSucceedsAboveThreshold(t *testing.T) {
	service, users, _ := newApprovalService(t)
	user := createCoveredUser(t, users)

	outcome, err := service.RequestApproval(context.Background(), ApprovalRequest{
		UserID:                 user.IDUser,
		TotalCost:              400,
		PrescriptionIDHospital: "H-77",
		Details:                "antibiotics",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, outcome.Approval.Status)
	assert.Empty(t, outcome.Approval.RejectionReason)
	assert.Regexp(t, `^AUTH-[A-F0-9]{12}$`, outcome.Approval.AuthorizationNumber)

	approvals, err := service.ListApprovalsByUser(context.Background(), user.IDUser)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	assert.Equal(t, "H-77", approvals[0].PrescriptionIDHospital)
}
