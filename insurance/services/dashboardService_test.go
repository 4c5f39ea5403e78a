package services

import (
	"Ensurance/cache"
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDashboardService(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	mr := miniredis.RunT(t)
	c, err := cache.NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	require.NoError(t, err)

	service := NewDashboardService(
		db,
		repositories.NewServiceApprovalRepository(db),
		repositories.NewHospitalRepository(db, c),
		repositories.NewCrudRepository[models.InsuranceService](db, "id_insurance_service"),
	)
	return service, db
}

func TestDashboardSummaryAggregates(t *testing.T) {
	service, db := newDashboardService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Hospital{Name: "General", Enabled: 1}).Error)
	require.NoError(t, db.Create(&models.ServiceApproval{
		ApprovalCode:  "AP11111111",
		UserID:        1,
		HospitalID:    1,
		Status:        models.StatusApproved,
		CoveredAmount: 800,
		PatientAmount: 200,
	}).Error)
	require.NoError(t, db.Create(&models.ServiceApproval{
		ApprovalCode:  "AP22222222",
		UserID:        1,
		HospitalID:    1,
		Status:        models.StatusRejected,
		CoveredAmount: 0,
		PatientAmount: 0,
	}).Error)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)

	byStatus := summary["approvalsByStatus"].(map[string]int64)
	assert.EqualValues(t, 1, byStatus[models.StatusApproved])
	assert.EqualValues(t, 1, byStatus[models.StatusRejected])
	assert.EqualValues(t, 0, byStatus[models.StatusPending])
	assert.Equal(t, 800.0, summary["totalCoveredAmount"])
	assert.Equal(t, 200.0, summary["totalPatientAmount"])
	assert.Equal(t, 1, summary["hospitalCount"])
	assert.Equal(t, 0, summary["serviceCount"])
	assert.Len(t, summary["recentApprovals"], 2)
}

func TestDashboardStatusReportsDatabase(t *testing.T) {
	service, _ := newDashboardService(t)

	status := service.Status(context.Background())
	assert.True(t, status["database"])
}
