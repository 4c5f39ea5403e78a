package services

import (
	"Ensurance/database"
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"context"

	"gorm.io/gorm"
)

// DashboardService aggregates read-only statistics over approvals,
// hospitals and insurance services.
type DashboardService struct {
	db                *gorm.DB
	approvals         *repositories.ServiceApprovalRepository
	hospitals         *repositories.HospitalRepository
	insuranceServices *repositories.CrudRepository[models.InsuranceService]
}

func NewDashboardService(
	db *gorm.DB,
	approvals *repositories.ServiceApprovalRepository,
	hospitals *repositories.HospitalRepository,
	insuranceServices *repositories.CrudRepository[models.InsuranceService],
) *DashboardService {
	return &DashboardService{
		db:                db,
		approvals:         approvals,
		hospitals:         hospitals,
		insuranceServices: insuranceServices,
	}
}

// Summary collects the dashboard counters.
func (s *DashboardService) Summary(ctx context.Context) (map[string]interface{}, error) {
	counts, err := s.approvals.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	covered, patient, err := s.approvals.Totals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.approvals.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}
	hospitals, err := s.hospitals.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	insuranceServices, err := s.insuranceServices.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"approvalsByStatus": map[string]int64{
			models.StatusPending:   counts[models.StatusPending],
			models.StatusApproved:  counts[models.StatusApproved],
			models.StatusRejected:  counts[models.StatusRejected],
			models.StatusCompleted: counts[models.StatusCompleted],
		},
		"totalCoveredAmount": covered,
		"totalPatientAmount": patient,
		"recentApprovals":    recent,
		"hospitalCount":      len(hospitals),
		"serviceCount":       len(insuranceServices),
	}, nil
}

// Status reports connectivity of the key integrations.
func (s *DashboardService) Status(ctx context.Context) map[string]bool {
	return map[string]bool{
		"database": database.Ping(ctx, s.db),
	}
}
