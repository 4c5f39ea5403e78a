package services

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"Ensurance/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// ServiceApprovalRequest is the payload of a coverage approval request.
type ServiceApprovalRequest struct {
	UserID             int64   `json:"userId"`
	HospitalID         int64   `json:"hospitalId"`
	ServiceID          string  `json:"serviceId"`
	ServiceName        string  `json:"serviceName"`
	ServiceDescription string  `json:"serviceDescription"`
	ServiceCost        float64 `json:"serviceCost"`
}

// PrescriptionAttachRequest attaches a dispensed prescription to an
// existing approval.
type PrescriptionAttachRequest struct {
	ApprovalCode      string  `json:"approvalCode"`
	PrescriptionID    int64   `json:"prescriptionId"`
	PrescriptionTotal float64 `json:"prescriptionTotal"`
}

// Workflow errors surfaced to the handler.
var (
	ErrUserNotFound        = errors.New("User not found")
	ErrHospitalNotFound    = errors.New("Hospital not found")
	ErrNoPolicyAssigned    = errors.New("User has no policy assigned")
	ErrPolicyDisabled      = errors.New("User policy is not enabled")
	ErrApprovalNotFound    = errors.New("Approval not found")
	ErrApprovalNotApproved = errors.New("Approval is not in approved state")
	ErrNoPrescription      = errors.New("Approval has no prescription attached")
)

// ApprovalService runs the pharmacy coverage workflow: request splits the
// service cost between insurer and patient according to the user's
// policy, prescription attaches a dispensed prescription subject to the
// configured minimum, and complete closes the approval.
type ApprovalService struct {
	approvals *repositories.ServiceApprovalRepository
	users     *repositories.UserRepository
	hospitals *repositories.CrudRepository[models.Hospital]
	config    *repositories.ConfigRepository
}

func NewApprovalService(
	approvals *repositories.ServiceApprovalRepository,
	users *repositories.UserRepository,
	hospitals *repositories.CrudRepository[models.Hospital],
	config *repositories.ConfigRepository,
) *ApprovalService {
	return &ApprovalService{approvals: approvals, users: users, hospitals: hospitals, config: config}
}

// RequestApproval validates the user, hospital and policy, then creates
// an APPROVED record with the coverage split.
func (s *ApprovalService) RequestApproval(ctx context.Context, req ServiceApprovalRequest) (*models.ServiceApproval, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.hospitals.GetByID(ctx, req.HospitalID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	if user.Policy == nil {
		return nil, ErrNoPolicyAssigned
	}
	if user.Policy.Enabled == 0 {
		return nil, ErrPolicyDisabled
	}

	covered := req.ServiceCost * user.Policy.Percentage / 100
	now := time.Now()
	hospitalID := req.HospitalID
	approval := &models.ServiceApproval{
		ApprovalCode:       utils.GenerateApprovalCode(),
		UserID:             req.UserID,
		HospitalID:         &hospitalID,
		ServiceID:          req.ServiceID,
		ServiceName:        req.ServiceName,
		ServiceDescription: req.ServiceDescription,
		ServiceCost:        req.ServiceCost,
		CoveredAmount:      covered,
		PatientAmount:      req.ServiceCost - covered,
		Status:             models.StatusApproved,
		ApprovalDate:       &now,
	}
	if err := s.approvals.Create(ctx, approval); err != nil {
		return nil, err
	}
	return approval, nil
}

// AttachPrescription records the prescription on an approved approval.
// A total below the configured minimum flips the approval to REJECTED
// and reports why.
func (s *ApprovalService) AttachPrescription(ctx context.Context, req PrescriptionAttachRequest) (*models.ServiceApproval, string, error) {
	approval, err := s.approvals.GetByCode(ctx, req.ApprovalCode)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, "", ErrApprovalNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if approval.Status != models.StatusApproved {
		return nil, "", ErrApprovalNotApproved
	}

	minimum := s.config.MinPrescriptionAmount(ctx)
	if req.PrescriptionTotal < minimum {
		reason := fmt.Sprintf("Prescription total (Q%.2f) below minimum amount (Q%.2f)",
			req.PrescriptionTotal, minimum)
		approval.Status = models.StatusRejected
		approval.RejectionReason = reason
		if err := s.approvals.Save(ctx, approval); err != nil {
			return nil, "", err
		}
		return approval, reason, nil
	}

	prescriptionID := req.PrescriptionID
	total := req.PrescriptionTotal
	approval.PrescriptionID = &prescriptionID
	approval.PrescriptionTotal = &total
	if err := s.approvals.Save(ctx, approval); err != nil {
		return nil, "", err
	}
	return approval, "", nil
}

// Complete closes an approved approval that has a prescription attached.
func (s *ApprovalService) Complete(ctx context.Context, code string) (*models.ServiceApproval, error) {
	approval, err := s.approvals.GetByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrApprovalNotFound
	}
	if err != nil {
		return nil, err
	}

	if approval.Status != models.StatusApproved {
		return nil, ErrApprovalNotApproved
	}
	if approval.PrescriptionID == nil {
		return nil, ErrNoPrescription
	}

	now := time.Now()
	approval.Status = models.StatusCompleted
	approval.CompletedDate = &now
	if err := s.approvals.Save(ctx, approval); err != nil {
		return nil, err
	}
	return approval, nil
}

func (s *ApprovalService) GetByCode(ctx context.Context, code string) (*models.ServiceApproval, error) {
	approval, err := s.approvals.GetByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrApprovalNotFound
	}
	return approval, err
}

func (s *ApprovalService) ListByUser(ctx context.Context, userID int64) ([]models.ServiceApproval, error) {
	return s.approvals.GetByUser(ctx, userID)
}

func (s *ApprovalService) ListAll(ctx context.Context) ([]models.ServiceApproval, error) {
	return s.approvals.GetAll(ctx)
}
