package services

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"Ensurance/utils"
	"context"
	"errors"
	"fmt"
)

// ApprovalRequest is the payload of a prescription approval request.
type ApprovalRequest struct {
	UserID                 int64   `json:"userId"`
	TotalCost              float64 `json:"totalCost"`
	PrescriptionIDHospital string  `json:"prescriptionIdHospital"`
	Details                string  `json:"details"`
}

// ApprovalOutcome carries the persisted approval plus the reason the
// request failed, when it did.
type ApprovalOutcome struct {
	Approval *models.PrescriptionApproval
	Reason   string
}

// Workflow errors surfaced to the handler, each mapped to its own status
// code.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrCoverageInactive = errors.New("Client coverage inactive")
	ErrBelowMinimum     = errors.New("prescription cost below minimum threshold")
)

// ApprovalService runs the prescription approval workflow: user lookup,
// coverage check, threshold check, then persistence of the decision.
// Every rejected check still persists a REJECTED record with its reason.
type ApprovalService struct {
	approvals *repositories.PrescriptionApprovalRepository
	users     *repositories.UserRepository
	config    *repositories.ConfigRepository
}

func NewApprovalService(
	approvals *repositories.PrescriptionApprovalRepository,
	users *repositories.UserRepository,
	config *repositories.ConfigRepository,
) *ApprovalService {
	return &ApprovalService{approvals: approvals, users: users, config: config}
}

func (s *ApprovalService) RequestApproval(ctx context.Context, req ApprovalRequest) (*ApprovalOutcome, error) {
	approval := &models.PrescriptionApproval{
		IDUser:                 req.UserID,
		PrescriptionIDHospital: req.PrescriptionIDHospital,
		PrescriptionDetails:    req.Details,
		PrescriptionCost:       req.TotalCost,
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if user == nil {
		if err := s.reject(ctx, approval, ErrUserNotFound.Error()); err != nil {
			return nil, err
		}
		return &ApprovalOutcome{Approval: approval, Reason: ErrUserNotFound.Error()}, ErrUserNotFound
	}

	if user.PaidService == nil || !*user.PaidService {
		if err := s.reject(ctx, approval, ErrCoverageInactive.Error()); err != nil {
			return nil, err
		}
		return &ApprovalOutcome{Approval: approval, Reason: ErrCoverageInactive.Error()}, ErrCoverageInactive
	}

	config, err := s.config.CurrentAmount(ctx)
	if err != nil {
		return nil, err
	}
	if req.TotalCost < config.PrescriptionAmount {
		reason := fmt.Sprintf("Prescription cost (Q%.2f) below minimum threshold (Q%.2f)",
			req.TotalCost, config.PrescriptionAmount)
		if err := s.reject(ctx, approval, reason); err != nil {
			return nil, err
		}
		return &ApprovalOutcome{Approval: approval, Reason: reason}, ErrBelowMinimum
	}

	approval.Status = models.StatusApproved
	approval.RejectionReason = ""
	approval.AuthorizationNumber = utils.GenerateAuthorizationNumber()
	if err := s.approvals.Save(ctx, approval); err != nil {
		return nil, err
	}
	return &ApprovalOutcome{Approval: approval}, nil
}

func (s *ApprovalService) reject(ctx context.Context, approval *models.PrescriptionApproval, reason string) error {
	approval.Status = models.StatusRejected
	approval.RejectionReason = reason
	approval.AuthorizationNumber = utils.GenerateRejectionCode()
	return s.approvals.Save(ctx, approval)
}

func (s *ApprovalService) ListApprovals(ctx context.Context) ([]models.PrescriptionApproval, error) {
	return s.approvals.FindAll(ctx)
}

func (s *ApprovalService) ListApprovalsByUser(ctx context.Context, userID int64) ([]models.PrescriptionApproval, error) {
	return s.approvals.FindByUserID(ctx, userID)
}
