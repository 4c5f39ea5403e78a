package handlers

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ServiceApprovalHandler serves the coverage approval workflow: request,
// prescription attach, completion and lookups.
type ServiceApprovalHandler struct {
	service *services.ApprovalService
}

func NewServiceApprovalHandler(service *services.ApprovalService) *ServiceApprovalHandler {
	return &ServiceApprovalHandler{service: service}
}

// Request validates the user, hospital and policy and creates an
// approved coverage split.
func (h *ServiceApprovalHandler) Request(c *gin.Context) {
	var req services.ServiceApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeWorkflowError(c, http.StatusBadRequest, err.Error())
		return
	}

	approval, err := h.service.RequestApproval(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrHospitalNotFound),
			errors.Is(err, services.ErrNoPolicyAssigned),
			errors.Is(err, services.ErrPolicyDisabled):
			writeWorkflowError(c, http.StatusBadRequest, err.Error())
		default:
			writeStorageError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"approvalId":    approval.IDApproval,
		"approvalCode":  approval.ApprovalCode,
		"serviceCost":   approval.ServiceCost,
		"coveredAmount": approval.CoveredAmount,
		"patientAmount": approval.PatientAmount,
		"approvalDate":  approval.ApprovalDate,
	})
}

// Prescription attaches a dispensed prescription to an approval. A total
// below the configured minimum rejects the approval but still answers
// 200 so the pharmacy client can show the reason.
func (h *ServiceApprovalHandler) Prescription(c *gin.Context) {
	var req services.PrescriptionAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeWorkflowError(c, http.StatusBadRequest, err.Error())
		return
	}

	approval, reason, err := h.service.AttachPrescription(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApprovalNotFound),
			errors.Is(err, services.ErrApprovalNotApproved):
			writeWorkflowError(c, http.StatusBadRequest, err.Error())
		default:
			writeStorageError(c, err)
		}
		return
	}

	if reason != "" {
		c.JSON(http.StatusOK, gin.H{
			"success":         false,
			"approvalId":      approval.IDApproval,
			"approvalCode":    approval.ApprovalCode,
			"status":          models.StatusRejected,
			"rejectionReason": reason,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"approvalId":        approval.IDApproval,
		"approvalCode":      approval.ApprovalCode,
		"prescriptionId":    approval.PrescriptionID,
		"prescriptionTotal": approval.PrescriptionTotal,
		"status":            approval.Status,
	})
}

// Complete marks an approved approval with a prescription as COMPLETED.
func (h *ServiceApprovalHandler) Complete(c *gin.Context) {
	approval, err := h.service.Complete(c.Request.Context(), c.Param("approvalCode"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApprovalNotFound):
			writeWorkflowError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrApprovalNotApproved),
			errors.Is(err, services.ErrNoPrescription):
			writeWorkflowError(c, http.StatusBadRequest, err.Error())
		default:
			writeStorageError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"approvalId":    approval.IDApproval,
		"approvalCode":  approval.ApprovalCode,
		"status":        approval.Status,
		"completedDate": approval.CompletedDate,
	})
}

// Get looks approvals up by ?code= or ?user_id=, or lists everything.
func (h *ServiceApprovalHandler) Get(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		approval, err := h.service.GetByCode(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, services.ErrApprovalNotFound) {
				writeWorkflowError(c, http.StatusNotFound, err.Error())
				return
			}
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, approval)
		return
	}

	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			writeWorkflowError(c, http.StatusBadRequest, "invalid user_id")
			return
		}
		approvals, err := h.service.ListByUser(c.Request.Context(), userID)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, approvals)
		return
	}

	approvals, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, approvals)
}

func writeWorkflowError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
