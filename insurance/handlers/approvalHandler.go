package handlers

import (
	"Ensurance/insurance/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler exposes the prescription approval workflow.
type ApprovalHandler struct {
	service *services.ApprovalService
}

func NewApprovalHandler(service *services.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

// Approve runs the checks and persists the decision. Failed checks are
// persisted as REJECTED and surfaced with the reason.
func (h *ApprovalHandler) Approve(c *gin.Context) {
	var req services.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.service.RequestApproval(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"authorizationNumber": outcome.Approval.AuthorizationNumber,
			"status":              "Approved",
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": outcome.Reason, "status": "Rejected"})
	case errors.Is(err, services.ErrCoverageInactive), errors.Is(err, services.ErrBelowMinimum):
		c.JSON(http.StatusBadRequest, gin.H{"error": outcome.Reason, "status": "Rejected"})
	default:
		writeStorageError(c, err)
	}
}

// ListApprovals returns every approval, or only a user's with ?userId=.
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	rawUserID, present := c.GetQuery("userId")
	if !present {
		approvals, err := h.service.ListApprovals(c.Request.Context())
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, approvals)
		return
	}

	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}
	approvals, err := h.service.ListApprovalsByUser(c.Request.Context(), userID)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, approvals)
}
