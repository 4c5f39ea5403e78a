package handlers

import (
	"Ensurance/insurance/repositories"
	"Ensurance/utils"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProxyHandler forwards requests to sibling hospital backends: either a
// fixed integration base URL or a per-hospital address resolved from the
// hospital record's host and port.
type ProxyHandler struct {
	forwarder      *utils.Forwarder
	hospitals      *repositories.HospitalRepository
	hospitalAPIURL string
}

func NewProxyHandler(forwarder *utils.Forwarder, hospitals *repositories.HospitalRepository, hospitalAPIURL string) *ProxyHandler {
	return &ProxyHandler{
		forwarder:      forwarder,
		hospitals:      hospitals,
		hospitalAPIURL: hospitalAPIURL,
	}
}

// Redirect relays the request to the configured hospital integration URL.
func (h *ProxyHandler) Redirect(c *gin.Context) {
	h.forwarder.Relay(c, h.hospitalAPIURL, c.Param("path"))
}

// HospitalProxy resolves the target hospital's service port and relays
// the request to it.
func (h *ProxyHandler) HospitalProxy(c *gin.Context) {
	hospitalID, err := strconv.ParseInt(c.Param("hospitalId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital id"})
		return
	}

	hospital, err := h.hospitals.GetByID(c.Request.Context(), hospitalID)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	if hospital.Port == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "hospital has no service port configured"})
		return
	}

	base := fmt.Sprintf("http://localhost:%s", hospital.Port)
	h.forwarder.Relay(c, base, c.Param("path"))
}
