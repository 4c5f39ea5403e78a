package handlers

import (
	"Ensurance/utils"

	"github.com/gin-gonic/gin"
)

// ProxyHandler relays requests to the insurance backend.
type ProxyHandler struct {
	forwarder       *utils.Forwarder
	insuranceAPIURL string
}

func NewProxyHandler(forwarder *utils.Forwarder, insuranceAPIURL string) *ProxyHandler {
	return &ProxyHandler{forwarder: forwarder, insuranceAPIURL: insuranceAPIURL}
}

// Redirect relays the request to the configured insurance integration URL.
func (h *ProxyHandler) Redirect(c *gin.Context) {
	h.forwarder.Relay(c, h.insuranceAPIURL, c.Param("path"))
}
