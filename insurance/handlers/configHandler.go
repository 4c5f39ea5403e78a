package handlers

import (
	"Ensurance/insurance/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the configurable minimum prescription amount.
type ConfigHandler struct {
	config *repositories.ConfigRepository
}

func NewConfigHandler(config *repositories.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{config: config}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	amount, err := h.config.CurrentAmount(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, amount)
}

type amountUpdate struct {
	PrescriptionAmount float64 `json:"prescriptionAmount"`
}

func (h *ConfigHandler) Update(c *gin.Context) {
	var req amountUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PrescriptionAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prescriptionAmount must be positive"})
		return
	}
	amount, err := h.config.UpdateAmount(c.Request.Context(), req.PrescriptionAmount)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, amount)
}
