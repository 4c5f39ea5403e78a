package handlers

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MedicinePresHandler serves the prescription/medicine join resource.
type MedicinePresHandler struct {
	repo *repositories.MedicinePresRepository
}

func NewMedicinePresHandler(repo *repositories.MedicinePresRepository) *MedicinePresHandler {
	return &MedicinePresHandler{repo: repo}
}

func (h *MedicinePresHandler) Get(c *gin.Context) {
	if rawID, present := c.GetQuery("prescriptionId"); present {
		prescriptionID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prescriptionId"})
			return
		}
		records, err := h.repo.GetByPrescription(c.Request.Context(), prescriptionID)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *MedicinePresHandler) Create(c *gin.Context) {
	var record models.MedicinePres
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.IDPrescription == 0 || record.IDMedicine == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing prescription or medicine id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ServiceCategoryHandler serves the service/category join resource.
type ServiceCategoryHandler struct {
	repo *repositories.ServiceCategoryRepository
}

func NewServiceCategoryHandler(repo *repositories.ServiceCategoryRepository) *ServiceCategoryHandler {
	return &ServiceCategoryHandler{repo: repo}
}

func (h *ServiceCategoryHandler) Get(c *gin.Context) {
	rawService, hasService := c.GetQuery("serviceId")
	rawCategory, hasCategory := c.GetQuery("categoryId")
	if hasService && hasCategory {
		serviceID, err1 := strconv.ParseInt(rawService, 10, 64)
		categoryID, err2 := strconv.ParseInt(rawCategory, 10, 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serviceId or categoryId"})
			return
		}
		record, err := h.repo.Get(c.Request.Context(), serviceID, categoryID)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
		return
	}

	records, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ServiceCategoryHandler) Create(c *gin.Context) {
	var record models.ServiceCategory
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.IDService == 0 || record.IDCategory == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing service or category id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
