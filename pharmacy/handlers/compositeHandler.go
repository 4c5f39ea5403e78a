package handlers

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BillMedicineHandler serves bill line items.
type BillMedicineHandler struct {
	repo *repositories.BillMedicineRepository
}

func NewBillMedicineHandler(repo *repositories.BillMedicineRepository) *BillMedicineHandler {
	return &BillMedicineHandler{repo: repo}
}

func (h *BillMedicineHandler) Get(c *gin.Context) {
	if rawID, present := c.GetQuery("billId"); present {
		billID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid billId"})
			return
		}
		records, err := h.repo.GetByBill(c.Request.Context(), billID)
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

func (h *BillMedicineHandler) Create(c *gin.Context) {
	var record models.BillMedicine
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.BillID == 0 || record.MedicineID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bill or medicine id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// OrderMedicineHandler serves order line items.
type OrderMedicineHandler struct {
	repo *repositories.OrderMedicineRepository
}

func NewOrderMedicineHandler(repo *repositories.OrderMedicineRepository) *OrderMedicineHandler {
	return &OrderMedicineHandler{repo: repo}
}

func (h *OrderMedicineHandler) Get(c *gin.Context) {
	if rawID, present := c.GetQuery("orderId"); present {
		orderID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid orderId"})
			return
		}
		records, err := h.repo.GetByOrder(c.Request.Context(), orderID)
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

func (h *OrderMedicineHandler) Create(c *gin.Context) {
	var record models.OrderMedicine
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.OrderID == 0 || record.MedicineID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing order or medicine id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// PrescriptionMedicineHandler serves prescription line items.
type PrescriptionMedicineHandler struct {
	repo *repositories.PrescriptionMedicineRepository
}

func NewPrescriptionMedicineHandler(repo *repositories.PrescriptionMedicineRepository) *PrescriptionMedicineHandler {
	return &PrescriptionMedicineHandler{repo: repo}
}

func (h *PrescriptionMedicineHandler) Get(c *gin.Context) {
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

func (h *PrescriptionMedicineHandler) Create(c *gin.Context) {
	var record models.PrescriptionMedicine
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.PrescriptionID == 0 || record.MedicineID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing prescription or medicine id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// MedicineCatSubcatHandler serves medicine classification rows.
type MedicineCatSubcatHandler struct {
	repo *repositories.MedicineCatSubcatRepository
}

func NewMedicineCatSubcatHandler(repo *repositories.MedicineCatSubcatRepository) *MedicineCatSubcatHandler {
	return &MedicineCatSubcatHandler{repo: repo}
}

func (h *MedicineCatSubcatHandler) Get(c *gin.Context) {
	if rawID, present := c.GetQuery("medicineId"); present {
		medicineID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicineId"})
			return
		}
		records, err := h.repo.GetByMedicine(c.Request.Context(), medicineID)
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

func (h *MedicineCatSubcatHandler) Create(c *gin.Context) {
	var record models.MedicineCatSubcat
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.MedicineID == 0 || record.CategoryID == 0 || record.SubcategoryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing medicine, category or subcategory id"})
		return
	}
	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
