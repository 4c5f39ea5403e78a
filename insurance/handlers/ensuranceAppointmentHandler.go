package handlers

import (
	"Ensurance/insurance/models"
	"Ensurance/insurance/repositories"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// EnsuranceAppointmentHandler mirrors appointments created on hospital
// systems, keyed by the hospital's own appointment id.
type EnsuranceAppointmentHandler struct {
	*CrudHandler[models.EnsuranceAppointment]
	appointments *repositories.EnsuranceAppointmentRepository
}

func NewEnsuranceAppointmentHandler(appointments *repositories.EnsuranceAppointmentRepository) *EnsuranceAppointmentHandler {
	crud := NewCrudHandler[models.EnsuranceAppointment](
		appointments,
		func(a *models.EnsuranceAppointment) int64 { return a.IDAppointment },
	).WithDelete()
	return &EnsuranceAppointmentHandler{CrudHandler: crud, appointments: appointments}
}

// Get extends the plain lookup with filters on hospital appointment id
// and user id.
func (h *EnsuranceAppointmentHandler) Get(c *gin.Context) {
	if hospitalAppointmentID, present := c.GetQuery("hospitalAppointmentId"); present {
		appointment, err := h.appointments.GetByHospitalAppointmentID(c.Request.Context(), hospitalAppointmentID)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointment)
		return
	}

	if rawUserID, present := c.GetQuery("userId"); present {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		appointments, err := h.appointments.GetByUser(c.Request.Context(), userID)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}

	h.CrudHandler.Get(c)
}

// Register wires the handler's methods onto the given path.
func (h *EnsuranceAppointmentHandler) Register(router gin.IRoutes, path string) {
	router.GET(path, h.Get)
	router.POST(path, h.Create)
	router.PUT(path, h.Update)
	router.DELETE(path, h.Delete)
}
