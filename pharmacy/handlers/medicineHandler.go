package handlers

import (
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MedicineHandler extends the generic CRUD surface with search and the
// XML feeds consumed by the hospital systems.
type MedicineHandler struct {
	*CrudHandler[models.Medicine]
	medicines *repositories.MedicineRepository
}

func NewMedicineHandler(medicines *repositories.MedicineRepository) *MedicineHandler {
	return &MedicineHandler{
		CrudHandler: NewCrudHandler[models.Medicine](medicines, func(m *models.Medicine) int64 {
			return m.IDMedicine
		}).WithDelete(),
		medicines: medicines,
	}
}

// Search serves /search_medicines?name=&category=.
func (h *MedicineHandler) Search(c *gin.Context) {
	medicines, err := h.medicines.Search(c.Request.Context(), c.Query("name"), c.Query("category"))
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicines)
}

// GetXML renders all medicines as an XML document.
func (h *MedicineHandler) GetXML(c *gin.Context) {
	medicines, err := h.medicines.GetAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(medicinesToXML(medicines)))
}

// GetStaticXML renders a fixed sample document for integration clients
// that need a stable payload.
func (h *MedicineHandler) GetStaticXML(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml", []byte(medicinesToXML(staticMedicines)))
}

var staticMedicines = []models.Medicine{
	{
		IDMedicine:       1,
		Name:             "Paracetamol",
		ActiveMedicament: "Paracetamol",
		Description:      "Para dolor de cabeza",
		Image:            "https://example.com/paracetamol.jpg",
		Concentration:    "500 MG",
		Presentation:     30.0,
		Stock:            85,
		Brand:            "MK",
		Prescription:     false,
		Price:            60.0,
		SoldUnits:        0,
	},
	{
		IDMedicine:       7,
		Name:             "Paracetamol",
		ActiveMedicament: "Acetaminophen",
		Description:      "Pain reliever",
		Image:            "http://image-url.com/med.png",
		Concentration:    "500mg",
		Presentation:     30.0,
		Stock:            97,
		Brand:            "MarcaX",
		Prescription:     false,
		Price:            3.5,
		SoldUnits:        0,
	},
	{
		IDMedicine:       22,
		Name:             "Magic",
		ActiveMedicament: "Aspirina",
		Description:      "Magic magic cura todo",
		Image:            ".",
		Concentration:    "99",
		Presentation:     30.0,
		Stock:            9950,
		Brand:            "Ravenclaw",
		Prescription:     false,
		Price:            10000.0,
		SoldUnits:        2,
	},
}

func medicinesToXML(medicines []models.Medicine) string {
	var xml strings.Builder
	xml.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	xml.WriteString("<medicines>\n")
	for _, m := range medicines {
		xml.WriteString("  <medicine>\n")
		fmt.Fprintf(&xml, "    <idMedicine>%d</idMedicine>\n", m.IDMedicine)
		fmt.Fprintf(&xml, "    <name>%s</name>\n", escapeXML(m.Name))
		fmt.Fprintf(&xml, "    <activeMedicament>%s</activeMedicament>\n", escapeXML(m.ActiveMedicament))
		fmt.Fprintf(&xml, "    <description>%s</description>\n", escapeXML(m.Description))
		fmt.Fprintf(&xml, "    <image>%s</image>\n", escapeXML(m.Image))
		fmt.Fprintf(&xml, "    <concentration>%s</concentration>\n", escapeXML(m.Concentration))
		fmt.Fprintf(&xml, "    <presentacion>%g</presentacion>\n", m.Presentation)
		fmt.Fprintf(&xml, "    <stock>%d</stock>\n", m.Stock)
		fmt.Fprintf(&xml, "    <brand>%s</brand>\n", escapeXML(m.Brand))
		fmt.Fprintf(&xml, "    <prescription>%t</prescription>\n", m.Prescription)
		fmt.Fprintf(&xml, "    <price>%g</price>\n", m.Price)
		fmt.Fprintf(&xml, "    <soldUnits>%d</soldUnits>\n", m.SoldUnits)
		xml.WriteString("  </medicine>\n")
	}
	xml.WriteString("</medicines>")
	return xml.String()
}

func escapeXML(input string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(input)
}
