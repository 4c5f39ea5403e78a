package models

// Prescription model
type Prescription struct {
	IDPrescription int64     `gorm:"primaryKey;autoIncrement;column:id_prescription" json:"idPrescription"`
	IDHospital     *int64    `gorm:"column:id_hospital" json:"idHospital,omitempty"`
	Hospital       *Hospital `gorm:"foreignKey:IDHospital;references:IDHospital" json:"hospital,omitempty"`
	IDUser         *int64    `gorm:"column:id_user" json:"idUser,omitempty"`
	User           *User     `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	Approved       int       `gorm:"column:approved;not null;default:0" json:"approved"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// PrescriptionMedicine is a prescription line item with dosage data,
// keyed by prescription and medicine.
type PrescriptionMedicine struct {
	PrescriptionID int64         `gorm:"primaryKey;column:id_prescription" json:"prescriptionId"`
	MedicineID     int64         `gorm:"primaryKey;column:id_medicine" json:"medicineId"`
	Prescription   *Prescription `gorm:"foreignKey:PrescriptionID;references:IDPrescription" json:"prescription,omitempty"`
	Medicine       *Medicine     `gorm:"foreignKey:MedicineID;references:IDMedicine" json:"medicine,omitempty"`
	Dosis          float64       `gorm:"column:dosis" json:"dosis"`
	Frecuencia     float64       `gorm:"column:frecuencia" json:"frecuencia"`
	Duracion       float64       `gorm:"column:duracion" json:"duracion"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicine"
}

// Bill model
type Bill struct {
	IDBill         int64         `gorm:"primaryKey;autoIncrement;column:id_bill" json:"idBill"`
	IDPrescription *int64        `gorm:"column:id_prescription" json:"idPrescription,omitempty"`
	Prescription   *Prescription `gorm:"foreignKey:IDPrescription;references:IDPrescription" json:"prescription,omitempty"`
	Taxes          float64       `gorm:"column:taxes" json:"taxes"`
	Subtotal       float64       `gorm:"column:subtotal" json:"subtotal"`
	Copay          float64       `gorm:"column:copay" json:"copay"`
	Total          string        `gorm:"column:total" json:"total"`
}

func (Bill) TableName() string {
	return "bill"
}

// BillMedicine is a bill line item keyed by bill and medicine.
type BillMedicine struct {
	BillID     int64     `gorm:"primaryKey;column:id_bill" json:"billId"`
	MedicineID int64     `gorm:"primaryKey;column:id_medicine" json:"medicineId"`
	Bill       *Bill     `gorm:"foreignKey:BillID;references:IDBill" json:"bill,omitempty"`
	Medicine   *Medicine `gorm:"foreignKey:MedicineID;references:IDMedicine" json:"medicine,omitempty"`
	Quantity   int       `gorm:"column:quantity;not null" json:"quantity"`
	Cost       float64   `gorm:"column:cost" json:"cost"`
	Copay      float64   `gorm:"column:copay" json:"copay"`
	Total      string    `gorm:"column:total" json:"total"`
}

func (BillMedicine) TableName() string {
	return "bill_medicine"
}

// Orders model
type Orders struct {
	IDOrder int64  `gorm:"primaryKey;autoIncrement;column:id_order" json:"idOrder"`
	Status  string `gorm:"column:status;not null" json:"status"`
	IDUser  *int64 `gorm:"column:id_user" json:"idUser,omitempty"`
	User    *User  `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
}

func (Orders) TableName() string {
	return "orders"
}

// OrderMedicine is an order line item keyed by order and medicine.
type OrderMedicine struct {
	OrderID    int64     `gorm:"primaryKey;column:id_order" json:"orderId"`
	MedicineID int64     `gorm:"primaryKey;column:id_medicine" json:"medicineId"`
	Orders     *Orders   `gorm:"foreignKey:OrderID;references:IDOrder" json:"order,omitempty"`
	Medicine   *Medicine `gorm:"foreignKey:MedicineID;references:IDMedicine" json:"medicine,omitempty"`
	Quantity   int       `gorm:"column:quantity;not null" json:"quantity"`
	Cost       float64   `gorm:"column:cost" json:"cost"`
	Total      string    `gorm:"column:total" json:"total"`
}

func (OrderMedicine) TableName() string {
	return "order_medicine"
}
