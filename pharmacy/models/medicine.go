package models

// Medicine model
type Medicine struct {
	IDMedicine       int64   `gorm:"primaryKey;autoIncrement;column:id_medicine" json:"idMedicine"`
	Name             string  `gorm:"column:name;not null;index" json:"name"`
	ActiveMedicament string  `gorm:"column:active_medicament" json:"activeMedicament"`
	Description      string  `gorm:"column:description" json:"description"`
	Image            string  `gorm:"column:image" json:"image"`
	Concentration    string  `gorm:"column:concentration" json:"concentration"`
	Presentation     float64 `gorm:"column:presentation" json:"presentacion"`
	Stock            int     `gorm:"column:stock" json:"stock"`
	Brand            string  `gorm:"column:brand" json:"brand"`
	Prescription     bool    `gorm:"column:prescription" json:"prescription"`
	Price            float64 `gorm:"column:price;not null" json:"price"`
	SoldUnits        int     `gorm:"column:sold_units" json:"soldUnits"`
}

func (Medicine) TableName() string {
	return "medicine"
}

// Category model
type Category struct {
	IDCategory int64  `gorm:"primaryKey;autoIncrement;column:id_category" json:"idCategory"`
	Name       string `gorm:"column:name;not null" json:"name"`
}

func (Category) TableName() string {
	return "category"
}

// Subcategory model
type Subcategory struct {
	IDSubcategory int64  `gorm:"primaryKey;autoIncrement;column:id_subcategory" json:"idSubcategory"`
	Name          string `gorm:"column:name;not null" json:"name"`
}

func (Subcategory) TableName() string {
	return "subcategory"
}

// MedicineCatSubcat classifies a medicine into a category and
// subcategory through a three-part composite key.
type MedicineCatSubcat struct {
	MedicineID    int64        `gorm:"primaryKey;column:id_medicine" json:"medicineId"`
	CategoryID    int64        `gorm:"primaryKey;column:id_category" json:"categoryId"`
	SubcategoryID int64        `gorm:"primaryKey;column:id_subcategory" json:"subcategoryId"`
	Medicine      *Medicine    `gorm:"foreignKey:MedicineID;references:IDMedicine" json:"medicine,omitempty"`
	Category      *Category    `gorm:"foreignKey:CategoryID;references:IDCategory" json:"category,omitempty"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID;references:IDSubcategory" json:"subcategory,omitempty"`
}

func (MedicineCatSubcat) TableName() string {
	return "medicine_catsubcat"
}

// Comments model; replies reference their parent comment.
type Comments struct {
	IDComments    int64     `gorm:"primaryKey;autoIncrement;column:id_comments" json:"idComments"`
	IDUser        *int64    `gorm:"column:id_user" json:"idUser,omitempty"`
	User          *User     `gorm:"foreignKey:IDUser;references:IDUser" json:"user,omitempty"`
	IDPrevComment *int64    `gorm:"column:id_prev_comment" json:"idPrevComment,omitempty"`
	PrevComment   *Comments `gorm:"foreignKey:IDPrevComment;references:IDComments" json:"prevComment,omitempty"`
	CommentText   string    `gorm:"column:comment_text;not null" json:"commentText"`
	IDMedicine    *int64    `gorm:"column:id_medicine" json:"idMedicine,omitempty"`
	Medicine      *Medicine `gorm:"foreignKey:IDMedicine;references:IDMedicine" json:"medicine,omitempty"`
}

func (Comments) TableName() string {
	return "comments"
}
