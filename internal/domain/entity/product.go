package entity

// Product is an item of a company's catalog, optionally sourced from a supplier.
type Product struct {
	Model
	CompanyID   int64   `json:"company_id" gorm:"index;not null"`
	SupplierID  *int64  `json:"supplier_id" gorm:"index"`
	Reference   string  `json:"reference" gorm:"type:varchar(50);not null"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2);not null;default:0"`
	Stock       int     `json:"stock" gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (Product) TableName() string {
	return "products"
}
