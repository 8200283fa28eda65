package entity

import "time"

// Invoice bills a customer. Amounts are stored as provided; no totals are computed here.
type Invoice struct {
	Model
	CompanyID  int64      `json:"company_id" gorm:"index;not null"`
	CustomerID int64      `json:"customer_id" gorm:"index;not null"`
	ProjectID  *int64     `json:"project_id" gorm:"index"`
	Reference  string     `json:"reference" gorm:"type:varchar(50);uniqueIndex;not null"`
	Status     Status     `json:"status" gorm:"type:varchar(20);not null"`
	IssuedOn   time.Time  `json:"issued_on" gorm:"not null"`
	DueOn      *time.Time `json:"due_on"`
	Amount     float64    `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	Notes      string     `json:"notes" gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (Invoice) TableName() string {
	return "invoices"
}

// Estimate is a quote sent to a customer before an invoice.
type Estimate struct {
	Model
	CompanyID  int64      `json:"company_id" gorm:"index;not null"`
	CustomerID int64      `json:"customer_id" gorm:"index;not null"`
	ProjectID  *int64     `json:"project_id" gorm:"index"`
	Reference  string     `json:"reference" gorm:"type:varchar(50);uniqueIndex;not null"`
	Status     Status     `json:"status" gorm:"type:varchar(20);not null"`
	IssuedOn   time.Time  `json:"issued_on" gorm:"not null"`
	ValidUntil *time.Time `json:"valid_until"`
	Amount     float64    `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	Notes      string     `json:"notes" gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (Estimate) TableName() string {
	return "estimates"
}

// OrderForm is a purchase order sent to a supplier.
type OrderForm struct {
	Model
	CompanyID    int64      `json:"company_id" gorm:"index;not null"`
	SupplierID   int64      `json:"supplier_id" gorm:"index;not null"`
	Reference    string     `json:"reference" gorm:"type:varchar(50);uniqueIndex;not null"`
	Status       Status     `json:"status" gorm:"type:varchar(20);not null"`
	OrderedOn    time.Time  `json:"ordered_on" gorm:"not null"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Amount       float64    `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	Notes        string     `json:"notes" gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderForm) TableName() string {
	return "order_forms"
}
