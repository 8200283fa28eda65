package entity

// Customer is a party a company sells to.
type Customer struct {
	Model
	CompanyID int64  `json:"company_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	Email     string `json:"email" gorm:"type:varchar(255)"`
	Phone     string `json:"phone" gorm:"type:varchar(50)"`
	Address   string `json:"address" gorm:"type:varchar(255)"`
	ZipCode   string `json:"zip_code" gorm:"type:varchar(20)"`
	City      string `json:"city" gorm:"type:varchar(100)"`
	Country   string `json:"country" gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (Customer) TableName() string {
	return "customers"
}

// Supplier is a party a company buys from.
type Supplier struct {
	Model
	CompanyID int64  `json:"company_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	Email     string `json:"email" gorm:"type:varchar(255)"`
	Phone     string `json:"phone" gorm:"type:varchar(50)"`
	Address   string `json:"address" gorm:"type:varchar(255)"`
	ZipCode   string `json:"zip_code" gorm:"type:varchar(20)"`
	City      string `json:"city" gorm:"type:varchar(100)"`
	Country   string `json:"country" gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (Supplier) TableName() string {
	return "suppliers"
}
