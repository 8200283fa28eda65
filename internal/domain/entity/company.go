package entity

// Company is the tenant: every business record hangs off one company.
type Company struct {
	Model
	Name               string `json:"name" gorm:"type:varchar(255);not null"`
	RegistrationNumber string `json:"registration_number" gorm:"type:varchar(50)"`
	Email              string `json:"email" gorm:"type:varchar(255)"`
	Phone              string `json:"phone" gorm:"type:varchar(50)"`
	Address            string `json:"address" gorm:"type:varchar(255)"`
	ZipCode            string `json:"zip_code" gorm:"type:varchar(20)"`
	City               string `json:"city" gorm:"type:varchar(100)"`
	Country            string `json:"country" gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (Company) TableName() string {
	return "companies"
}
