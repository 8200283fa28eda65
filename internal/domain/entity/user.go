package entity

// User is an account that can log in. Email is the login identifier and the
// subject carried by issued tokens.
type User struct {
	Model
	CompanyID *int64 `json:"company_id" gorm:"index"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	Email     string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Role      Role   `json:"role" gorm:"type:varchar(20);not null;default:member"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "users"
}
