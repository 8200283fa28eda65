package entity

import "time"

// Project groups tasks and documents for one customer engagement.
type Project struct {
	Model
	CompanyID   int64      `json:"company_id" gorm:"index;not null"`
	CustomerID  *int64     `json:"customer_id" gorm:"index"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// TableName explicitly sets the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// Task is a unit of work inside a project, optionally assigned to a user.
type Task struct {
	Model
	ProjectID   int64      `json:"project_id" gorm:"index;not null"`
	AssigneeID  *int64     `json:"assignee_id" gorm:"index"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null"`
	DueDate     *time.Time `json:"due_date"`
}

// TableName explicitly sets the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}
