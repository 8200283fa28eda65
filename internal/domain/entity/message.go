package entity

import "time"

// Message is an internal note sent from one user to another.
type Message struct {
	Model
	SenderID    int64      `json:"sender_id" gorm:"index;not null"`
	RecipientID int64      `json:"recipient_id" gorm:"index;not null"`
	Subject     string     `json:"subject" gorm:"type:varchar(255);not null"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	ReadAt      *time.Time `json:"read_at"`
}

// TableName explicitly sets the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
