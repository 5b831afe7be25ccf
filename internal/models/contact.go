package models

import "time"

type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

func ValidMessageStatus(s string) bool {
	switch MessageStatus(s) {
	case MessageUnread, MessageRead, MessageReplied:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Subject   string        `gorm:"type:varchar(255)" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    MessageStatus `gorm:"type:varchar(20);default:unread" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// ContactStats summarizes message counts per status.
type ContactStats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}
