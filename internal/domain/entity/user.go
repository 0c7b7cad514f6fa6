package entity

import "strings"

// User is a vehicle owner and notification recipient.
type User struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"column:name" json:"name"`
	Phone *string `gorm:"column:phone" json:"phone,omitempty"` // Messaging channel target
	Email *string `gorm:"column:email" json:"email,omitempty"` // Email channel target
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// PhoneNumber returns the trimmed phone number, or "" when unset.
func (u *User) PhoneNumber() string {
	return trimmed(u.Phone)
}

// EmailAddress returns the trimmed email address, or "" when unset.
func (u *User) EmailAddress() string {
	return trimmed(u.Email)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
