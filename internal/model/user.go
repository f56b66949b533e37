package model

import "time"

const UserTableName = "users"

// User administrator account
type User struct {
	BaseModelWithSoftDelete
	Username    string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	Email       *string    `gorm:"size:200" json:"email,omitempty"`
	DisplayName *string    `gorm:"size:100" json:"display_name,omitempty"`
	IsAdmin     bool       `gorm:"not null;default:false" json:"is_admin"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return UserTableName
}
