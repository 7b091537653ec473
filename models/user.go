package models

import "time"

// User is an admin account able to sign in to the dashboard. Submitters are not
// users; their identity lives on the grievance record itself.
type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name     string     `gorm:"column:name" json:"name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"` // bcrypt hash
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string { return "users" }
