package model

import "time"

// User rows are written by the identity provider; this service only references them.
type User struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(225);not null" json:"name"`
	Email         string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	EmailVerified bool      `gorm:"not null;default:false" json:"emailVerified"`
	Image         string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
