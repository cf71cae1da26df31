package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Interview struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Level     string                      `gorm:"type:text;not null" json:"level"`
	Amount    int                         `gorm:"not null" json:"amount"`
	Role      string                      `gorm:"type:text;not null" json:"role"`
	Type      string                      `gorm:"type:text;not null" json:"type"`
	Techstack datatypes.JSONSlice[string] `gorm:"not null" json:"techstack"`
	Questions datatypes.JSONSlice[string] `json:"questions"`
	UserID    string                      `gorm:"type:text;not null;index" json:"userId"`
	User      *User                       `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

func (Interview) TableName() string {
	return "interview"
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
