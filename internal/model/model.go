package model

import (
	"time"

	"gorm.io/gorm"
)

type Model struct {
	ID        uint           `gorm:"primaryKey" json:"id" excel:"ID"`
	CreatedAt time.Time      `json:"created_at" excel:"Created"`
	UpdatedAt time.Time      `json:"updated_at" excel:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" excel:"-"`
}
