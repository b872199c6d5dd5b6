package model

import (
	"time"

	"gorm.io/gorm"
)

// Student is referenced by attempts. Authentication and authorization are
// handled upstream; the engine only needs the class membership for quiz
// visibility checks.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	FirstName string         `json:"first_name" gorm:"not null"`
	LastName  string         `json:"last_name" gorm:"not null"`
	ClassID   uint           `json:"class_id" gorm:"not null;index"`
	Class     Class          `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
