package model

import (
	"time"

	"gorm.io/gorm"
)

// Module is the content container quizzes live in. A module is visible to the
// classes attached to it, and only while it is published.
type Module struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	TeacherID   *uint          `json:"teacher_id,omitempty" gorm:"index"`
	Published   bool           `json:"published" gorm:"default:false"`
	Classes     []Class        `json:"classes,omitempty" gorm:"many2many:module_classes"`
	Quizzes     []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:ModuleID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
