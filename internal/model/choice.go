package model

import (
	"time"

	"gorm.io/gorm"
)

// Choice is immutable after creation; there is no update path for choices.
type Choice struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuestionID   uint           `json:"question_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"not null"`
	IsCorrect    bool           `json:"is_correct" gorm:"default:false"`
	DisplayOrder int            `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
