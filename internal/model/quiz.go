package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is attemptable only while both the quiz and its module are published.
// TimeLimitMinutes is advisory metadata for the presentation layer; the engine
// does not enforce it.
type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	ModuleID         uint           `json:"module_id" gorm:"not null;index"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty"`
	Published        bool           `json:"published" gorm:"default:false"`
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	DisplayOrder     int            `json:"display_order" gorm:"default:0"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
