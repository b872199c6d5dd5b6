package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionShortText    QuestionType = "short_text"
	QuestionTrueFalse    QuestionType = "true_false"
)

// HasChoices reports whether the question type carries selectable choices.
// short_text questions have none.
func (t QuestionType) HasChoices() bool {
	return t != QuestionShortText
}

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"type:text;not null"`
	Type         QuestionType   `json:"type" gorm:"not null"`
	Points       int            `json:"points" gorm:"not null;default:1"`
	DisplayOrder int            `json:"display_order" gorm:"not null;default:0"`
	Choices      []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
