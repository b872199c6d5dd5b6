package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer records a student's response to one question within one attempt.
// The composite unique index on (attempt_id, question_id) is the storage-level
// half of the at-most-one-answer-per-question contract; IsCorrect is computed
// once when the answer is recorded and never recomputed.
type Answer struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptID       uint           `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	QuestionID      uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	Question        Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedChoices []Choice       `json:"selected_choices,omitempty" gorm:"many2many:answer_choices"`
	FreeText        *string        `json:"free_text,omitempty" gorm:"type:text"`
	IsCorrect       bool           `json:"is_correct" gorm:"default:false"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
