package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one student's run through one quiz. While Completed is false,
// Score and EndedAt stay nil. Only the attempt service mutates attempts.
// The partial unique index on (quiz_id, student_id) holds at most one open
// attempt per pair, so concurrent starts collide at the database like
// duplicate answers do.
type Attempt struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index;uniqueIndex:idx_attempts_open,where:completed = false"`
	Quiz      Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	StudentID uint           `json:"student_id" gorm:"not null;index;uniqueIndex:idx_attempts_open"`
	Student   Student        `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	StartedAt time.Time      `json:"started_at" gorm:"autoCreateTime"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	Score     *float64       `json:"score,omitempty"`
	Completed bool           `json:"completed" gorm:"default:false;index"`
	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
