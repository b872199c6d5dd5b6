package dto

import "time"

type ClassResponseDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StudentResponseDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ClassID   uint   `json:"class_id"`
}

type ModuleResponseDTO struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	TeacherID   *uint              `json:"teacher_id,omitempty"`
	Published   bool               `json:"published"`
	Classes     []ClassResponseDTO `json:"classes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ChoiceResponseDTO is the teacher-facing view of a choice, correctness
// included.
type ChoiceResponseDTO struct {
	ID           uint   `json:"id"`
	Text         string `json:"text"`
	IsCorrect    bool   `json:"is_correct"`
	DisplayOrder int    `json:"display_order"`
}

// QuestionResponseDTO is the teacher-facing view of a question.
type QuestionResponseDTO struct {
	ID           uint                `json:"id"`
	QuizID       uint                `json:"quiz_id"`
	Text         string              `json:"text"`
	Type         string              `json:"type"`
	Points       int                 `json:"points"`
	DisplayOrder int                 `json:"display_order"`
	Choices      []ChoiceResponseDTO `json:"choices,omitempty"`
}

type QuizResponseDTO struct {
	ID               uint                  `json:"id"`
	ModuleID         uint                  `json:"module_id"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	Published        bool                  `json:"published"`
	TimeLimitMinutes *int                  `json:"time_limit_minutes,omitempty"`
	DisplayOrder     int                   `json:"display_order"`
	Questions        []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	ModuleID         uint      `json:"module_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Published        bool      `json:"published"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// StudentChoiceDTO is the student-facing view of a choice: no correctness
// flag.
type StudentChoiceDTO struct {
	ID           uint   `json:"id"`
	Text         string `json:"text"`
	DisplayOrder int    `json:"display_order"`
}

// StudentQuestionDTO is the student-facing view of a question while taking a
// quiz.
type StudentQuestionDTO struct {
	ID           uint               `json:"id"`
	QuizID       uint               `json:"quiz_id"`
	Text         string             `json:"text"`
	Type         string             `json:"type"`
	Points       int                `json:"points"`
	DisplayOrder int                `json:"display_order"`
	Choices      []StudentChoiceDTO `json:"choices,omitempty"`
}

// StudentQuizDetailDTO is the quiz as shown to a student about to take it.
type StudentQuizDetailDTO struct {
	ID               uint                 `json:"id"`
	ModuleID         uint                 `json:"module_id"`
	Title            string               `json:"title"`
	Description      string               `json:"description,omitempty"`
	TimeLimitMinutes *int                 `json:"time_limit_minutes,omitempty"`
	Questions        []StudentQuestionDTO `json:"questions,omitempty"`
}

// StudentQuizListItemDTO lists a visible quiz along with the student's latest
// attempt, if any.
type StudentQuizListItemDTO struct {
	ID               uint               `json:"id"`
	ModuleID         uint               `json:"module_id"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	TimeLimitMinutes *int               `json:"time_limit_minutes,omitempty"`
	Attempt          *AttemptSummaryDTO `json:"attempt,omitempty"`
}
