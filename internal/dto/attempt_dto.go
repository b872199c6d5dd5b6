package dto

import "time"

// StartAttemptDTO starts (or resumes) an attempt. StudentID comes from the
// request until the auth collaborator supplies it.
type StartAttemptDTO struct {
	StudentID uint `json:"student_id" binding:"required,min=1"`
}

// RecordAnswerDTO submits a response to one question. Choice questions take
// choice ids, short_text takes free text.
type RecordAnswerDTO struct {
	QuestionID uint    `json:"question_id" binding:"required,min=1"`
	ChoiceIDs  []uint  `json:"choice_ids" binding:"omitempty,dive,min=1"`
	FreeText   *string `json:"free_text"`
}

type AttemptSummaryDTO struct {
	ID        uint       `json:"id"`
	QuizID    uint       `json:"quiz_id"`
	StudentID uint       `json:"student_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Score     *float64   `json:"score,omitempty"`
	Completed bool       `json:"completed"`
}

// AttemptReviewDTO is the teacher-facing attempt listing with the student
// attached.
type AttemptReviewDTO struct {
	AttemptSummaryDTO
	Student StudentResponseDTO `json:"student"`
}

// RecordAnswerResultDTO reports the stored answer plus whether recording it
// auto-completed the attempt.
type RecordAnswerResultDTO struct {
	AnswerID         uint     `json:"answer_id"`
	QuestionID       uint     `json:"question_id"`
	IsCorrect        bool     `json:"is_correct"`
	AttemptCompleted bool     `json:"attempt_completed"`
	Score            *float64 `json:"score,omitempty"`
}

// NextQuestionDTO routes the student to the next pending question. Question
// is nil once every question has an answer.
type NextQuestionDTO struct {
	AttemptID uint                `json:"attempt_id"`
	Completed bool                `json:"completed"`
	Question  *StudentQuestionDTO `json:"question,omitempty"`
}

// ResultItemDTO is one question's review line: the question, its correct
// choices, and the recorded answer if any.
type ResultItemDTO struct {
	QuestionID      uint                `json:"question_id"`
	Text            string              `json:"text"`
	Type            string              `json:"type"`
	Points          int                 `json:"points"`
	Choices         []ChoiceResponseDTO `json:"choices,omitempty"`
	Answered        bool                `json:"answered"`
	SelectedChoices []StudentChoiceDTO  `json:"selected_choices,omitempty"`
	FreeText        *string             `json:"free_text,omitempty"`
	IsCorrect       bool                `json:"is_correct"`
}

// AttemptResultDTO is the read-only result view; valid for completed and
// in-progress attempts (partial results, nil score).
type AttemptResultDTO struct {
	AttemptID    uint            `json:"attempt_id"`
	QuizID       uint            `json:"quiz_id"`
	QuizTitle    string          `json:"quiz_title,omitempty"`
	StudentID    uint            `json:"student_id"`
	Completed    bool            `json:"completed"`
	StartedAt    time.Time       `json:"started_at"`
	EndedAt      *time.Time      `json:"ended_at,omitempty"`
	Score        *float64        `json:"score,omitempty"`
	EarnedPoints int             `json:"earned_points"`
	TotalPoints  int             `json:"total_points"`
	Items        []ResultItemDTO `json:"items"`
}
