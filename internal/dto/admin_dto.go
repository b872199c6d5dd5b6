package dto

// ChoiceCreateDTO is used within question creation.
type ChoiceCreateDTO struct {
	Text         string `json:"text" binding:"required"`
	IsCorrect    bool   `json:"is_correct"`
	DisplayOrder int    `json:"display_order"`
}

// QuestionCreateDTO is used standalone (add question to quiz) and within
// QuizCreateDTO. Choice-shape invariants are enforced in the service layer
// since they depend on the question type.
type QuestionCreateDTO struct {
	Text         string            `json:"text" binding:"required"`
	Type         string            `json:"type" binding:"required,oneof=single_choice multi_choice short_text true_false"`
	Points       int               `json:"points" binding:"omitempty,min=1"`
	DisplayOrder int               `json:"display_order"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// QuizCreateDTO creates a quiz under a module, optionally with its questions.
type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description,omitempty"`
	TimeLimitMinutes *int                `json:"time_limit_minutes" binding:"omitempty,min=1"`
	DisplayOrder     int                 `json:"display_order"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// ModuleCreateDTO creates a content module and attaches its visible classes.
type ModuleCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	TeacherID   *uint  `json:"teacher_id"`
	ClassIDs    []uint `json:"class_ids" binding:"omitempty,dive,min=1"`
}

// ModuleClassesDTO replaces the set of classes a module is visible to.
type ModuleClassesDTO struct {
	ClassIDs []uint `json:"class_ids" binding:"required,dive,min=1"`
}

// PublishDTO toggles the published flag of a module or quiz.
type PublishDTO struct {
	Published *bool `json:"published" binding:"required"`
}

type ClassCreateDTO struct {
	Name string `json:"name" binding:"required"`
}

type StudentCreateDTO struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	ClassID   uint   `json:"class_id" binding:"required,min=1"`
}
