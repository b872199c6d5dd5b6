package repository

import (
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

// AnswerRepository is read-only: answers are created inside the answer
// service's transaction (insert plus auto-completion check as one unit) and
// never updated or deleted on their own.
type AnswerRepository interface {
	FindByAttemptID(attemptID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByAttemptID(attemptID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Preload("SelectedChoices").
		Where("attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}
