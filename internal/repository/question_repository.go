package repository

import (
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithChoices(id uint) (*model.Question, error)
	FindByQuizID(quizID uint) ([]model.Question, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithChoices(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.display_order ASC, choices.id ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.display_order ASC, choices.id ASC")
	}).
		Where("quiz_id = ?", quizID).
		Order("display_order ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
