package repository

import (
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

// QuizWithQuestionCount is returned by listing queries so the UI can show how
// many questions a quiz has without loading them.
type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllByModule(moduleID uint) ([]QuizWithQuestionCount, error)
	FindVisibleToClass(classID uint) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates nested questions and their choices in one go when the
	// associations are populated.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC, questions.id ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.display_order ASC, choices.id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllByModule(moduleID uint) ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.module_id = ?", moduleID).
		Order("quizzes.display_order ASC, quizzes.created_at ASC").
		Scan(&results).Error
	return results, err
}

func (r *quizRepository) FindVisibleToClass(classID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Joins("JOIN modules ON modules.id = quizzes.module_id AND modules.deleted_at IS NULL").
		Joins("JOIN module_classes ON module_classes.module_id = modules.id").
		Where("quizzes.published = ? AND modules.published = ? AND module_classes.class_id = ?", true, true, classID).
		Order("quizzes.display_order ASC, quizzes.created_at ASC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	// Cascade by hand: soft-delete choices of the quiz's questions, then the
	// questions, then the quiz itself.
	return r.db.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
