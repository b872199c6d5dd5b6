package repository

import (
	"errors"

	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	Update(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithAnswers(id uint) (*model.Attempt, error)
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	// FindInProgress returns (nil, nil) when the student has no open attempt
	// for the quiz.
	FindInProgress(quizID, studentID uint) (*model.Attempt, error)
	FindAllByQuiz(quizID uint) ([]model.Attempt, error)
	FindAllByStudent(studentID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.Attempt) error {
	// Answers are immutable once recorded; never write them through the
	// attempt even when they are loaded on the struct.
	return r.db.Omit(clause.Associations).Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithAnswers(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Answers.SelectedChoices").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Student").
		Preload("Answers.SelectedChoices").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindInProgress(quizID, studentID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("quiz_id = ? AND student_id = ? AND completed = ?", quizID, studentID, false).
		Order("started_at DESC").
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByQuiz(quizID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Preload("Student").
		Where("quiz_id = ?", quizID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("student_id = ?", studentID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}
