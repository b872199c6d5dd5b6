package repository

import (
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(class *model.Class) error
	FindAll() ([]model.Class, error)
	FindByIDs(ids []uint) ([]model.Class, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindAll() ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Order("name ASC").Find(&classes).Error
	return classes, err
}

func (r *classRepository) FindByIDs(ids []uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Where("id IN ?", ids).Find(&classes).Error
	return classes, err
}

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindAllByClass(classID uint) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAllByClass(classID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.db.
		Where("class_id = ?", classID).
		Order("last_name ASC, first_name ASC").
		Find(&students).Error
	return students, err
}
