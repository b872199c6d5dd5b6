package repository

import (
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

type ModuleRepository interface {
	Create(module *model.Module) error
	FindByID(id uint) (*model.Module, error)
	FindByIDWithClasses(id uint) (*model.Module, error)
	FindAll() ([]model.Module, error)
	Update(module *model.Module) error
	ReplaceClasses(module *model.Module, classes []model.Class) error
}

type moduleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(module *model.Module) error {
	return r.db.Create(module).Error
}

func (r *moduleRepository) FindByID(id uint) (*model.Module, error) {
	var module model.Module
	if err := r.db.First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) FindByIDWithClasses(id uint) (*model.Module, error) {
	var module model.Module
	if err := r.db.Preload("Classes").First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) FindAll() ([]model.Module, error) {
	var modules []model.Module
	if err := r.db.Preload("Classes").Order("created_at DESC").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) Update(module *model.Module) error {
	return r.db.Save(module).Error
}

func (r *moduleRepository) ReplaceClasses(module *model.Module, classes []model.Class) error {
	return r.db.Model(module).Association("Classes").Replace(classes)
}
