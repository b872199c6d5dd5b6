package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
)

// ModuleService manages the content containers quizzes are grouped in and
// their class visibility.
type ModuleService interface {
	CreateModule(req dto.ModuleCreateDTO) (*dto.ModuleResponseDTO, error)
	ListModules() ([]dto.ModuleResponseDTO, error)
	SetModulePublished(moduleID uint, published bool) (*dto.ModuleResponseDTO, error)
	SetModuleClasses(moduleID uint, classIDs []uint) (*dto.ModuleResponseDTO, error)
}

type moduleService struct {
	moduleRepo repository.ModuleRepository
	classRepo  repository.ClassRepository
}

func NewModuleService(moduleRepo repository.ModuleRepository, classRepo repository.ClassRepository) ModuleService {
	return &moduleService{moduleRepo: moduleRepo, classRepo: classRepo}
}

func (s *moduleService) CreateModule(req dto.ModuleCreateDTO) (*dto.ModuleResponseDTO, error) {
	classes, err := s.resolveClasses(req.ClassIDs)
	if err != nil {
		return nil, err
	}

	module := &model.Module{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		Classes:     classes,
	}
	if err := s.moduleRepo.Create(module); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateModule: repository error")
		return nil, fmt.Errorf("creating module: %w", err)
	}
	log.Info().Uint("moduleID", module.ID).Str("title", module.Title).Msg("Module created")
	return moduleResponse(module), nil
}

func (s *moduleService) ListModules() ([]dto.ModuleResponseDTO, error) {
	modules, err := s.moduleRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching modules: %w", err)
	}
	responses := make([]dto.ModuleResponseDTO, 0, len(modules))
	for i := range modules {
		responses = append(responses, *moduleResponse(&modules[i]))
	}
	return responses, nil
}

func (s *moduleService) SetModulePublished(moduleID uint, published bool) (*dto.ModuleResponseDTO, error) {
	module, err := s.moduleRepo.FindByIDWithClasses(moduleID)
	if err != nil {
		return nil, wrapNotFound(err, "module", moduleID)
	}
	module.Published = published
	if err := s.moduleRepo.Update(module); err != nil {
		return nil, fmt.Errorf("updating module %d: %w", moduleID, err)
	}
	log.Info().Uint("moduleID", moduleID).Bool("published", published).Msg("Module publication toggled")
	return moduleResponse(module), nil
}

func (s *moduleService) SetModuleClasses(moduleID uint, classIDs []uint) (*dto.ModuleResponseDTO, error) {
	module, err := s.moduleRepo.FindByIDWithClasses(moduleID)
	if err != nil {
		return nil, wrapNotFound(err, "module", moduleID)
	}
	classes, err := s.resolveClasses(classIDs)
	if err != nil {
		return nil, err
	}
	if err := s.moduleRepo.ReplaceClasses(module, classes); err != nil {
		return nil, fmt.Errorf("updating classes of module %d: %w", moduleID, err)
	}
	module.Classes = classes
	return moduleResponse(module), nil
}

func (s *moduleService) resolveClasses(classIDs []uint) ([]model.Class, error) {
	if len(classIDs) == 0 {
		return nil, nil
	}
	classes, err := s.classRepo.FindByIDs(classIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching classes: %w", err)
	}
	if len(classes) != len(classIDs) {
		return nil, fmt.Errorf("%w: one or more class ids in %v", ErrNotFound, classIDs)
	}
	return classes, nil
}

func moduleResponse(module *model.Module) *dto.ModuleResponseDTO {
	var resp dto.ModuleResponseDTO
	copier.Copy(&resp, module)
	return &resp
}
