package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
)

// RosterService covers the minimal class/student administration the engine
// needs for its foreign keys; full student management lives elsewhere.
type RosterService interface {
	CreateClass(req dto.ClassCreateDTO) (*dto.ClassResponseDTO, error)
	ListClasses() ([]dto.ClassResponseDTO, error)
	CreateStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	ListStudents(classID uint) ([]dto.StudentResponseDTO, error)
}

type rosterService struct {
	classRepo   repository.ClassRepository
	studentRepo repository.StudentRepository
}

func NewRosterService(classRepo repository.ClassRepository, studentRepo repository.StudentRepository) RosterService {
	return &rosterService{classRepo: classRepo, studentRepo: studentRepo}
}

func (s *rosterService) CreateClass(req dto.ClassCreateDTO) (*dto.ClassResponseDTO, error) {
	class := &model.Class{Name: req.Name}
	if err := s.classRepo.Create(class); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateClass: repository error")
		return nil, fmt.Errorf("creating class: %w", err)
	}
	var resp dto.ClassResponseDTO
	copier.Copy(&resp, class)
	return &resp, nil
}

func (s *rosterService) ListClasses() ([]dto.ClassResponseDTO, error) {
	classes, err := s.classRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching classes: %w", err)
	}
	responses := make([]dto.ClassResponseDTO, 0, len(classes))
	for i := range classes {
		var resp dto.ClassResponseDTO
		copier.Copy(&resp, &classes[i])
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *rosterService) CreateStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	classes, err := s.classRepo.FindByIDs([]uint{req.ClassID})
	if err != nil {
		return nil, fmt.Errorf("fetching class %d: %w", req.ClassID, err)
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: class %d", ErrNotFound, req.ClassID)
	}

	student := &model.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ClassID:   req.ClassID,
	}
	if err := s.studentRepo.Create(student); err != nil {
		log.Error().Err(err).Uint("classID", req.ClassID).Msg("CreateStudent: repository error")
		return nil, fmt.Errorf("creating student: %w", err)
	}
	var resp dto.StudentResponseDTO
	copier.Copy(&resp, student)
	return &resp, nil
}

func (s *rosterService) ListStudents(classID uint) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindAllByClass(classID)
	if err != nil {
		return nil, fmt.Errorf("fetching students of class %d: %w", classID, err)
	}
	responses := make([]dto.StudentResponseDTO, 0, len(students))
	for i := range students {
		var resp dto.StudentResponseDTO
		copier.Copy(&resp, &students[i])
		responses = append(responses, resp)
	}
	return responses, nil
}
