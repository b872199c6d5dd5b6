package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
)

// StudentQuizService is the student-facing read side: which quizzes a student
// may take, and the stripped question view (no correctness flags).
type StudentQuizService interface {
	ListVisibleQuizzes(studentID uint) ([]dto.StudentQuizListItemDTO, error)
	GetQuizForStudent(quizID, studentID uint) (*dto.StudentQuizDetailDTO, error)
}

type studentQuizService struct {
	quizRepo    repository.QuizRepository
	moduleRepo  repository.ModuleRepository
	studentRepo repository.StudentRepository
	attemptRepo repository.AttemptRepository
}

func NewStudentQuizService(
	quizRepo repository.QuizRepository,
	moduleRepo repository.ModuleRepository,
	studentRepo repository.StudentRepository,
	attemptRepo repository.AttemptRepository,
) StudentQuizService {
	return &studentQuizService{
		quizRepo:    quizRepo,
		moduleRepo:  moduleRepo,
		studentRepo: studentRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *studentQuizService) ListVisibleQuizzes(studentID uint) ([]dto.StudentQuizListItemDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, wrapNotFound(err, "student", studentID)
	}

	quizzes, err := s.quizRepo.FindVisibleToClass(student.ClassID)
	if err != nil {
		log.Error().Err(err).Uint("classID", student.ClassID).Msg("ListVisibleQuizzes: repository error")
		return nil, fmt.Errorf("fetching quizzes for class %d: %w", student.ClassID, err)
	}

	attempts, err := s.attemptRepo.FindAllByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts for student %d: %w", studentID, err)
	}
	// Attempts come sorted newest first; keep the latest per quiz.
	latestByQuiz := make(map[uint]*model.Attempt, len(attempts))
	for i := range attempts {
		if _, ok := latestByQuiz[attempts[i].QuizID]; !ok {
			latestByQuiz[attempts[i].QuizID] = &attempts[i]
		}
	}

	items := make([]dto.StudentQuizListItemDTO, 0, len(quizzes))
	for i := range quizzes {
		var item dto.StudentQuizListItemDTO
		copier.Copy(&item, &quizzes[i])
		if attempt, ok := latestByQuiz[quizzes[i].ID]; ok {
			summary := toAttemptSummary(attempt)
			item.Attempt = &summary
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *studentQuizService) GetQuizForStudent(quizID, studentID uint) (*dto.StudentQuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, wrapNotFound(err, "quiz", quizID)
	}
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, wrapNotFound(err, "student", studentID)
	}
	if err := quizEligibility(s.moduleRepo, quiz, student); err != nil {
		return nil, err
	}

	var detail dto.StudentQuizDetailDTO
	if err := copier.Copy(&detail, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &detail, nil
}
