package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
	"gorm.io/gorm"
)

// AttemptService is the single owner of the attempt lifecycle:
// InProgress (created on start) -> Completed (terminal). Nothing else
// transitions or mutates attempts.
type AttemptService interface {
	// StartAttempt resumes the student's open attempt for the quiz if one
	// exists, otherwise creates a new one. The quiz and its module must be
	// published and the module visible to the student's class.
	StartAttempt(quizID, studentID uint) (*dto.AttemptSummaryDTO, error)
	// NextUnansweredQuestion returns the first question in display order with
	// no answer yet, or a nil Question once everything is answered.
	NextUnansweredQuestion(attemptID uint) (*dto.NextQuestionDTO, error)
	// CompleteAttempt finishes the attempt and persists its score. Calling it
	// on a completed attempt is a no-op returning the stored score unchanged.
	CompleteAttempt(attemptID uint) (*dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	quizRepo     repository.QuizRepository
	moduleRepo   repository.ModuleRepository
	studentRepo  repository.StudentRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	attemptRepo  repository.AttemptRepository
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	moduleRepo repository.ModuleRepository,
	studentRepo repository.StudentRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.AttemptRepository,
) AttemptService {
	return &attemptService{
		quizRepo:     quizRepo,
		moduleRepo:   moduleRepo,
		studentRepo:  studentRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		attemptRepo:  attemptRepo,
	}
}

func (s *attemptService) StartAttempt(quizID, studentID uint) (*dto.AttemptSummaryDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
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

	existing, err := s.attemptRepo.FindInProgress(quizID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Uint("studentID", studentID).Msg("StartAttempt: failed to look up open attempt")
		return nil, fmt.Errorf("looking up open attempt: %w", err)
	}
	if existing != nil {
		// Resume semantics: one open attempt per (quiz, student).
		summary := toAttemptSummary(existing)
		return &summary, nil
	}

	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", quizID, err)
	}

	attempt := &model.Attempt{
		QuizID:    quizID,
		StudentID: studentID,
		StartedAt: time.Now(),
	}
	if len(questions) == 0 {
		// A quiz with no questions has nothing to answer, so the attempt is
		// born completed with a zero score.
		zero := 0.0
		now := time.Now()
		attempt.Score = &zero
		attempt.EndedAt = &now
		attempt.Completed = true
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent start; the open-attempt index kept the other
			// one, resume it.
			return s.resumeOpenAttempt(quizID, studentID)
		}
		log.Error().Err(err).Uint("quizID", quizID).Uint("studentID", studentID).Msg("StartAttempt: failed to create attempt")
		return nil, fmt.Errorf("creating attempt: %w", err)
	}
	log.Info().Uint("attemptID", attempt.ID).Uint("quizID", quizID).Uint("studentID", studentID).Bool("completed", attempt.Completed).Msg("Attempt started")

	summary := toAttemptSummary(attempt)
	return &summary, nil
}

func (s *attemptService) resumeOpenAttempt(quizID, studentID uint) (*dto.AttemptSummaryDTO, error) {
	existing, err := s.attemptRepo.FindInProgress(quizID, studentID)
	if err != nil {
		return nil, fmt.Errorf("looking up open attempt: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("open attempt for quiz %d and student %d vanished", quizID, studentID)
	}
	summary := toAttemptSummary(existing)
	return &summary, nil
}

func (s *attemptService) NextUnansweredQuestion(attemptID uint) (*dto.NextQuestionDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, wrapNotFound(err, "attempt", attemptID)
	}

	resp := &dto.NextQuestionDTO{AttemptID: attempt.ID, Completed: attempt.Completed}
	if attempt.Completed {
		return resp, nil
	}

	questions, err := s.questionRepo.FindByQuizID(attempt.QuizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", attempt.QuizID, err)
	}
	answers, err := s.answerRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching answers for attempt %d: %w", attempt.ID, err)
	}

	if q := nextUnanswered(questions, answers); q != nil {
		question := toStudentQuestion(q)
		resp.Question = &question
	}
	return resp, nil
}

func (s *attemptService) CompleteAttempt(attemptID uint) (*dto.AttemptSummaryDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		return nil, wrapNotFound(err, "attempt", attemptID)
	}

	// Idempotent: the stored score is final, never recomputed.
	if attempt.Completed {
		summary := toAttemptSummary(attempt)
		return &summary, nil
	}

	questions, err := s.questionRepo.FindByQuizID(attempt.QuizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", attempt.QuizID, err)
	}

	_, _, score := scoreAttempt(questions, attempt.Answers)
	now := time.Now()
	attempt.Score = &score
	attempt.EndedAt = &now
	attempt.Completed = true

	if err := s.attemptRepo.Update(attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("CompleteAttempt: failed to persist completion")
		return nil, fmt.Errorf("completing attempt %d: %w", attempt.ID, err)
	}
	log.Info().Uint("attemptID", attempt.ID).Float64("score", score).Msg("Attempt completed")

	summary := toAttemptSummary(attempt)
	return &summary, nil
}

// nextUnanswered picks the first question in display order lacking an answer.
// Questions are expected pre-sorted by the repository.
func nextUnanswered(questions []model.Question, answers []model.Answer) *model.Question {
	answered := make(map[uint]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}
	for i := range questions {
		if !answered[questions[i].ID] {
			return &questions[i]
		}
	}
	return nil
}

// quizEligibility checks the visibility preconditions shared by StartAttempt
// and the student quiz views.
func quizEligibility(moduleRepo repository.ModuleRepository, quiz *model.Quiz, student *model.Student) error {
	if !quiz.Published {
		return fmt.Errorf("%w: quiz %d is not published", ErrNotEligible, quiz.ID)
	}
	module, err := moduleRepo.FindByIDWithClasses(quiz.ModuleID)
	if err != nil {
		return wrapNotFound(err, "module", quiz.ModuleID)
	}
	if !module.Published {
		return fmt.Errorf("%w: module %d is not published", ErrNotEligible, module.ID)
	}
	for _, class := range module.Classes {
		if class.ID == student.ClassID {
			return nil
		}
	}
	return fmt.Errorf("%w: module %d is not visible to class %d", ErrNotEligible, module.ID, student.ClassID)
}

// wrapNotFound converts gorm's record-not-found into the engine's ErrNotFound
// and leaves other errors untouched.
func wrapNotFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return fmt.Errorf("fetching %s %d: %w", entity, id, err)
}

func toAttemptSummary(attempt *model.Attempt) dto.AttemptSummaryDTO {
	var summary dto.AttemptSummaryDTO
	copier.Copy(&summary, attempt)
	return summary
}

// toStudentQuestion maps a question to its student-facing view. The DTO has
// no correctness field, so copier drops the flags on its own.
func toStudentQuestion(question *model.Question) dto.StudentQuestionDTO {
	var q dto.StudentQuestionDTO
	copier.Copy(&q, question)
	return q
}
