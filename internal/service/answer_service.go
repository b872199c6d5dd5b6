package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerService records one response per (attempt, question). The composite
// unique index on answers makes the insert itself the uniqueness check, so a
// double submission loses the race at the database and is reported as
// ErrAlreadyAnswered instead of overwriting anything.
type AnswerService interface {
	RecordAnswer(attemptID uint, req dto.RecordAnswerDTO) (*dto.RecordAnswerResultDTO, error)
}

type answerService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewAnswerService(
	attemptRepo repository.AttemptRepository,
	questionRepo repository.QuestionRepository,
	db *gorm.DB,
) AnswerService {
	return &answerService{attemptRepo: attemptRepo, questionRepo: questionRepo, db: db}
}

func (s *answerService) RecordAnswer(attemptID uint, req dto.RecordAnswerDTO) (*dto.RecordAnswerResultDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, wrapNotFound(err, "attempt", attemptID)
	}
	if attempt.Completed {
		return nil, fmt.Errorf("%w: attempt %d", ErrAttemptCompleted, attempt.ID)
	}

	question, err := s.questionRepo.FindByIDWithChoices(req.QuestionID)
	if err != nil {
		return nil, wrapNotFound(err, "question", req.QuestionID)
	}
	if question.QuizID != attempt.QuizID {
		return nil, fmt.Errorf("%w: question %d is not part of quiz %d", ErrNotFound, question.ID, attempt.QuizID)
	}

	if err := validateResponse(question, req.ChoiceIDs, req.FreeText); err != nil {
		return nil, err
	}

	// Correctness is decided here, once, and stored with the answer.
	isCorrect := gradeAnswer(question, req.ChoiceIDs, req.FreeText)

	answer := model.Answer{
		AttemptID:  attempt.ID,
		QuestionID: question.ID,
		IsCorrect:  isCorrect,
	}
	if question.Type == model.QuestionShortText {
		answer.FreeText = req.FreeText
	} else {
		answer.SelectedChoices = choicesByID(question.Choices, req.ChoiceIDs)
	}

	result := &dto.RecordAnswerResultDTO{QuestionID: question.ID, IsCorrect: isCorrect}

	// One transaction for the insert and the auto-completion check: either
	// the answer lands (and, if it was the last one, the attempt finishes
	// with its score) or nothing is persisted.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Omit the choice rows themselves; only join rows are written.
		if err := tx.Omit("SelectedChoices.*").Create(&answer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: question %d", ErrAlreadyAnswered, question.ID)
			}
			return fmt.Errorf("storing answer: %w", err)
		}

		var questions []model.Question
		if err := tx.Where("quiz_id = ?", attempt.QuizID).
			Order("display_order ASC, id ASC").
			Find(&questions).Error; err != nil {
			return fmt.Errorf("fetching questions for quiz %d: %w", attempt.QuizID, err)
		}
		var answers []model.Answer
		if err := tx.Where("attempt_id = ?", attempt.ID).Find(&answers).Error; err != nil {
			return fmt.Errorf("fetching answers for attempt %d: %w", attempt.ID, err)
		}

		if nextUnanswered(questions, answers) != nil {
			return nil
		}

		// Last pending question just got its answer: complete the attempt.
		_, _, score := scoreAttempt(questions, answers)
		now := time.Now()
		attempt.Score = &score
		attempt.EndedAt = &now
		attempt.Completed = true
		if err := tx.Omit(clause.Associations).Save(attempt).Error; err != nil {
			return fmt.Errorf("completing attempt %d: %w", attempt.ID, err)
		}
		result.AttemptCompleted = true
		result.Score = &score
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyAnswered) {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Uint("questionID", question.ID).Msg("RecordAnswer failed")
		}
		return nil, err
	}

	result.AnswerID = answer.ID
	if result.AttemptCompleted {
		log.Info().Uint("attemptID", attempt.ID).Float64("score", *result.Score).Msg("Attempt auto-completed after last answer")
	}
	return result, nil
}

func choicesByID(choices []model.Choice, ids []uint) []model.Choice {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	selected := make([]model.Choice, 0, len(ids))
	for _, c := range choices {
		if wanted[c.ID] {
			selected = append(selected, c)
		}
	}
	return selected
}
