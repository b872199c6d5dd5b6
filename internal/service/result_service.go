package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
)

// ResultService assembles the read-only review of an attempt: per question,
// the recorded answer with its frozen correctness, and the choices marked
// correct. It works on in-progress attempts too (partial items, nil score)
// and never writes — viewing results must not complete an attempt.
type ResultService interface {
	AttemptResult(attemptID uint) (*dto.AttemptResultDTO, error)
}

type resultService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
}

func NewResultService(attemptRepo repository.AttemptRepository, questionRepo repository.QuestionRepository) ResultService {
	return &resultService{attemptRepo: attemptRepo, questionRepo: questionRepo}
}

func (s *resultService) AttemptResult(attemptID uint) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		return nil, wrapNotFound(err, "attempt", attemptID)
	}
	questions, err := s.questionRepo.FindByQuizID(attempt.QuizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", attempt.QuizID, err)
	}

	answersByQuestion := make(map[uint]*model.Answer, len(attempt.Answers))
	for i := range attempt.Answers {
		answersByQuestion[attempt.Answers[i].QuestionID] = &attempt.Answers[i]
	}

	items := make([]dto.ResultItemDTO, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		item := dto.ResultItemDTO{
			QuestionID: q.ID,
			Text:       q.Text,
			Type:       string(q.Type),
			Points:     q.Points,
		}
		copier.Copy(&item.Choices, &q.Choices)

		if answer, ok := answersByQuestion[q.ID]; ok {
			item.Answered = true
			item.IsCorrect = answer.IsCorrect
			item.FreeText = answer.FreeText
			copier.Copy(&item.SelectedChoices, &answer.SelectedChoices)
		}
		items = append(items, item)
	}

	// Earned/total are recomputed for display from the frozen per-answer
	// flags; the Score field is only ever the stored one.
	earned, total, _ := scoreAttempt(questions, attempt.Answers)

	return &dto.AttemptResultDTO{
		AttemptID:    attempt.ID,
		QuizID:       attempt.QuizID,
		QuizTitle:    attempt.Quiz.Title,
		StudentID:    attempt.StudentID,
		Completed:    attempt.Completed,
		StartedAt:    attempt.StartedAt,
		EndedAt:      attempt.EndedAt,
		Score:        attempt.Score,
		EarnedPoints: earned,
		TotalPoints:  total,
		Items:        items,
	}, nil
}
