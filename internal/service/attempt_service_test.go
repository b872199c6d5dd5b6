package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacinebd/scolaris/internal/model"
	"gorm.io/gorm"
)

type attemptFixture struct {
	store   *fakeStore
	service AttemptService
	class   *model.Class
	student *model.Student
	module  *model.Module
	quiz    *model.Quiz
}

// newAttemptFixture seeds a published module visible to one class, one student
// in that class, and a published two-question quiz.
func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()
	store := newFakeStore()

	class := &model.Class{Name: "3A"}
	require.NoError(t, (&fakeClassRepo{store}).Create(class))
	student := &model.Student{FirstName: "Lina", LastName: "Haddad", ClassID: class.ID}
	require.NoError(t, (&fakeStudentRepo{store}).Create(student))
	module := &model.Module{Title: "Biology", Published: true, Classes: []model.Class{*class}}
	require.NoError(t, (&fakeModuleRepo{store}).Create(module))

	q1 := choiceQuestion(0, model.QuestionSingleChoice, 1)
	q1.DisplayOrder = 1
	q2 := choiceQuestion(0, model.QuestionMultiChoice, 1)
	q2.DisplayOrder = 2
	quiz := &model.Quiz{ModuleID: module.ID, Title: "Cells", Published: true, Questions: []model.Question{q1, q2}}
	require.NoError(t, (&fakeQuizRepo{store}).Create(quiz))

	svc := NewAttemptService(
		&fakeQuizRepo{store},
		&fakeModuleRepo{store},
		&fakeStudentRepo{store},
		&fakeQuestionRepo{store},
		&fakeAnswerRepo{store},
		&fakeAttemptRepo{store},
	)
	return &attemptFixture{store: store, service: svc, class: class, student: student, module: module, quiz: quiz}
}

func (f *attemptFixture) answer(attemptID uint, question model.Question, correct bool) {
	f.store.answers = append(f.store.answers, model.Answer{
		AttemptID:  attemptID,
		QuestionID: question.ID,
		IsCorrect:  correct,
	})
}

func TestStartAttemptCreatesAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	assert.NotZero(t, summary.ID)
	assert.Equal(t, f.quiz.ID, summary.QuizID)
	assert.Equal(t, f.student.ID, summary.StudentID)
	assert.False(t, summary.Completed)
	assert.Nil(t, summary.Score)
	assert.Len(t, f.store.attempts, 1)
}

func TestStartAttemptResumesOpenAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	first, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)
	second, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.attempts, 1)
}

func TestStartAttemptAfterCompletionCreatesNewAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	first, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)
	_, err = f.service.CompleteAttempt(first.ID)
	require.NoError(t, err)

	second, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.store.attempts, 2)
}

func TestStartAttemptEligibility(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(f *attemptFixture)
	}{
		{"unpublished quiz", func(f *attemptFixture) { f.quiz.Published = false }},
		{"unpublished module", func(f *attemptFixture) { f.module.Published = false }},
		{"module not visible to the student's class", func(f *attemptFixture) { f.module.Classes = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAttemptFixture(t)
			tt.arrange(f)

			_, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
			assert.ErrorIs(t, err, ErrNotEligible)
			assert.Empty(t, f.store.attempts)
		})
	}
}

func TestStartAttemptUnknownQuiz(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.service.StartAttempt(999, f.student.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartAttemptUnknownStudent(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.service.StartAttempt(f.quiz.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextUnansweredQuestionWalksDisplayOrder(t *testing.T) {
	f := newAttemptFixture(t)
	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	next, err := f.service.NextUnansweredQuestion(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, next.Question)
	assert.Equal(t, f.quiz.Questions[0].ID, next.Question.ID)

	f.answer(summary.ID, f.quiz.Questions[0], true)
	next, err = f.service.NextUnansweredQuestion(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, next.Question)
	assert.Equal(t, f.quiz.Questions[1].ID, next.Question.ID)

	f.answer(summary.ID, f.quiz.Questions[1], false)
	next, err = f.service.NextUnansweredQuestion(summary.ID)
	require.NoError(t, err)
	assert.Nil(t, next.Question)
}

func TestNextUnansweredQuestionHidesCorrectness(t *testing.T) {
	f := newAttemptFixture(t)
	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	next, err := f.service.NextUnansweredQuestion(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, next.Question)
	assert.Len(t, next.Question.Choices, len(f.quiz.Questions[0].Choices))
}

func TestNextUnansweredQuestionUnknownAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.service.NextUnansweredQuestion(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteAttemptComputesScore(t *testing.T) {
	f := newAttemptFixture(t)
	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	f.answer(summary.ID, f.quiz.Questions[0], true)
	f.answer(summary.ID, f.quiz.Questions[1], false)

	done, err := f.service.CompleteAttempt(summary.ID)
	require.NoError(t, err)

	assert.True(t, done.Completed)
	require.NotNil(t, done.Score)
	assert.Equal(t, 50.0, *done.Score)
	assert.NotNil(t, done.EndedAt)

	stored := f.store.attempts[summary.ID]
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 50.0, *stored.Score)
}

func TestCompleteAttemptWithUnansweredQuestions(t *testing.T) {
	f := newAttemptFixture(t)
	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	f.answer(summary.ID, f.quiz.Questions[0], true)

	done, err := f.service.CompleteAttempt(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, done.Score)
	assert.Equal(t, 50.0, *done.Score)
}

func TestCompleteAttemptIsIdempotent(t *testing.T) {
	f := newAttemptFixture(t)
	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	f.answer(summary.ID, f.quiz.Questions[0], true)
	f.answer(summary.ID, f.quiz.Questions[1], false)

	first, err := f.service.CompleteAttempt(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, first.Score)
	firstEnd := *first.EndedAt

	// Even if the stored answers change afterwards, the score stays frozen.
	f.store.answers[1].IsCorrect = true
	time.Sleep(time.Millisecond)

	second, err := f.service.CompleteAttempt(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, second.Score)
	assert.Equal(t, *first.Score, *second.Score)
	assert.Equal(t, firstEnd, *second.EndedAt)
}

func TestStartAttemptEmptyQuizAutoCompletes(t *testing.T) {
	f := newAttemptFixture(t)
	empty := &model.Quiz{ModuleID: f.module.ID, Title: "Empty", Published: true}
	require.NoError(t, (&fakeQuizRepo{f.store}).Create(empty))

	summary, err := f.service.StartAttempt(empty.ID, f.student.ID)
	require.NoError(t, err)

	assert.True(t, summary.Completed)
	require.NotNil(t, summary.Score)
	assert.Equal(t, 0.0, *summary.Score)
	assert.NotNil(t, summary.EndedAt)

	// Completing it again is a no-op returning the stored zero.
	done, err := f.service.CompleteAttempt(summary.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.Score)
	assert.Equal(t, 0.0, *done.Score)
}

// racingAttemptRepo simulates two clients starting the same quiz at once: the
// in-progress lookup misses while the insert hits the open-attempt unique
// index.
type racingAttemptRepo struct {
	*fakeAttemptRepo
	missOnce bool
}

func (r *racingAttemptRepo) FindInProgress(quizID, studentID uint) (*model.Attempt, error) {
	if r.missOnce {
		r.missOnce = false
		return nil, nil
	}
	return r.fakeAttemptRepo.FindInProgress(quizID, studentID)
}

func (r *racingAttemptRepo) Create(a *model.Attempt) error {
	if open, _ := r.fakeAttemptRepo.FindInProgress(a.QuizID, a.StudentID); open != nil {
		return gorm.ErrDuplicatedKey
	}
	return r.fakeAttemptRepo.Create(a)
}

func TestStartAttemptLosingTheRaceResumesTheWinner(t *testing.T) {
	f := newAttemptFixture(t)
	racing := &racingAttemptRepo{fakeAttemptRepo: &fakeAttemptRepo{f.store}, missOnce: true}
	svc := NewAttemptService(
		&fakeQuizRepo{f.store},
		&fakeModuleRepo{f.store},
		&fakeStudentRepo{f.store},
		&fakeQuestionRepo{f.store},
		&fakeAnswerRepo{f.store},
		racing,
	)

	winner := &model.Attempt{QuizID: f.quiz.ID, StudentID: f.student.ID}
	require.NoError(t, (&fakeAttemptRepo{f.store}).Create(winner))

	summary, err := svc.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, summary.ID)
	assert.Len(t, f.store.attempts, 1)
}

func TestCompleteAttemptUnknownAttempt(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := f.service.CompleteAttempt(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
