package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacinebd/scolaris/internal/model"
)

func newStudentQuizService(f *attemptFixture) StudentQuizService {
	return NewStudentQuizService(
		&fakeQuizRepo{f.store},
		&fakeModuleRepo{f.store},
		&fakeStudentRepo{f.store},
		&fakeAttemptRepo{f.store},
	)
}

func TestListVisibleQuizzesFiltersUnpublished(t *testing.T) {
	f := newAttemptFixture(t)
	draft := &model.Quiz{ModuleID: f.module.ID, Title: "Draft", Published: false}
	require.NoError(t, (&fakeQuizRepo{f.store}).Create(draft))

	items, err := newStudentQuizService(f).ListVisibleQuizzes(f.student.ID)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, f.quiz.ID, items[0].ID)
	assert.Nil(t, items[0].Attempt)
}

func TestListVisibleQuizzesCarriesLatestAttempt(t *testing.T) {
	f := newAttemptFixture(t)
	svc := newStudentQuizService(f)

	summary, err := f.service.StartAttempt(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	items, err := svc.ListVisibleQuizzes(f.student.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Attempt)
	assert.Equal(t, summary.ID, items[0].Attempt.ID)
	assert.False(t, items[0].Attempt.Completed)
}

func TestListVisibleQuizzesUnknownStudent(t *testing.T) {
	f := newAttemptFixture(t)

	_, err := newStudentQuizService(f).ListVisibleQuizzes(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetQuizForStudentStripsCorrectness(t *testing.T) {
	f := newAttemptFixture(t)

	detail, err := newStudentQuizService(f).GetQuizForStudent(f.quiz.ID, f.student.ID)
	require.NoError(t, err)

	assert.Equal(t, f.quiz.ID, detail.ID)
	require.Len(t, detail.Questions, 2)
	require.NotEmpty(t, detail.Questions[0].Choices)
}

func TestGetQuizForStudentNotEligible(t *testing.T) {
	f := newAttemptFixture(t)
	f.module.Published = false

	_, err := newStudentQuizService(f).GetQuizForStudent(f.quiz.ID, f.student.ID)
	assert.ErrorIs(t, err, ErrNotEligible)
}
