package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacinebd/scolaris/internal/model"
)

func choiceQuestion(id uint, qType model.QuestionType, points int, correctIDs ...uint) model.Question {
	q := model.Question{ID: id, Type: qType, Points: points}
	correct := make(map[uint]bool, len(correctIDs))
	for _, cid := range correctIDs {
		correct[cid] = true
	}
	// choice ids 10*id+1 .. 10*id+4
	for i := uint(1); i <= 4; i++ {
		cid := 10*id + i
		q.Choices = append(q.Choices, model.Choice{ID: cid, QuestionID: id, IsCorrect: correct[cid]})
	}
	return q
}

func strPtr(s string) *string { return &s }

func TestGradeAnswerSingleChoice(t *testing.T) {
	q := choiceQuestion(1, model.QuestionSingleChoice, 1, 12)

	assert.True(t, gradeAnswer(&q, []uint{12}, nil))
	assert.False(t, gradeAnswer(&q, []uint{11}, nil))
	assert.False(t, gradeAnswer(&q, []uint{999}, nil))
	assert.False(t, gradeAnswer(&q, nil, nil))
}

func TestGradeAnswerTrueFalse(t *testing.T) {
	q := model.Question{ID: 2, Type: model.QuestionTrueFalse, Points: 1, Choices: []model.Choice{
		{ID: 21, Text: "True", IsCorrect: true},
		{ID: 22, Text: "False", IsCorrect: false},
	}}

	assert.True(t, gradeAnswer(&q, []uint{21}, nil))
	assert.False(t, gradeAnswer(&q, []uint{22}, nil))
}

func TestGradeAnswerMultiChoice(t *testing.T) {
	q := choiceQuestion(3, model.QuestionMultiChoice, 2, 31, 33)

	tests := []struct {
		name     string
		selected []uint
		want     bool
	}{
		{"exact match", []uint{31, 33}, true},
		{"exact match, order independent", []uint{33, 31}, true},
		{"subset", []uint{31}, false},
		{"superset", []uint{31, 33, 32}, false},
		{"disjoint", []uint{32, 34}, false},
		{"duplicates do not stand in for the second correct choice", []uint{31, 31}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gradeAnswer(&q, tt.selected, nil))
		})
	}
}

func TestGradeAnswerShortTextAlwaysIncorrect(t *testing.T) {
	q := model.Question{ID: 4, Type: model.QuestionShortText, Points: 1}

	assert.False(t, gradeAnswer(&q, nil, strPtr("photosynthesis")))
	assert.False(t, gradeAnswer(&q, nil, strPtr("")))
}

func TestGradeAnswerIsDeterministic(t *testing.T) {
	q := choiceQuestion(5, model.QuestionMultiChoice, 1, 51, 52)
	first := gradeAnswer(&q, []uint{51, 52}, nil)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, gradeAnswer(&q, []uint{51, 52}, nil))
	}
}

func TestScoreAttemptAllCorrect(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, model.QuestionSingleChoice, 1, 12),
		choiceQuestion(2, model.QuestionMultiChoice, 1, 21, 23),
	}
	answers := []model.Answer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: true},
	}

	earned, total, score := scoreAttempt(questions, answers)
	assert.Equal(t, 2, earned)
	assert.Equal(t, 2, total)
	assert.Equal(t, 100.0, score)
}

func TestScoreAttemptHalfCorrect(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, model.QuestionSingleChoice, 1, 12),
		choiceQuestion(2, model.QuestionSingleChoice, 1, 22),
	}
	answers := []model.Answer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: false},
	}

	earned, total, score := scoreAttempt(questions, answers)
	assert.Equal(t, 1, earned)
	assert.Equal(t, 2, total)
	assert.Equal(t, 50.0, score)
}

func TestScoreAttemptWeightedPoints(t *testing.T) {
	// A 2-point question answered wrong loses both points.
	questions := []model.Question{
		choiceQuestion(1, model.QuestionSingleChoice, 1, 12),
		choiceQuestion(2, model.QuestionMultiChoice, 2, 21, 23),
	}
	answers := []model.Answer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: false},
	}

	earned, total, score := scoreAttempt(questions, answers)
	assert.Equal(t, 1, earned)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33.3, score)
}

func TestScoreAttemptUnansweredCountsAsIncorrect(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, model.QuestionSingleChoice, 1, 12),
		choiceQuestion(2, model.QuestionSingleChoice, 1, 22),
	}
	answers := []model.Answer{{QuestionID: 1, IsCorrect: true}}

	earned, total, score := scoreAttempt(questions, answers)
	assert.Equal(t, 1, earned)
	assert.Equal(t, 2, total)
	assert.Equal(t, 50.0, score)
}

func TestScoreAttemptNoQuestions(t *testing.T) {
	earned, total, score := scoreAttempt(nil, nil)
	assert.Zero(t, earned)
	assert.Zero(t, total)
	assert.Equal(t, 0.0, score)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 33.3, roundScore(100.0/3))
	assert.Equal(t, 66.7, roundScore(200.0/3))
	assert.Equal(t, 100.0, roundScore(100))
	assert.Equal(t, 0.0, roundScore(0))
}
