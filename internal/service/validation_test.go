package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacinebd/scolaris/internal/model"
)

func TestValidateResponse(t *testing.T) {
	single := choiceQuestion(1, model.QuestionSingleChoice, 1, 12)
	multi := choiceQuestion(2, model.QuestionMultiChoice, 1, 21, 23)
	trueFalse := model.Question{ID: 3, Type: model.QuestionTrueFalse, Choices: []model.Choice{
		{ID: 31, IsCorrect: true},
		{ID: 32},
	}}
	shortText := model.Question{ID: 4, Type: model.QuestionShortText}

	tests := []struct {
		name     string
		question *model.Question
		choices  []uint
		freeText *string
		wantErr  bool
	}{
		{"single choice ok", &single, []uint{12}, nil, false},
		{"single choice, none selected", &single, nil, nil, true},
		{"single choice, two selected", &single, []uint{11, 12}, nil, true},
		{"single choice, foreign choice", &single, []uint{21}, nil, true},
		{"single choice, free text rejected", &single, []uint{12}, strPtr("text"), true},

		{"multi choice ok", &multi, []uint{21, 23}, nil, false},
		{"multi choice, single selection ok", &multi, []uint{22}, nil, false},
		{"multi choice, none selected", &multi, nil, nil, true},
		{"multi choice, duplicate ids", &multi, []uint{21, 21}, nil, true},
		{"multi choice, foreign choice", &multi, []uint{21, 999}, nil, true},
		{"multi choice, free text rejected", &multi, []uint{21}, strPtr("text"), true},

		{"true/false ok", &trueFalse, []uint{32}, nil, false},
		{"true/false, both selected", &trueFalse, []uint{31, 32}, nil, true},

		{"short text ok", &shortText, nil, strPtr("an answer"), false},
		{"short text, empty", &shortText, nil, strPtr(""), true},
		{"short text, whitespace only", &shortText, nil, strPtr("   "), true},
		{"short text, missing", &shortText, nil, nil, true},
		{"short text, choices rejected", &shortText, []uint{1}, strPtr("an answer"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tt.question, tt.choices, tt.freeText)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResponseUnknownType(t *testing.T) {
	q := model.Question{ID: 9, Type: "essay"}
	assert.ErrorIs(t, validateResponse(&q, nil, strPtr("text")), ErrInvalidResponse)
}

func TestValidateQuestionShape(t *testing.T) {
	twoChoices := func(correct int) []model.Choice {
		return []model.Choice{
			{Text: "A", IsCorrect: correct >= 1},
			{Text: "B", IsCorrect: correct >= 2},
		}
	}

	tests := []struct {
		name    string
		qType   model.QuestionType
		points  int
		choices []model.Choice
		wantErr bool
	}{
		{"true/false ok", model.QuestionTrueFalse, 1, twoChoices(1), false},
		{"true/false, three choices", model.QuestionTrueFalse, 1, append(twoChoices(1), model.Choice{Text: "C"}), true},
		{"true/false, no correct choice", model.QuestionTrueFalse, 1, twoChoices(0), true},
		{"true/false, both correct", model.QuestionTrueFalse, 1, twoChoices(2), true},

		{"single choice ok", model.QuestionSingleChoice, 1, twoChoices(1), false},
		{"single choice, one choice only", model.QuestionSingleChoice, 1, []model.Choice{{Text: "A", IsCorrect: true}}, true},
		{"single choice, two correct", model.QuestionSingleChoice, 1, twoChoices(2), true},

		{"multi choice ok", model.QuestionMultiChoice, 2, twoChoices(2), false},
		{"multi choice, one correct ok", model.QuestionMultiChoice, 1, twoChoices(1), false},
		{"multi choice, no correct choice", model.QuestionMultiChoice, 1, twoChoices(0), true},
		{"multi choice, one choice only", model.QuestionMultiChoice, 1, []model.Choice{{Text: "A", IsCorrect: true}}, true},

		{"short text ok", model.QuestionShortText, 1, nil, false},
		{"short text with choices", model.QuestionShortText, 1, twoChoices(1), true},

		{"zero points", model.QuestionSingleChoice, 0, twoChoices(1), true},
		{"negative points", model.QuestionSingleChoice, -3, twoChoices(1), true},
		{"unknown type", "essay", 1, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestionShape(tt.qType, tt.points, tt.choices)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
