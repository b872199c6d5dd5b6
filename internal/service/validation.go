package service

import (
	"fmt"
	"strings"

	"github.com/yacinebd/scolaris/internal/model"
)

// validateResponse checks the shape of a submitted response against the
// question type before anything is persisted. The question must carry its
// choices. Violations wrap ErrInvalidResponse.
func validateResponse(question *model.Question, selectedChoiceIDs []uint, freeText *string) error {
	hasText := freeText != nil && strings.TrimSpace(*freeText) != ""

	switch question.Type {
	case model.QuestionShortText:
		if len(selectedChoiceIDs) > 0 {
			return fmt.Errorf("%w: short_text question takes no choices", ErrInvalidResponse)
		}
		if !hasText {
			return fmt.Errorf("%w: short_text question requires a non-empty text", ErrInvalidResponse)
		}
		return nil

	case model.QuestionSingleChoice, model.QuestionTrueFalse:
		if hasText {
			return fmt.Errorf("%w: %s question takes no free text", ErrInvalidResponse, question.Type)
		}
		if len(selectedChoiceIDs) != 1 {
			return fmt.Errorf("%w: %s question requires exactly one choice, got %d", ErrInvalidResponse, question.Type, len(selectedChoiceIDs))
		}
		return validateChoiceOwnership(question, selectedChoiceIDs)

	case model.QuestionMultiChoice:
		if hasText {
			return fmt.Errorf("%w: multi_choice question takes no free text", ErrInvalidResponse)
		}
		if len(selectedChoiceIDs) == 0 {
			return fmt.Errorf("%w: multi_choice question requires at least one choice", ErrInvalidResponse)
		}
		seen := make(map[uint]bool, len(selectedChoiceIDs))
		for _, id := range selectedChoiceIDs {
			if seen[id] {
				return fmt.Errorf("%w: duplicate choice id %d", ErrInvalidResponse, id)
			}
			seen[id] = true
		}
		return validateChoiceOwnership(question, selectedChoiceIDs)
	}

	return fmt.Errorf("%w: unknown question type %q", ErrInvalidResponse, question.Type)
}

func validateChoiceOwnership(question *model.Question, selectedChoiceIDs []uint) error {
	owned := make(map[uint]bool, len(question.Choices))
	for _, c := range question.Choices {
		owned[c.ID] = true
	}
	for _, id := range selectedChoiceIDs {
		if !owned[id] {
			return fmt.Errorf("%w: choice %d does not belong to question %d", ErrInvalidResponse, id, question.ID)
		}
	}
	return nil
}

// validateQuestionShape enforces the per-type choice invariants when a
// question is created:
//
//	true_false     exactly two choices, exactly one correct
//	single_choice  at least two choices, exactly one correct
//	multi_choice   at least two choices, one or more correct
//	short_text     no choices
func validateQuestionShape(questionType model.QuestionType, points int, choices []model.Choice) error {
	if points < 1 {
		return fmt.Errorf("question points must be positive, got %d", points)
	}

	correct := 0
	for _, c := range choices {
		if c.IsCorrect {
			correct++
		}
	}

	switch questionType {
	case model.QuestionShortText:
		if len(choices) != 0 {
			return fmt.Errorf("short_text question must not have choices, got %d", len(choices))
		}
	case model.QuestionTrueFalse:
		if len(choices) != 2 {
			return fmt.Errorf("true_false question requires exactly two choices, got %d", len(choices))
		}
		if correct != 1 {
			return fmt.Errorf("true_false question requires exactly one correct choice, got %d", correct)
		}
	case model.QuestionSingleChoice:
		if len(choices) < 2 {
			return fmt.Errorf("single_choice question requires at least two choices, got %d", len(choices))
		}
		if correct != 1 {
			return fmt.Errorf("single_choice question requires exactly one correct choice, got %d", correct)
		}
	case model.QuestionMultiChoice:
		if len(choices) < 2 {
			return fmt.Errorf("multi_choice question requires at least two choices, got %d", len(choices))
		}
		if correct < 1 {
			return fmt.Errorf("multi_choice question requires at least one correct choice")
		}
	default:
		return fmt.Errorf("unknown question type %q", questionType)
	}
	return nil
}
