package service

import (
	"math"

	"github.com/yacinebd/scolaris/internal/model"
)

// Grading is deliberately a set of pure functions: same inputs, same outputs,
// no storage access. Per-question correctness is evaluated exactly once, when
// the answer is recorded; the aggregate score is evaluated exactly once, when
// the attempt completes.

// gradeAnswer decides correctness for one question given the selected choice
// ids and the free-text response. The question must carry its choices.
//
// short_text is always graded incorrect: the engine attempts no automatic
// text grading, a teacher reviews those by hand.
func gradeAnswer(question *model.Question, selectedChoiceIDs []uint, freeText *string) bool {
	switch question.Type {
	case model.QuestionShortText:
		return false

	case model.QuestionSingleChoice, model.QuestionTrueFalse:
		if len(selectedChoiceIDs) != 1 {
			return false
		}
		for _, c := range question.Choices {
			if c.ID == selectedChoiceIDs[0] {
				return c.IsCorrect
			}
		}
		return false

	case model.QuestionMultiChoice:
		// Exact set match: every correct choice selected, nothing else.
		correct := make(map[uint]bool, len(question.Choices))
		for _, c := range question.Choices {
			if c.IsCorrect {
				correct[c.ID] = true
			}
		}
		selected := make(map[uint]bool, len(selectedChoiceIDs))
		for _, id := range selectedChoiceIDs {
			selected[id] = true
		}
		if len(selected) != len(correct) {
			return false
		}
		for id := range selected {
			if !correct[id] {
				return false
			}
		}
		return true
	}
	return false
}

// scoreAttempt computes the aggregate percentage from the quiz's questions and
// the answers recorded so far. Each answer's IsCorrect flag was frozen at
// record time, so the result only depends on which questions have answers.
func scoreAttempt(questions []model.Question, answers []model.Answer) (earnedPoints, totalPoints int, score float64) {
	correctByQuestion := make(map[uint]bool, len(answers))
	for _, a := range answers {
		correctByQuestion[a.QuestionID] = a.IsCorrect
	}

	for _, q := range questions {
		totalPoints += q.Points
		if correctByQuestion[q.ID] {
			earnedPoints += q.Points
		}
	}

	if totalPoints == 0 {
		return 0, 0, 0
	}
	score = roundScore(float64(earnedPoints) / float64(totalPoints) * 100)
	return earnedPoints, totalPoints, score
}

// roundScore rounds a percentage to one decimal place.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
