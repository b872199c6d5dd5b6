package service

import "errors"

// Engine error taxonomy. Controllers map these to HTTP status codes; services
// wrap them with context via fmt.Errorf("...: %w", err).
var (
	// ErrNotFound covers unknown quiz/question/attempt/student ids, and a
	// question referenced outside its quiz.
	ErrNotFound = errors.New("resource not found")

	// ErrNotEligible means the quiz is not attemptable by this student: quiz
	// or module unpublished, or the module is not visible to the student's
	// class. No attempt is created.
	ErrNotEligible = errors.New("quiz not available for this student")

	// ErrInvalidResponse means the submitted response does not match the
	// question type (wrong arity, foreign choice id, empty text). Nothing is
	// persisted; the caller may retry the same question.
	ErrInvalidResponse = errors.New("response does not match question type")

	// ErrAlreadyAnswered means the question already has an answer in this
	// attempt. The existing answer is kept untouched; the caller should move
	// on to the next pending question.
	ErrAlreadyAnswered = errors.New("question already answered in this attempt")

	// ErrAttemptCompleted means the attempt is finished and accepts no
	// further answers.
	ErrAttemptCompleted = errors.New("attempt is already completed")

	// ErrInvalidQuestion means a question being authored violates the choice
	// invariants of its type (e.g. a true_false without exactly one correct
	// choice).
	ErrInvalidQuestion = errors.New("question definition violates its type constraints")
)
