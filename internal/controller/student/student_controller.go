package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/service"
)

// StudentController exposes the quiz-taking flow: browse visible quizzes,
// start or resume an attempt, fetch the next pending question, record an
// answer, and review results. The student id comes from the request; the
// auth collaborator is expected to have vetted it upstream.
type StudentController struct {
	studentQuizService service.StudentQuizService
	attemptService     service.AttemptService
	answerService      service.AnswerService
	resultService      service.ResultService
}

func NewStudentController(
	studentQuizService service.StudentQuizService,
	attemptService service.AttemptService,
	answerService service.AnswerService,
	resultService service.ResultService,
) *StudentController {
	return &StudentController{
		studentQuizService: studentQuizService,
		attemptService:     attemptService,
		answerService:      answerService,
		resultService:      resultService,
	}
}

// ListQuizzes godoc
// @Summary (Student) List quizzes visible to a student
// @Description Published quizzes of published modules visible to the student's class, with the student's latest attempt per quiz.
// @Tags Student - Quizzes
// @Produce json
// @Param student_id query int true "Student ID"
// @Success 200 {array} dto.StudentQuizListItemDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *StudentController) ListQuizzes(ctx *gin.Context) {
	studentID, ok := parseStudentIDQuery(ctx)
	if !ok {
		return
	}
	resp, err := c.studentQuizService.ListVisibleQuizzes(studentID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list quizzes")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuiz godoc
// @Summary (Student) Get a quiz the student may take
// @Description The quiz with its questions and choices; correctness flags are stripped.
// @Tags Student - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param student_id query int true "Student ID"
// @Success 200 {object} dto.StudentQuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Quiz not available to this student"
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *StudentController) GetQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	studentID, ok := parseStudentIDQuery(ctx)
	if !ok {
		return
	}
	resp, err := c.studentQuizService.GetQuizForStudent(quizID, studentID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartAttempt godoc
// @Summary (Student) Start or resume an attempt
// @Description Returns the student's open attempt for this quiz if one exists, otherwise creates a new one.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param attempt_data body dto.StartAttemptDTO true "Student starting the attempt"
// @Success 201 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Quiz not available to this student"
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *StudentController) StartAttempt(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.StartAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.attemptService.StartAttempt(quizID, req.StudentID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to start attempt")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// NextQuestion godoc
// @Summary (Student) Get the next unanswered question of an attempt
// @Description The first question in display order without an answer. Question is null once everything is answered.
// @Tags Student - Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.NextQuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id}/next-question [get]
func (c *StudentController) NextQuestion(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	resp, err := c.attemptService.NextUnansweredQuestion(attemptID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get next question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecordAnswer godoc
// @Summary (Student) Answer one question of an attempt
// @Description Records the response, grades it, and auto-completes the attempt when it was the last pending question. A question can be answered only once per attempt.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param answer_data body dto.RecordAnswerDTO true "Response: choice ids for choice questions, free text for short_text"
// @Success 201 {object} dto.RecordAnswerResultDTO
// @Failure 400 {object} dto.ErrorResponse "Response does not match the question type"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Question already answered, or attempt completed"
// @Router /attempts/{attempt_id}/answers [post]
func (c *StudentController) RecordAnswer(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.RecordAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.answerService.RecordAnswer(attemptID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to record answer")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AttemptResult godoc
// @Summary (Student) Review an attempt
// @Description Per-question review with correct choices and the recorded answers, plus the aggregate score. Works on in-progress attempts without completing them.
// @Tags Student - Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{attempt_id}/result [get]
func (c *StudentController) AttemptResult(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	resp, err := c.resultService.AttemptResult(attemptID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get attempt result")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func parseStudentIDQuery(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("student_id")
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing student_id query parameter"})
		return 0, false
	}
	return uint(val), true
}

// respondServiceError maps the engine error taxonomy onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyAnswered), errors.Is(err, service.ErrAttemptCompleted):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidResponse):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("message", message).Msg("Student controller: service error")
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
