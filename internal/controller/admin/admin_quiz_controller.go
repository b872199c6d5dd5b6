package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/service"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz under a module
// @Description Creates a quiz, optionally with its questions and choices. Per-type choice invariants are enforced (e.g. true_false needs exactly two choices with exactly one correct).
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param module_id path int true "Module ID"
// @Param quiz_data body dto.QuizCreateDTO true "Quiz data"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or question shape"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /admin/modules/{module_id}/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.adminQuizService.CreateQuiz(moduleID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create quiz")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuizzes godoc
// @Summary (Admin) List the quizzes of a module
// @Tags Admin - Quizzes
// @Produce json
// @Param module_id path int true "Module ID"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/modules/{module_id}/quizzes [get]
func (c *AdminQuizController) ListQuizzes(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	resp, err := c.adminQuizService.ListQuizzes(moduleID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list quizzes")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with its questions and choices
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	resp, err := c.adminQuizService.GetQuiz(quizID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PublishQuiz godoc
// @Summary (Admin) Publish or unpublish a quiz
// @Description A quiz is attemptable only while it and its module are published.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param publish body dto.PublishDTO true "Publication flag"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/publish [put]
func (c *AdminQuizController) PublishQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.PublishDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.adminQuizService.SetQuizPublished(quizID, *req.Published)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its questions
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuiz(quizID); err != nil {
		respondServiceError(ctx, err, "Failed to delete quiz")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_data body dto.QuestionCreateDTO true "Question data with choices"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or question shape"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/questions [post]
func (c *AdminQuizController) AddQuestion(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.adminQuizService.AddQuestion(quizID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its choices
// @Tags Admin - Quizzes
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [delete]
func (c *AdminQuizController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuestion(questionID); err != nil {
		respondServiceError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAttempts godoc
// @Summary (Admin) List the attempts on a quiz
// @Description Returns every attempt with the student attached, newest first, for teacher review.
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.AttemptReviewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/attempts [get]
func (c *AdminQuizController) ListAttempts(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	resp, err := c.adminQuizService.ListAttempts(quizID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list attempts")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
