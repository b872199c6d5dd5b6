package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yacinebd/scolaris/internal/dto"
	"github.com/yacinebd/scolaris/internal/service"
)

type AdminModuleController struct {
	moduleService service.ModuleService
	rosterService service.RosterService
}

func NewAdminModuleController(moduleService service.ModuleService, rosterService service.RosterService) *AdminModuleController {
	return &AdminModuleController{moduleService: moduleService, rosterService: rosterService}
}

// CreateModule godoc
// @Summary (Admin) Create a pedagogical module
// @Description Creates a content module and attaches the classes it is visible to. Modules start unpublished.
// @Tags Admin - Modules
// @Accept json
// @Produce json
// @Param module_data body dto.ModuleCreateDTO true "Module data"
// @Success 201 {object} dto.ModuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown class id"
// @Router /admin/modules [post]
func (c *AdminModuleController) CreateModule(ctx *gin.Context) {
	var req dto.ModuleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.moduleService.CreateModule(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create module")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListModules godoc
// @Summary (Admin) List modules
// @Tags Admin - Modules
// @Produce json
// @Success 200 {array} dto.ModuleResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/modules [get]
func (c *AdminModuleController) ListModules(ctx *gin.Context) {
	resp, err := c.moduleService.ListModules()
	if err != nil {
		respondServiceError(ctx, err, "Failed to list modules")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PublishModule godoc
// @Summary (Admin) Publish or unpublish a module
// @Tags Admin - Modules
// @Accept json
// @Produce json
// @Param module_id path int true "Module ID"
// @Param publish body dto.PublishDTO true "Publication flag"
// @Success 200 {object} dto.ModuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/modules/{module_id}/publish [put]
func (c *AdminModuleController) PublishModule(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	var req dto.PublishDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.moduleService.SetModulePublished(moduleID, *req.Published)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update module")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetModuleClasses godoc
// @Summary (Admin) Replace the classes a module is visible to
// @Tags Admin - Modules
// @Accept json
// @Produce json
// @Param module_id path int true "Module ID"
// @Param classes body dto.ModuleClassesDTO true "Class ids"
// @Success 200 {object} dto.ModuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/modules/{module_id}/classes [put]
func (c *AdminModuleController) SetModuleClasses(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	var req dto.ModuleClassesDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.moduleService.SetModuleClasses(moduleID, req.ClassIDs)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update module classes")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateClass godoc
// @Summary (Admin) Create a class
// @Tags Admin - Roster
// @Accept json
// @Produce json
// @Param class_data body dto.ClassCreateDTO true "Class data"
// @Success 201 {object} dto.ClassResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/classes [post]
func (c *AdminModuleController) CreateClass(ctx *gin.Context) {
	var req dto.ClassCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.rosterService.CreateClass(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create class")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListClasses godoc
// @Summary (Admin) List classes
// @Tags Admin - Roster
// @Produce json
// @Success 200 {array} dto.ClassResponseDTO
// @Router /admin/classes [get]
func (c *AdminModuleController) ListClasses(ctx *gin.Context) {
	resp, err := c.rosterService.ListClasses()
	if err != nil {
		respondServiceError(ctx, err, "Failed to list classes")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateStudent godoc
// @Summary (Admin) Register a student in a class
// @Tags Admin - Roster
// @Accept json
// @Produce json
// @Param student_data body dto.StudentCreateDTO true "Student data"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown class"
// @Router /admin/students [post]
func (c *AdminModuleController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.rosterService.CreateStudent(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create student")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListStudents godoc
// @Summary (Admin) List the students of a class
// @Tags Admin - Roster
// @Produce json
// @Param class_id path int true "Class ID"
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/classes/{class_id}/students [get]
func (c *AdminModuleController) ListStudents(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "class_id")
	if !ok {
		return
	}
	resp, err := c.rosterService.ListStudents(classID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to list students")
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

// respondServiceError maps the engine error taxonomy onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyAnswered):
		status = http.StatusConflict
	case errors.Is(err, service.ErrAttemptCompleted):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidResponse), errors.Is(err, service.ErrInvalidQuestion):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("message", message).Msg("Admin controller: service error")
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
