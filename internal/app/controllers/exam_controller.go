package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
)

// ExamController handles exam scheduling and invigilator roster operations
type ExamController struct {
	schedulingService  services.SchedulingService
	invigilatorService services.InvigilatorService
}

// NewExamController creates a new ExamController
func NewExamController(
	schedulingService services.SchedulingService,
	invigilatorService services.InvigilatorService,
) *ExamController {
	return &ExamController{
		schedulingService:  schedulingService,
		invigilatorService: invigilatorService,
	}
}

// ScheduleExam handles a department officer's exam proposal
// @Summary Schedule an exam
// @Description Checks the proposal against venue capacity and existing exams
// @Description (venue and department/level clash axes) and persists it if admissible.
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.ScheduleExamRequest true "Proposed exam"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam scheduled"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or capacity exceeded"
// @Failure 404 {object} dto.ErrorResponse "Venue or session not found"
// @Failure 409 {object} dto.ErrorResponse "Exam clash detected"
// @Router /exams [post]
func (c *ExamController) ScheduleExam(ctx *gin.Context) {
	var req dto.ScheduleExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data").WithDetails(err.Error())))
		return
	}
	if err := req.Validate(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	access, ok := middleware.AccessFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Access context missing")))
		return
	}

	exam, err := c.schedulingService.ScheduleExam(ctx, req.ToDraft(), access)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: exam, Timestamp: time.Now()})
}

// ListExams returns every scheduled exam with its venue
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.schedulingService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: exams, Timestamp: time.Now()})
}

// ListDepartmentExams returns the calling department's exams
func (c *ExamController) ListDepartmentExams(ctx *gin.Context) {
	access, ok := middleware.AccessFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Access context missing")))
		return
	}

	exams, err := c.schedulingService.ListByDepartment(ctx, access.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: exams, Timestamp: time.Now()})
}

// AssignInvigilators atomically replaces an exam's entire invigilator roster
// @Summary Replace an exam's invigilator roster
// @Description Full replace, not merge: invigilators absent from the new set are unassigned.
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body dto.AssignInvigilatorsRequest true "Replacement roster"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Exam or invigilator not found"
// @Router /exams/{id}/invigilators [put]
func (c *ExamController) AssignInvigilators(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignInvigilatorsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid roster data").WithDetails(err.Error())))
		return
	}

	if err := c.invigilatorService.ReplaceRoster(ctx, examID, req.InvigilatorIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Invigilators assigned successfully"})
}

// GetExamInvigilators returns an exam's current roster
func (c *ExamController) GetExamInvigilators(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roster, err := c.invigilatorService.GetRoster(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: roster, Timestamp: time.Now()})
}

// parseIDParam parses a positive integer path parameter, responding with a
// validation error itself when the value is unusable.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
				WithDetailsf("%s must be a positive integer", name)))
		return 0, false
	}
	return id, true
}
