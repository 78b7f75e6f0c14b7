package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
)

// TimetableController serves the read-only timetable projection
type TimetableController struct {
	schedulingService services.SchedulingService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(schedulingService services.SchedulingService) *TimetableController {
	return &TimetableController{schedulingService: schedulingService}
}

// GetTimetable returns every exam with its venue and invigilator roster,
// ordered by date then start time
// @Summary Get the full timetable
// @Tags timetable
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Exam}
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	exams, err := c.schedulingService.Timetable(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: exams, Timestamp: time.Now()})
}
