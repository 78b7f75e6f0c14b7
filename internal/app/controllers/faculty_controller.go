package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
)

// FacultyController handles the faculty exam office's resource catalog:
// venues, sessions, invigilators and department access roles.
type FacultyController struct {
	catalogService services.CatalogService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(catalogService services.CatalogService) *FacultyController {
	return &FacultyController{catalogService: catalogService}
}

// CreateVenue registers a new examination venue
// @Summary Create a venue
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Venue information"
// @Success 201 {object} dto.APIResponse{data=models.Venue}
// @Failure 400 {object} dto.ErrorResponse "Invalid venue data"
// @Router /faculty/venues [post]
func (c *FacultyController) CreateVenue(ctx *gin.Context) {
	var req dto.CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid venue data").WithDetails(err.Error())))
		return
	}

	venue := &models.Venue{Name: req.Name, Capacity: req.Capacity}
	if err := c.catalogService.CreateVenue(ctx, venue); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: venue, Timestamp: time.Now()})
}

// ListVenues returns all registered venues
// @Summary List venues
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Venue}
// @Router /faculty/venues [get]
func (c *FacultyController) ListVenues(ctx *gin.Context) {
	venues, err := c.catalogService.ListVenues(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: venues, Timestamp: time.Now()})
}

// CreateSession registers a named examination time window
// @Summary Create a session
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.Session}
// @Failure 409 {object} dto.ErrorResponse "Session label already exists"
// @Router /faculty/sessions [post]
func (c *FacultyController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data").WithDetails(err.Error())))
		return
	}
	if err := req.Validate(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	session := &models.Session{Label: req.Label, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := c.catalogService.CreateSession(ctx, session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session, Timestamp: time.Now()})
}

// ListSessions returns all sessions
func (c *FacultyController) ListSessions(ctx *gin.Context) {
	sessions, err := c.catalogService.ListSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions, Timestamp: time.Now()})
}

// CreateInvigilator registers a new invigilator
func (c *FacultyController) CreateInvigilator(ctx *gin.Context) {
	var req dto.CreateInvigilatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid invigilator data").WithDetails(err.Error())))
		return
	}

	inv := &models.Invigilator{Name: req.Name, Code: req.Code}
	if err := c.catalogService.CreateInvigilator(ctx, inv); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: inv, Timestamp: time.Now()})
}

// ListInvigilators returns all invigilators
func (c *FacultyController) ListInvigilators(ctx *gin.Context) {
	invigilators, err := c.catalogService.ListInvigilators(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: invigilators, Timestamp: time.Now()})
}

// CreateRole registers a department exam officer and returns their generated
// access key. The key is shown exactly once.
// @Summary Create a department role
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateRoleRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Role}
// @Router /faculty/roles [post]
func (c *FacultyController) CreateRole(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role data").WithDetails(err.Error())))
		return
	}

	role, err := c.catalogService.CreateDepartmentRole(ctx, req.DepartmentName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: role, Timestamp: time.Now()})
}

// ListRoles returns all department roles
func (c *FacultyController) ListRoles(ctx *gin.Context) {
	roles, err := c.catalogService.ListDepartmentRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: roles, Timestamp: time.Now()})
}
