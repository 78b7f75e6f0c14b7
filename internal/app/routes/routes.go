package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/controllers"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	examController *controllers.ExamController,
	timetableController *controllers.TimetableController,
	accessMiddleware *middleware.AccessMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Faculty office routes ---
	faculty := v1.Group("/faculty")
	{
		// Catalog listings are visible to any valid key so department
		// officers can see the resources they schedule against
		facultyRead := faculty.Group("")
		facultyRead.Use(accessMiddleware.RequireKey())
		{
			facultyRead.GET("/venues", facultyController.ListVenues)
			facultyRead.GET("/sessions", facultyController.ListSessions)
			facultyRead.GET("/invigilators", facultyController.ListInvigilators)
		}

		// Catalog writes and role administration are faculty-only
		facultyWrite := faculty.Group("")
		facultyWrite.Use(accessMiddleware.RequireRole(models.RoleFaculty))
		{
			facultyWrite.POST("/venues", facultyController.CreateVenue)
			facultyWrite.POST("/sessions", facultyController.CreateSession)
			facultyWrite.POST("/invigilators", facultyController.CreateInvigilator)
			facultyWrite.POST("/roles", facultyController.CreateRole)
			facultyWrite.GET("/roles", facultyController.ListRoles)
		}
	}

	// --- Exam routes ---
	exams := v1.Group("/exams")
	{
		examsRead := exams.Group("")
		examsRead.Use(accessMiddleware.RequireKey())
		{
			examsRead.GET("", examController.ListExams)
			examsRead.GET("/:id/invigilators", examController.GetExamInvigilators)
		}

		// Scheduling and roster writes are department-officer operations
		examsDepartment := exams.Group("")
		examsDepartment.Use(accessMiddleware.RequireRole(models.RoleDepartment))
		{
			examsDepartment.POST("", examController.ScheduleExam)
			examsDepartment.GET("/department", examController.ListDepartmentExams)
			examsDepartment.PUT("/:id/invigilators", examController.AssignInvigilators)
		}
	}

	// --- Timetable ---
	timetable := v1.Group("/timetable")
	timetable.Use(accessMiddleware.RequireKey())
	{
		timetable.GET("", timetableController.GetTimetable)
	}
}
