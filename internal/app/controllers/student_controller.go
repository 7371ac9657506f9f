package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents retrieves all students
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(students, "Students retrieved successfully"))
}

// GetStudent retrieves a student by account
func (c *StudentController) GetStudent(ctx *gin.Context) {
	account, ok := middleware.ParseInt64Param(ctx, "account")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByAccount(ctx.Request.Context(), account)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(student, "Student retrieved successfully"))
}

// CreateStudent handles student creation
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel(), *req.Pwd)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(student, "Student added successfully"))
}

// UpdateStudent replaces the mutable fields of a student
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	account, ok := middleware.ParseInt64Param(ctx, "account")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), req.ToModel(account), req.Pwd)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(student, "Student updated successfully"))
}

// DeleteStudent deletes a student
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	account, ok := middleware.ParseInt64Param(ctx, "account")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), account); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Student deleted successfully"))
}

// VerifyCredentials checks a student's pwd
func (c *StudentController) VerifyCredentials(ctx *gin.Context) {
	account, ok := middleware.ParseInt64Param(ctx, "account")
	if !ok {
		return
	}

	var req dto.VerifyCredentialsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.studentService.VerifyCredentials(ctx.Request.Context(), account, *req.Pwd); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.VerifyCredentialsResponse{
		Account:  account,
		Verified: true,
	}, "Credentials verified"))
}
