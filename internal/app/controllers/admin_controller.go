package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/app/services"
	"github.com/ssgi/placementms/internal/middleware"
)

// AdminController handles admin operations
type AdminController struct {
	adminService        services.AdminService
	notificationService services.NotificationService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, notificationService services.NotificationService) *AdminController {
	return &AdminController{
		adminService:        adminService,
		notificationService: notificationService,
	}
}

// Register handles new admin registration
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminRegisterRequest true "Admin registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AdminRegisterResponse} "Admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid email, contact or password"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/register [post]
func (c *AdminController) Register(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").WithDetails(err.Error())))
		return
	}

	adminID, err := c.adminService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Admin registered successfully",
		dto.AdminRegisterResponse{AdminID: adminID}))
}

// Login handles admin authentication
// @Summary Admin login
// @Description Authenticates an admin and issues a 1-hour access token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse} "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").WithDetails(err.Error())))
		return
	}

	result, err := c.adminService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", result))
}

// ListStudents returns all students with verification tallies
// @Summary List all students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "All students"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	result, err := c.adminService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", result))
}

// GetStudent returns one student's record
// @Summary Get student detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{studentId} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	student, err := c.adminService.GetStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", student))
}

// VerifyStudent marks a student as verified
// @Summary Verify a student
// @Description One-way transition of the student's verified flag from false to true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.APIResponse "Student verified"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{studentId}/verify [put]
func (c *AdminController) VerifyStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	alreadyVerified, err := c.adminService.VerifyStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Student with ID %s has been verified", studentID)
	if alreadyVerified {
		message = fmt.Sprintf("Student with ID %s is already verified", studentID)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, nil))
}

// SendNotification dispatches a notification
// @Summary Send a notification
// @Description Sends a message to one student, or to every student when the target is "all"
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendNotificationRequest true "Notification payload"
// @Success 200 {object} dto.APIResponse "Notification sent"
// @Failure 404 {object} dto.ErrorResponse "No students registered"
// @Router /admin/notifications [post]
func (c *AdminController) SendNotification(ctx *gin.Context) {
	var req dto.SendNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Message is required").WithDetails(err.Error())))
		return
	}

	recipients, err := c.notificationService.Send(ctx, req.Message, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Notification sent to student with ID %s", req.StudentID)
	if recipients > 1 {
		message = "Notification sent to all students"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, nil))
}
