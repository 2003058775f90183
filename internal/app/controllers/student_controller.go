package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/app/services"
	"github.com/ssgi/placementms/internal/middleware"
)

// Multipart form field names for the marksheet upload endpoint
const (
	formFieldTenthMarksheet    = "tenth_marksheet"
	formFieldTwelfthMarksheet  = "twelfth_marksheet"
	formFieldSemesterMarksheet = "semester_marksheets"
)

// StudentController handles student-facing operations
type StudentController struct {
	studentService      services.StudentService
	notificationService services.NotificationService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, notificationService services.NotificationService) *StudentController {
	return &StudentController{
		studentService:      studentService,
		notificationService: notificationService,
	}
}

// Register handles new student registration
// @Summary Register a new student
// @Description Validates email and contact, hashes the password and issues a new student identifier
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration data"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterStudentResponse} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid email, contact or password"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").WithDetails(err.Error())))
		return
	}

	studentID, err := c.studentService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student registered successfully",
		dto.RegisterStudentResponse{StudentID: studentID}))
}

// Login handles student authentication
// @Summary Student login
// @Description Authenticates a student by identifier and password
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} dto.APIResponse{data=dto.StudentLoginResponse} "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").WithDetails(err.Error())))
		return
	}

	result, err := c.studentService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", result))
}

// VerifyToken checks a student token for validity
// @Summary Verify a student token
// @Description Validates the token signature and expiry and confirms the encoded student exists
// @Tags students
// @Produce json
// @Param token path string true "JWT token"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyTokenResponse} "Token is valid"
// @Failure 401 {object} dto.ErrorResponse "Token expired or invalid"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/verify-token/{token} [get]
func (c *StudentController) VerifyToken(ctx *gin.Context) {
	studentID, err := c.studentService.VerifyToken(ctx, ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Token is valid",
		dto.VerifyTokenResponse{StudentID: studentID}))
}

// GetProfile returns a student's profile
// @Summary View a student profile
// @Tags students
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Student profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.studentService.GetProfile(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", profile))
}

// CreateProfile performs the one-time profile population
// @Summary Create student profile details
// @Description Writes basic, tenth, twelfth and semester details wholesale for a registered student
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param request body dto.CreateProfileRequest true "Profile details"
// @Success 200 {object} dto.APIResponse "Details saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid profile data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/details [post]
func (c *StudentController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").WithDetails(err.Error())))
		return
	}

	studentID := ctx.Param("studentId")
	if err := c.studentService.CreateProfile(ctx, studentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student details updated successfully",
		dto.RegisterStudentResponse{StudentID: studentID}))
}

// UpdateProfile applies a sparse profile update
// @Summary Update student profile
// @Description Applies only the explicitly supplied sub-fields; omitted fields keep their stored values
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param request body dto.UpdateProfileRequest true "Sparse profile update"
// @Success 200 {object} dto.APIResponse "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Empty or invalid update"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update data").WithDetails(err.Error())))
		return
	}

	studentID := ctx.Param("studentId")
	if err := c.studentService.UpdateProfile(ctx, studentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student profile updated successfully",
		dto.RegisterStudentResponse{StudentID: studentID}))
}

// UploadMarksheets uploads tenth, twelfth and semester marksheets
// @Summary Upload marksheets
// @Description Uploads all marksheet files to the media host and persists the URLs in one atomic update
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param tenth_marksheet formData file true "10th marksheet"
// @Param twelfth_marksheet formData file true "12th marksheet"
// @Param semester_marksheets formData file true "Semester marksheets, in semester order"
// @Success 200 {object} dto.APIResponse{data=dto.MarksheetURLs} "Marksheets uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing file fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 502 {object} dto.ErrorResponse "Media upload failed"
// @Router /students/{studentId}/marksheets [put]
func (c *StudentController) UploadMarksheets(ctx *gin.Context) {
	tenthHeader, err := ctx.FormFile(formFieldTenthMarksheet)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "10th marksheet file is required").WithField(formFieldTenthMarksheet)))
		return
	}
	twelfthHeader, err := ctx.FormFile(formFieldTwelfthMarksheet)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "12th marksheet file is required").WithField(formFieldTwelfthMarksheet)))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart form").WithDetails(err.Error())))
		return
	}
	semesterHeaders := form.File[formFieldSemesterMarksheet]
	if len(semesterHeaders) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "At least one semester marksheet is required").WithField(formFieldSemesterMarksheet)))
		return
	}

	tenth, err := openFormFile(tenthHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer tenth.Close()

	twelfth, err := openFormFile(twelfthHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer twelfth.Close()

	semesters := make([]io.Reader, 0, len(semesterHeaders))
	for _, header := range semesterHeaders {
		file, err := openFormFile(header)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		defer file.Close()
		semesters = append(semesters, file)
	}

	urls, err := c.studentService.UploadMarksheets(ctx, ctx.Param("studentId"), tenth, twelfth, semesters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Marksheets uploaded and URLs saved successfully", urls))
}

func openFormFile(header *multipart.FileHeader) (multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return file, nil
}

// GetNotifications lists notifications for a student
// @Summary Get student notifications
// @Description Returns notifications addressed to the student or broadcast to all students
// @Tags students
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse} "Notifications"
// @Router /students/{studentId}/notifications [get]
func (c *StudentController) GetNotifications(ctx *gin.Context) {
	items, err := c.notificationService.ListFor(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := ""
	if len(items) == 0 {
		message = "No notifications found"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message,
		dto.NotificationListResponse{Notifications: items}))
}
