package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssgi/placementms/internal/app/models/dto"
	"github.com/ssgi/placementms/internal/app/services"
	"github.com/ssgi/placementms/internal/middleware"
)

// CompanyController handles company CRUD and logo uploads
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// Create adds a new company
// @Summary Add a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyRequest true "Company data"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyCreateResponse} "Company added"
// @Failure 400 {object} dto.ErrorResponse "Invalid company data"
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data").WithDetails(err.Error())))
		return
	}

	id, err := c.companyService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Company added successfully",
		dto.CompanyCreateResponse{CompanyID: id}))
}

// List returns all companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies"
// @Router /companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	companies, err := c.companyService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", companies))
}

// Update replaces a company document
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id (hex)"
// @Param request body dto.CompanyRequest true "Replacement company data"
// @Success 200 {object} dto.APIResponse "Company updated"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data").WithDetails(err.Error())))
		return
	}

	if err := c.companyService.Update(ctx, ctx.Param("id"), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company updated successfully", nil))
}

// Delete removes a company
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id (hex)"
// @Success 200 {object} dto.APIResponse "Company deleted"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	if err := c.companyService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company deleted successfully", nil))
}

// UploadLogo uploads a company logo and stores its URL
// @Summary Upload a company logo
// @Tags companies
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id (hex)"
// @Param file formData file true "Logo file"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyLogoResponse} "Logo updated"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 502 {object} dto.ErrorResponse "Media upload failed"
// @Router /companies/{id}/logo [put]
func (c *CompanyController) UploadLogo(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Logo file is required").WithField("file")))
		return
	}

	file, err := header.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.companyService.UploadLogo(ctx, ctx.Param("id"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logo updated successfully",
		dto.CompanyLogoResponse{LogoURL: url}))
}
