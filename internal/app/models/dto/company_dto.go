package dto

import "github.com/ssgi/placementms/internal/app/models"

// CompanyRequest represents company create/replace payloads. Updates
// are full replaces, so the same shape serves both.
type CompanyRequest struct {
	Name            string             `json:"name" binding:"required"`
	Industry        string             `json:"industry" binding:"required"`
	Logo            string             `json:"logo,omitempty"`
	RecruitmentDate string             `json:"recruitmentDate" binding:"required"`
	CTC             string             `json:"ctc" binding:"required"`
	Roles           []string           `json:"roles" binding:"required"`
	Status          string             `json:"status" binding:"required"`
	Eligibility     models.Eligibility `json:"eligibility" binding:"required"`
	AdditionalInfo  string             `json:"additionalInfo,omitempty"`
}

// ToModel converts the request into a company document
func (r *CompanyRequest) ToModel() *models.Company {
	return &models.Company{
		Name:            r.Name,
		Industry:        r.Industry,
		Logo:            r.Logo,
		RecruitmentDate: r.RecruitmentDate,
		CTC:             r.CTC,
		Roles:           r.Roles,
		Status:          r.Status,
		Eligibility:     r.Eligibility,
		AdditionalInfo:  r.AdditionalInfo,
	}
}

// CompanyCreateResponse carries the generated company identifier
type CompanyCreateResponse struct {
	CompanyID string `json:"company_id" example:"507f1f77bcf86cd799439011"`
}

// CompanyLogoResponse carries the uploaded logo URL
type CompanyLogoResponse struct {
	LogoURL string `json:"logo_url"`
}
