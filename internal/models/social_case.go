package models

import "time"

// Social case statuses. They are synthesised at read time.
const (
	CaseStatusActive    = "active"
	CaseStatusCompleted = "completed"
	CaseStatusPlanned   = "planned"
)

// CaseStatuses lists the synthesised statuses in draw order.
var CaseStatuses = []string{CaseStatusActive, CaseStatusCompleted, CaseStatusPlanned}

// CaseCategories lists the fallback categories in draw order.
var CaseCategories = []string{"education", "health", "infrastructure", "environment"}

// SocialCase is a company's social investment project.
type SocialCase struct {
	ID               uint      `json:"id" bson:"id" gorm:"primaryKey"`
	CompanyID        uint      `json:"company_id" bson:"company_id" gorm:"index"`
	Title            string    `json:"title" bson:"title"`
	Description      string    `json:"description" bson:"description"`
	InvestmentAmount float64   `json:"investment_amount" bson:"investment_amount"`
	Location         string    `json:"location" bson:"location"`
	Category         string    `json:"category" bson:"category" gorm:"size:30"`
	ImageURL         string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// EnhancedSocialCase adds the read-time status and beneficiary count.
type EnhancedSocialCase struct {
	SocialCase
	Status        string `json:"status"`
	Beneficiaries int    `json:"beneficiaries"`
}

// SocialCaseStats summarises a company's cases.
type SocialCaseStats struct {
	TotalInvestment          float64        `json:"total_investment"`
	TotalCases               int            `json:"total_cases"`
	ActiveCases              int            `json:"active_cases"`
	CompletedCases           int            `json:"completed_cases"`
	PlannedCases             int            `json:"planned_cases"`
	Categories               map[string]int `json:"categories"`
	TotalBeneficiaries       int            `json:"total_beneficiaries"`
	InvestmentPerBeneficiary float64        `json:"investment_per_beneficiary"`
}

// CreateSocialCaseRequest defines the request body for registering a social case
type CreateSocialCaseRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=200"`
	Description      string  `json:"description" validate:"required,max=5000"`
	InvestmentAmount float64 `json:"investment_amount" validate:"gte=0"`
	Location         string  `json:"location" validate:"required,max=200"`
	ImageURL         string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Category         string  `json:"category" validate:"required,oneof=education health infrastructure environment"`
}

// SocialCasePortfolio is a company's cases with stats over the unfiltered set.
type SocialCasePortfolio struct {
	CompanyID uint                 `json:"company_id"`
	Seed      uint64               `json:"seed"`
	Cases     []EnhancedSocialCase `json:"cases"`
	Stats     SocialCaseStats      `json:"stats"`
}
