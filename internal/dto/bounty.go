package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBountyRequestDTO struct {
	Title               string          `json:"title" example:"Logo animation"`
	Description         string          `json:"description" example:"Animate our logo, 5s loop"`
	Category            string          `json:"category" example:"motion-design"`
	Bounty              decimal.Decimal `json:"bounty" example:"250"`
	Deadline            time.Time       `json:"deadline" example:"2025-02-01T00:00:00Z"`
	AllowContributions  bool            `json:"allow_contributions" example:"true"`
	MinimumContribution decimal.Decimal `json:"minimum_contribution" example:"5"`
	IsAnonymous         bool            `json:"is_anonymous" example:"false"`
}

type BountyResponseDTO struct {
	ID                  string          `json:"id" example:"9d2b68a7-a22a-4fcb-bd40-7f9c24e5c4e6"`
	Title               string          `json:"title" example:"Logo animation"`
	Description         string          `json:"description" example:"Animate our logo, 5s loop"`
	Category            string          `json:"category" example:"motion-design"`
	Bounty              decimal.Decimal `json:"bounty" example:"250"`
	TotalBounty         decimal.Decimal `json:"total_bounty" example:"305"`
	Deadline            time.Time       `json:"deadline" example:"2025-02-01T00:00:00Z"`
	AllowContributions  bool            `json:"allow_contributions" example:"true"`
	MinimumContribution decimal.Decimal `json:"minimum_contribution" example:"5"`
	Status              string          `json:"status" example:"open"`
	OwnerID             *int            `json:"owner_id,omitempty" example:"1"`
	CreatedAt           time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type ContributeRequestDTO struct {
	Amount  decimal.Decimal `json:"amount" example:"25"`
	Message string          `json:"message,omitempty" example:"Would love to see this too"`
}

type ContributionResponseDTO struct {
	ID            string          `json:"id" example:"1f9e9a6c-4b14-4a36-a179-4b26161cbb01"`
	BountyID      string          `json:"bounty_id" example:"9d2b68a7-a22a-4fcb-bd40-7f9c24e5c4e6"`
	ContributorID int             `json:"contributor_id" example:"2"`
	Amount        decimal.Decimal `json:"amount" example:"25"`
	Message       string          `json:"message,omitempty" example:"Would love to see this too"`
	Status        string          `json:"status" example:"accepted"`
}

type ContributeResponseDTO struct {
	Contribution ContributionResponseDTO `json:"contribution"`
	NewTotal     decimal.Decimal         `json:"new_total" example:"330"`
}

type UpdateContributionRequestDTO struct {
	Status string `json:"status" example:"rejected"`
}
