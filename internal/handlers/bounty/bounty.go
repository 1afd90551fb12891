package bounty

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/dto"
	"github.com/bountylab/bountyhub/internal/service/bountyservice"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
	"github.com/bountylab/bountyhub/pkg/auth"
	"github.com/bountylab/bountyhub/pkg/utils"
)

const listLimit = 100

type Service interface {
	CreateBounty(ctx context.Context, userID int, in bountyservice.BountyInput) (*domain.Bounty, error)
	ContributeToBounty(ctx context.Context, contributorID int, bountyID uuid.UUID, amount decimal.Decimal, message string) (*domain.BountyContribution, decimal.Decimal, error)
	UpdateContributionStatus(ctx context.Context, ownerID int, bountyID, contributionID uuid.UUID, status domain.ContributionStatus) (*domain.BountyContribution, error)
	GetBounty(ctx context.Context, id uuid.UUID) (*domain.Bounty, decimal.Decimal, []domain.BountyContribution, error)
	ListOpenBounties(ctx context.Context, limit uint32) ([]domain.Bounty, map[uuid.UUID]decimal.Decimal, error)
	CloseBounty(ctx context.Context, userID int, id uuid.UUID) error
}

type BountyHandler struct {
	bountyService Service
}

func New(bountyService Service) *BountyHandler {
	return &BountyHandler{
		bountyService: bountyService,
	}
}

func toBountyDTO(bounty *domain.Bounty, total decimal.Decimal) dto.BountyResponseDTO {
	response := dto.BountyResponseDTO{
		ID:                  bounty.ID.String(),
		Title:               bounty.Title,
		Description:         bounty.Description,
		Category:            bounty.Category,
		Bounty:              bounty.Bounty,
		TotalBounty:         total,
		Deadline:            bounty.Deadline,
		AllowContributions:  bounty.AllowContributions,
		MinimumContribution: bounty.MinimumContribution,
		Status:              string(bounty.Status),
		CreatedAt:           bounty.CreatedAt,
	}
	if !bounty.IsAnonymous {
		ownerID := bounty.UserID
		response.OwnerID = &ownerID
	}
	return response
}

func toContributionDTO(contribution *domain.BountyContribution) dto.ContributionResponseDTO {
	return dto.ContributionResponseDTO{
		ID:            contribution.ID.String(),
		BountyID:      contribution.BountyID.String(),
		ContributorID: contribution.ContributorID,
		Amount:        contribution.Amount,
		Message:       contribution.Message,
		Status:        string(contribution.Status),
	}
}

// CreateBounty godoc
//
//	@Summary		Create a bounty
//	@Description	Debit the requester's wallet and create an open bounty backed by those funds.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBountyRequestDTO	true	"Bounty payload"
//	@Success		200		{object}	dto.BountyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties [post]
func (h *BountyHandler) CreateBounty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBountyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bounty, err := h.bountyService.CreateBounty(r.Context(), userID, bountyservice.BountyInput{
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Bounty:              req.Bounty,
		Deadline:            req.Deadline,
		AllowContributions:  req.AllowContributions,
		MinimumContribution: req.MinimumContribution,
		IsAnonymous:         req.IsAnonymous,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBountyDTO(bounty, bounty.Bounty))
}

// ListBounties godoc
//
//	@Summary		List open bounties
//	@Description	Open bounties with aggregated totals, newest first.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BountyResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties [get]
func (h *BountyHandler) ListBounties(w http.ResponseWriter, r *http.Request) {
	bounties, totals, err := h.bountyService.ListOpenBounties(r.Context(), listLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bounties")
		return
	}

	response := make([]dto.BountyResponseDTO, len(bounties))
	for i, bounty := range bounties {
		response[i] = toBountyDTO(&bounty, totals[bounty.ID])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBounty godoc
//
//	@Summary		Get a bounty
//	@Description	One bounty with its aggregated total and contributions.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Bounty id"
//	@Success		200	{object}	dto.BountyResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Bounty not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties/{id} [get]
func (h *BountyHandler) GetBounty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bounty id")
		return
	}

	bounty, total, _, err := h.bountyService.GetBounty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBountyDTO(bounty, total))
}

// CloseBounty godoc
//
//	@Summary		Close a bounty
//	@Description	Owner-only: move an open bounty to closed.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Bounty id"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Bounty not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties/{id}/close [post]
func (h *BountyHandler) CloseBounty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bounty id")
		return
	}

	if err := h.bountyService.CloseBounty(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "bounty closed"})
}

// Contribute godoc
//
//	@Summary		Contribute to a bounty
//	@Description	Debit the contributor's wallet and add the amount to the bounty total.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Bounty id"
//	@Param			request	body		dto.ContributeRequestDTO	true	"Contribution payload"
//	@Success		200		{object}	dto.ContributeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Bounty not found"
//	@Failure		422		{object}	utils.Response	"Bounty closed or below minimum"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties/{id}/contributions [post]
func (h *BountyHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bounty id")
		return
	}

	var req dto.ContributeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contribution, newTotal, err := h.bountyService.ContributeToBounty(r.Context(), userID, id, req.Amount, req.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ContributeResponseDTO{
		Contribution: toContributionDTO(contribution),
		NewTotal:     newTotal,
	})
}

// UpdateContribution godoc
//
//	@Summary		Accept or reject a contribution
//	@Description	Owner-only moderation; rejecting an accepted contribution refunds the contributor.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Bounty id"
//	@Param			cid		path		string							true	"Contribution id"
//	@Param			request	body		dto.UpdateContributionRequestDTO	true	"Status payload"
//	@Success		200		{object}	dto.ContributionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bounties/{id}/contributions/{cid} [patch]
func (h *BountyHandler) UpdateContribution(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bounty id")
		return
	}
	cid, err := uuid.Parse(chi.URLParam(r, "cid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid contribution id")
		return
	}

	var req dto.UpdateContributionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contribution, err := h.bountyService.UpdateContributionStatus(r.Context(), userID, id, cid, domain.ContributionStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContributionDTO(contribution))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bountyservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, bountyservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bountyservice.ErrBountyNotFound), errors.Is(err, bountyservice.ErrContributionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bountyservice.ErrBountyClosed),
		errors.Is(err, bountyservice.ErrContributionsDisabled),
		errors.Is(err, bountyservice.ErrBelowMinimum):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
