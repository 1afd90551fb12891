package bounty

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/dto"
	"github.com/bountylab/bountyhub/internal/service/bountyservice"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
	"github.com/bountylab/bountyhub/pkg/auth"
)

func NewMock(t *testing.T) (*BountyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)

	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	return req.WithContext(ctx)
}

func openBounty() *domain.Bounty {
	return &domain.Bounty{
		ID:     uuid.New(),
		UserID: 1,
		Title:  "Best explainer video",
		Bounty: decimal.RequireFromString("250"),
		Status: domain.BountyOpen,
	}
}

func TestCreateBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Bounty created",
			body: `{"title":"Best explainer video","bounty":"250","deadline":"2026-10-01T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().CreateBounty(gomock.Any(), 1, gomock.Any()).Return(openBounty(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient funds",
			body: `{"title":"Best explainer video","bounty":"250"}`,
			prepareMock: func() {
				service.EXPECT().CreateBounty(gomock.Any(), 1, gomock.Any()).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Validation error",
			body: `{"title":"","bounty":"250"}`,
			prepareMock: func() {
				service.EXPECT().CreateBounty(gomock.Any(), 1, gomock.Any()).
					Return(nil, bountyservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("POST", "/api/bounties", tt.body, nil)
			rr := httptest.NewRecorder()

			handler.CreateBounty(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListBountiesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Open bounties listed with totals", func(t *testing.T) {
		bounty := openBounty()
		totals := map[uuid.UUID]decimal.Decimal{bounty.ID: decimal.RequireFromString("330")}
		service.EXPECT().ListOpenBounties(gomock.Any(), uint32(listLimit)).
			Return([]domain.Bounty{*bounty}, totals, nil)

		req := authRequest("GET", "/api/bounties", "", nil)
		rr := httptest.NewRecorder()

		handler.ListBounties(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.BountyResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.True(t, resp[0].TotalBounty.Equal(decimal.RequireFromString("330")))
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().ListOpenBounties(gomock.Any(), uint32(listLimit)).
			Return(nil, nil, errors.New("db down"))

		req := authRequest("GET", "/api/bounties", "", nil)
		rr := httptest.NewRecorder()

		handler.ListBounties(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetBountyHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Bounty returned", func(t *testing.T) {
		bounty := openBounty()
		service.EXPECT().GetBounty(gomock.Any(), bounty.ID).
			Return(bounty, decimal.RequireFromString("330"), nil, nil)

		req := authRequest("GET", "/api/bounties/"+bounty.ID.String(), "", map[string]string{"id": bounty.ID.String()})
		rr := httptest.NewRecorder()

		handler.GetBounty(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.BountyResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, bounty.ID.String(), resp.ID)
	})

	t.Run("Anonymous bounty hides the owner", func(t *testing.T) {
		bounty := openBounty()
		bounty.IsAnonymous = true
		service.EXPECT().GetBounty(gomock.Any(), bounty.ID).
			Return(bounty, bounty.Bounty, nil, nil)

		req := authRequest("GET", "/api/bounties/"+bounty.ID.String(), "", map[string]string{"id": bounty.ID.String()})
		rr := httptest.NewRecorder()

		handler.GetBounty(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.BountyResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Nil(t, resp.OwnerID)
	})

	t.Run("Bounty not found", func(t *testing.T) {
		id := uuid.New()
		service.EXPECT().GetBounty(gomock.Any(), id).
			Return(nil, decimal.Zero, nil, bountyservice.ErrBountyNotFound)

		req := authRequest("GET", "/api/bounties/"+id.String(), "", map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.GetBounty(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		req := authRequest("GET", "/api/bounties/not-a-uuid", "", map[string]string{"id": "not-a-uuid"})
		rr := httptest.NewRecorder()

		handler.GetBounty(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCloseBountyHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	t.Run("Bounty closed", func(t *testing.T) {
		service.EXPECT().CloseBounty(gomock.Any(), 1, id).Return(nil)

		req := authRequest("POST", "/api/bounties/"+id.String()+"/close", "", map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.CloseBounty(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not the owner", func(t *testing.T) {
		service.EXPECT().CloseBounty(gomock.Any(), 1, id).Return(bountyservice.ErrNotOwner)

		req := authRequest("POST", "/api/bounties/"+id.String()+"/close", "", map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.CloseBounty(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestContributeHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Contribution added",
			body: `{"amount":"80","message":"Adding to the pot"}`,
			prepareMock: func() {
				service.EXPECT().ContributeToBounty(gomock.Any(), 1, id, gomock.Any(), "Adding to the pot").
					Return(&domain.BountyContribution{
						ID:            uuid.New(),
						BountyID:      id,
						ContributorID: 1,
						Amount:        decimal.RequireFromString("80"),
						Status:        domain.ContributionAccepted,
					}, decimal.RequireFromString("330"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Below minimum",
			body: `{"amount":"1"}`,
			prepareMock: func() {
				service.EXPECT().ContributeToBounty(gomock.Any(), 1, id, gomock.Any(), gomock.Any()).
					Return(nil, decimal.Zero, bountyservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Bounty closed",
			body: `{"amount":"80"}`,
			prepareMock: func() {
				service.EXPECT().ContributeToBounty(gomock.Any(), 1, id, gomock.Any(), gomock.Any()).
					Return(nil, decimal.Zero, bountyservice.ErrBountyClosed)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":"80"}`,
			prepareMock: func() {
				service.EXPECT().ContributeToBounty(gomock.Any(), 1, id, gomock.Any(), gomock.Any()).
					Return(nil, decimal.Zero, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("POST", "/api/bounties/"+id.String()+"/contributions", tt.body, map[string]string{"id": id.String()})
			rr := httptest.NewRecorder()

			handler.Contribute(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateContributionHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	cid := uuid.New()
	params := map[string]string{"id": id.String(), "cid": cid.String()}

	t.Run("Contribution rejected", func(t *testing.T) {
		service.EXPECT().UpdateContributionStatus(gomock.Any(), 1, id, cid, domain.ContributionRejected).
			Return(&domain.BountyContribution{
				ID:       cid,
				BountyID: id,
				Status:   domain.ContributionRejected,
			}, nil)

		req := authRequest("PATCH", "/api/bounties/"+id.String()+"/contributions/"+cid.String(), `{"status":"rejected"}`, params)
		rr := httptest.NewRecorder()

		handler.UpdateContribution(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ContributionResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "rejected", resp.Status)
	})

	t.Run("Not the owner", func(t *testing.T) {
		service.EXPECT().UpdateContributionStatus(gomock.Any(), 1, id, cid, domain.ContributionAccepted).
			Return(nil, bountyservice.ErrNotOwner)

		req := authRequest("PATCH", "/api/bounties/"+id.String()+"/contributions/"+cid.String(), `{"status":"accepted"}`, params)
		rr := httptest.NewRecorder()

		handler.UpdateContribution(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Contribution not found", func(t *testing.T) {
		service.EXPECT().UpdateContributionStatus(gomock.Any(), 1, id, cid, domain.ContributionAccepted).
			Return(nil, bountyservice.ErrContributionNotFound)

		req := authRequest("PATCH", "/api/bounties/"+id.String()+"/contributions/"+cid.String(), `{"status":"accepted"}`, params)
		rr := httptest.NewRecorder()

		handler.UpdateContribution(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
