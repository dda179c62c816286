package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
	"github.com/fedemoisello/ADN-2025/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlanningService ---
type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) EnumerateCombinations(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.Combination, error) {
	args := m.Called(ctx, country, workshopType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Combination), args.Error(1)
}

func (m *MockPlanningService) EvaluateMargin(combination domain.Combination, workshopType domain.WorkshopType) (domain.MarginResult, error) {
	args := m.Called(combination, workshopType)
	return args.Get(0).(domain.MarginResult), args.Error(1)
}

func (m *MockPlanningService) AnalyzeCountry(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.CombinationMargin, error) {
	args := m.Called(ctx, country, workshopType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CombinationMargin), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PlanningSvcFacade = (*MockPlanningService)(nil)

// --- Test Suite ---
type PlanningHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockPlanningService *MockPlanningService
}

func (suite *PlanningHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPlanningService = new(MockPlanningService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPlanningRoutes(v1, suite.mockPlanningService)
}

// --- Test Cases ---

func (suite *PlanningHandlerTestSuite) TestListCombinations_Success() {
	traveler := domain.Consultant{
		ConsultantID: 1, Name: "Ana", HomeCountry: "Argentina",
		PairDayRateUSD: decimal.RequireFromString("200"),
	}
	local := domain.Consultant{
		ConsultantID: 2, Name: "Bruno", HomeCountry: "Brasil",
		PairDayRateUSD: decimal.RequireFromString("250"),
	}
	expected := []domain.CombinationMargin{
		{
			Combination: domain.Combination{Consultants: []domain.Consultant{traveler, local}},
			MarginResult: domain.MarginResult{
				RevenueTotal:  decimal.RequireFromString("12500"),
				CostTotal:     decimal.RequireFromString("1180"),
				MarginAmount:  decimal.RequireFromString("11320"),
				MarginPercent: decimal.RequireFromString("90.56"),
				Tier:          domain.TierOptimal,
			},
		},
	}

	suite.mockPlanningService.On("AnalyzeCountry",
		mock.Anything, "Brasil", domain.Workshop2Days2Consultants,
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/planning/combinations?country=%s&workshopType=%s", "Brasil", "2d-2c")
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CombinationMarginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal([]int{1, 2}, body[0].ConsultantIDs)
	// Ana works away from home in Brasil, Bruno does not travel
	suite.Equal("Ana ✈️ 🏨", body[0].DisplayNames[0])
	suite.Equal("Bruno", body[0].DisplayNames[1])
	suite.Equal("90.6", body[0].MarginPercent)
	suite.Equal(domain.TierOptimal, body[0].Tier)
	suite.mockPlanningService.AssertExpectations(suite.T())
}

func (suite *PlanningHandlerTestSuite) TestListCombinations_EmptyResult() {
	suite.mockPlanningService.On("AnalyzeCountry",
		mock.Anything, "Chile", domain.Workshop1Day1Consultant,
	).Return([]domain.CombinationMargin{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/planning/combinations?country=Chile&workshopType=1d-1c", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CombinationMarginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body)
}

func (suite *PlanningHandlerTestSuite) TestListCombinations_ValidationError() {
	suite.mockPlanningService.On("AnalyzeCountry",
		mock.Anything, "Atlantis", domain.WorkshopType("1d-1c"),
	).Return(nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, "Atlantis")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/planning/combinations?country=Atlantis&workshopType=1d-1c", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestPlanningHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningHandlerTestSuite))
}
