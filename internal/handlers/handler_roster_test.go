package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
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

// --- Mock RosterService ---
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) ListConsultants(ctx context.Context) ([]domain.Consultant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultant), args.Error(1)
}

func (m *MockRosterService) LoadFromSource(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRosterService) ReplaceRoster(ctx context.Context, req dto.ReplaceRosterRequest) ([]domain.Consultant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultant), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RosterSvcFacade = (*MockRosterService)(nil)

// --- Test Suite ---
type RosterHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockRosterService *MockRosterService
}

func (suite *RosterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockRosterService = new(MockRosterService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRosterRoutes(v1, suite.mockRosterService)
}

func rosterFixture() []domain.Consultant {
	return []domain.Consultant{
		{
			ConsultantID:      1,
			Name:              "Ana",
			HomeCountry:       "Argentina",
			DeliveryCountries: []string{"Argentina"},
			AgreementCurrency: "ARS",
			SoloDayRateLocal:  decimal.RequireFromString("950000"),
			PairDayRateLocal:  decimal.RequireFromString("820000"),
			SoloDayRateUSD:    decimal.RequireFromString("1045"),
			PairDayRateUSD:    decimal.RequireFromString("902"),
		},
	}
}

// --- Test Cases ---

func (suite *RosterHandlerTestSuite) TestListRoster_DayUnit() {
	suite.mockRosterService.On("ListConsultants", mock.Anything).Return(rosterFixture(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ConsultantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(dto.UnitDay, body[0].Unit)
	suite.True(decimal.RequireFromString("1045").Equal(body[0].SoloRateUSD))
}

func (suite *RosterHandlerTestSuite) TestListRoster_HourUnitScalesDisplay() {
	suite.mockRosterService.On("ListConsultants", mock.Anything).Return(rosterFixture(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/roster?unit=hour", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.ConsultantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(dto.UnitHour, body[0].Unit)
	// 1045 / 8
	suite.True(decimal.RequireFromString("130.625").Equal(body[0].SoloRateUSD), "got %s", body[0].SoloRateUSD)
}

func (suite *RosterHandlerTestSuite) TestListRoster_InvalidUnit() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/roster?unit=week", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRosterService.AssertNotCalled(suite.T(), "ListConsultants", mock.Anything)
}

func (suite *RosterHandlerTestSuite) TestReplaceRoster_Success() {
	reqBody := dto.ReplaceRosterRequest{
		Rows: []dto.RosterRowRequest{
			{
				ConsultantID:      1,
				Name:              "Ana",
				HomeCountry:       "Argentina",
				DeliveryCountries: []string{"Argentina"},
				AgreementCurrency: "ARS",
				SoloRateLocal:     decimal.RequireFromString("1000000"),
				PairRateLocal:     decimal.RequireFromString("820000"),
			},
		},
	}

	suite.mockRosterService.On("ReplaceRoster", mock.Anything, mock.AnythingOfType("dto.ReplaceRosterRequest")).
		Return(rosterFixture(), nil).Once()

	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/roster", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRosterService.AssertExpectations(suite.T())
}

func (suite *RosterHandlerTestSuite) TestReplaceRoster_ValidationErrorFromService() {
	suite.mockRosterService.On("ReplaceRoster", mock.Anything, mock.AnythingOfType("dto.ReplaceRosterRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	payload := `{"rows":[{"consultantID":1,"name":"Ana","homeCountry":"Atlantis","agreementCurrency":"ARS"}]}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/roster", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RosterHandlerTestSuite) TestReplaceRoster_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/roster", bytes.NewBufferString(`{"rows": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRosterService.AssertNotCalled(suite.T(), "ReplaceRoster", mock.Anything, mock.Anything)
}

func (suite *RosterHandlerTestSuite) TestReloadRoster_SourceFailure() {
	suite.mockRosterService.On("LoadFromSource", mock.Anything).Return(apperrors.ErrRosterLoad).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/roster/reload", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
