package dto

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Rate display units offered by the editing surface. Stored rates are always
// per day; hour mode divides displayed values by 8 and hour-mode edits are
// multiplied by 8 before recomputation.
const (
	UnitDay  = "day"
	UnitHour = "hour"
)

// HoursPerDay is the linear factor between day and hour display modes.
var HoursPerDay = decimal.NewFromInt(8)

// ConsultantResponse defines the data returned for one roster row.
type ConsultantResponse struct {
	ConsultantID      int             `json:"consultantID"`
	Name              string          `json:"name"`
	HomeCountry       string          `json:"homeCountry"`
	DeliveryCountries []string        `json:"deliveryCountries"`
	AgreementCurrency string          `json:"agreementCurrency"`
	SoloRateLocal     decimal.Decimal `json:"soloRateLocal"`
	PairRateLocal     decimal.Decimal `json:"pairRateLocal"`
	SoloRateUSD       decimal.Decimal `json:"soloRateUSD"`
	PairRateUSD       decimal.Decimal `json:"pairRateUSD"`
	Unit              string          `json:"unit"`
}

// ToConsultantResponse converts a domain.Consultant to ConsultantResponse DTO,
// scaling displayed rates when hour mode is requested.
func ToConsultantResponse(c domain.Consultant, unit string) ConsultantResponse {
	resp := ConsultantResponse{
		ConsultantID:      c.ConsultantID,
		Name:              c.Name,
		HomeCountry:       c.HomeCountry,
		DeliveryCountries: c.DeliveryCountries,
		AgreementCurrency: c.AgreementCurrency,
		SoloRateLocal:     c.SoloDayRateLocal,
		PairRateLocal:     c.PairDayRateLocal,
		SoloRateUSD:       c.SoloDayRateUSD,
		PairRateUSD:       c.PairDayRateUSD,
		Unit:              UnitDay,
	}
	if unit == UnitHour {
		resp.SoloRateLocal = c.SoloDayRateLocal.Div(HoursPerDay)
		resp.PairRateLocal = c.PairDayRateLocal.Div(HoursPerDay)
		resp.SoloRateUSD = c.SoloDayRateUSD.Div(HoursPerDay)
		resp.PairRateUSD = c.PairDayRateUSD.Div(HoursPerDay)
		resp.Unit = UnitHour
	}
	return resp
}

// ToListConsultantResponse converts a slice of domain.Consultant to a slice of ConsultantResponse DTOs.
func ToListConsultantResponse(consultants []domain.Consultant, unit string) []ConsultantResponse {
	responses := make([]ConsultantResponse, len(consultants))
	for i, c := range consultants {
		responses[i] = ToConsultantResponse(c, unit)
	}
	return responses
}

// RosterRowRequest is one edited roster row in a replacement commit.
// USD fields are never accepted from the client; they are recomputed.
type RosterRowRequest struct {
	ConsultantID      int             `json:"consultantID" binding:"required,min=1"`
	Name              string          `json:"name" binding:"required"`
	HomeCountry       string          `json:"homeCountry" binding:"required"`
	DeliveryCountries []string        `json:"deliveryCountries" binding:"dive,required"`
	AgreementCurrency string          `json:"agreementCurrency" binding:"required,len=3,uppercase"`
	SoloRateLocal     decimal.Decimal `json:"soloRateLocal"`
	PairRateLocal     decimal.Decimal `json:"pairRateLocal"`
}

// ReplaceRosterRequest defines a full-replacement edit commit of the roster.
type ReplaceRosterRequest struct {
	Unit string             `json:"unit" binding:"omitempty,oneof=day hour"`
	Rows []RosterRowRequest `json:"rows" binding:"required,dive"`
}
