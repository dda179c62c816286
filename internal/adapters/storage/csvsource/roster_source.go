package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portsrepo "github.com/fedemoisello/ADN-2025/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Column names of the roster CSV, kept as the planning spreadsheet exports them.
const (
	colConsultantID  = "ID_Consultor"
	colName          = "Nombre"
	colHomeCountry   = "Pais_local"
	colDelivery      = "Delivery"
	colCurrency      = "Moneda_acuerdo"
	colSoloDayRate   = "Costo_Dia_Solo_local"
	colPairDayRate   = "Costo_Dia_Pareja_local"
	deliverySeparator = ";"
)

// RosterSource reads the consultant roster from a CSV file. The file is read
// in full on every call; rows carry local rates only and USD derivation is
// left to the roster service.
type RosterSource struct {
	path string
}

// NewRosterSource creates a RosterSource for the given CSV path.
func NewRosterSource(path string) *RosterSource {
	return &RosterSource{path: path}
}

// ReadRoster parses the CSV into consultants, in file order.
func (s *RosterSource) ReadRoster(ctx context.Context) ([]domain.Consultant, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file %q: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %q: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster file %q is empty", s.path)
	}

	cols, err := columnIndex(records[0])
	if err != nil {
		return nil, fmt.Errorf("roster file %q: %w", s.path, err)
	}

	consultants := make([]domain.Consultant, 0, len(records)-1)
	for i, record := range records[1:] {
		c, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("roster file %q row %d: %w", s.path, i+1, err)
		}
		consultants = append(consultants, c)
	}
	return consultants, nil
}

// columnIndex maps each expected column name to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colConsultantID, colName, colHomeCountry, colDelivery, colCurrency, colSoloDayRate, colPairDayRate} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int) (domain.Consultant, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[cols[name]])
	}

	id, err := strconv.Atoi(field(colConsultantID))
	if err != nil {
		return domain.Consultant{}, fmt.Errorf("invalid consultant ID %q: %w", field(colConsultantID), err)
	}

	soloRate, err := decimal.NewFromString(field(colSoloDayRate))
	if err != nil {
		return domain.Consultant{}, fmt.Errorf("invalid solo day rate %q: %w", field(colSoloDayRate), err)
	}
	pairRate, err := decimal.NewFromString(field(colPairDayRate))
	if err != nil {
		return domain.Consultant{}, fmt.Errorf("invalid pair day rate %q: %w", field(colPairDayRate), err)
	}

	return domain.Consultant{
		ConsultantID:      id,
		Name:              field(colName),
		HomeCountry:       field(colHomeCountry),
		DeliveryCountries: splitDelivery(field(colDelivery)),
		AgreementCurrency: field(colCurrency),
		SoloDayRateLocal:  soloRate,
		PairDayRateLocal:  pairRate,
	}, nil
}

// splitDelivery parses the multi-valued delivery column ("Argentina;Brasil").
func splitDelivery(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, deliverySeparator)
	countries := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			countries = append(countries, trimmed)
		}
	}
	return countries
}

var _ portsrepo.RosterSource = (*RosterSource)(nil)
