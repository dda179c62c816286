package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fedemoisello/ADN-2025/internal/adapters/storage/csvsource"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCSV = `ID_Consultor,Nombre,Pais_local,Delivery,Moneda_acuerdo,Costo_Dia_Solo_local,Costo_Dia_Pareja_local
1,Ana Suárez,Argentina,Argentina;Uruguay,ARS,950000,820000
2,Bruno Carvalho,Brasil,Brasil,BRL,5600,4700
3,Elena Pereyra,Uruguay,Uruguay;Argentina,USD,1150,0
`

func TestReadRoster_ParsesRowsInFileOrder(t *testing.T) {
	source := csvsource.NewRosterSource(writeCSV(t, validCSV))

	consultants, err := source.ReadRoster(context.Background())

	require.NoError(t, err)
	require.Len(t, consultants, 3)

	ana := consultants[0]
	assert.Equal(t, 1, ana.ConsultantID)
	assert.Equal(t, "Ana Suárez", ana.Name)
	assert.Equal(t, "Argentina", ana.HomeCountry)
	assert.Equal(t, []string{"Argentina", "Uruguay"}, ana.DeliveryCountries)
	assert.Equal(t, "ARS", ana.AgreementCurrency)
	assert.True(t, decimal.RequireFromString("950000").Equal(ana.SoloDayRateLocal))

	// USD derivation is the roster service's job, not the source's
	assert.True(t, ana.SoloDayRateUSD.IsZero())

	assert.True(t, consultants[2].PairDayRateLocal.IsZero())
}

func TestReadRoster_ColumnOrderIndependent(t *testing.T) {
	reordered := `Nombre,ID_Consultor,Moneda_acuerdo,Pais_local,Costo_Dia_Pareja_local,Costo_Dia_Solo_local,Delivery
Ana,7,USD,Chile,900,1100,Chile;Argentina
`
	source := csvsource.NewRosterSource(writeCSV(t, reordered))

	consultants, err := source.ReadRoster(context.Background())

	require.NoError(t, err)
	require.Len(t, consultants, 1)
	assert.Equal(t, 7, consultants[0].ConsultantID)
	assert.Equal(t, "Chile", consultants[0].HomeCountry)
	assert.True(t, decimal.RequireFromString("1100").Equal(consultants[0].SoloDayRateLocal))
}

func TestReadRoster_MissingFile(t *testing.T) {
	source := csvsource.NewRosterSource(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := source.ReadRoster(context.Background())

	assert.Error(t, err)
}

func TestReadRoster_MissingColumn(t *testing.T) {
	noCurrency := `ID_Consultor,Nombre,Pais_local,Delivery,Costo_Dia_Solo_local,Costo_Dia_Pareja_local
1,Ana,Argentina,Argentina,950000,820000
`
	source := csvsource.NewRosterSource(writeCSV(t, noCurrency))

	_, err := source.ReadRoster(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Moneda_acuerdo")
}

func TestReadRoster_MalformedRate(t *testing.T) {
	badRate := `ID_Consultor,Nombre,Pais_local,Delivery,Moneda_acuerdo,Costo_Dia_Solo_local,Costo_Dia_Pareja_local
1,Ana,Argentina,Argentina,ARS,not-a-number,820000
`
	source := csvsource.NewRosterSource(writeCSV(t, badRate))

	_, err := source.ReadRoster(context.Background())

	assert.Error(t, err)
}

func TestReadRoster_EmptyDeliveryColumn(t *testing.T) {
	emptyDelivery := `ID_Consultor,Nombre,Pais_local,Delivery,Moneda_acuerdo,Costo_Dia_Solo_local,Costo_Dia_Pareja_local
1,Ana,Argentina,,ARS,950000,820000
`
	source := csvsource.NewRosterSource(writeCSV(t, emptyDelivery))

	consultants, err := source.ReadRoster(context.Background())

	require.NoError(t, err)
	require.Len(t, consultants, 1)
	assert.Empty(t, consultants[0].DeliveryCountries)
}
