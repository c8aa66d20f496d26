package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	reportstore "talento-backend/lib/reports/store"
	reportapimodels "talento-backend/models/api/report"
)

func TestAnnualTop(t *testing.T) {
	rows := []reportstore.Row{
		{Etiqueta: "Bogotá", Mes: 3, Total: 2},
		{Etiqueta: "Bogotá", Mes: 7, Total: 1},
		{Etiqueta: "Medellín", Mes: 3, Total: 3},
		{Etiqueta: "Cali", Mes: 5, Total: 3},
	}
	t.Run("suma los meses y ordena por total y etiqueta", func(t *testing.T) {
		result := annualTop(rows, 5)
		require.Equal(t, []reportapimodels.LabelCount{
			{Etiqueta: "Bogotá", Total: 3},
			{Etiqueta: "Cali", Total: 3},
			{Etiqueta: "Medellín", Total: 3},
		}, result)
	})
	t.Run("recorta al topN", func(t *testing.T) {
		result := annualTop(rows, 2)
		require.Len(t, result, 2)
		require.Equal(t, "Bogotá", result[0].Etiqueta)
		require.Equal(t, "Cali", result[1].Etiqueta)
	})
	t.Run("topN cero devuelve todas", func(t *testing.T) {
		require.Len(t, annualTop(rows, 0), 3)
	})
	t.Run("sin filas devuelve vacío", func(t *testing.T) {
		require.Empty(t, annualTop(nil, 5))
	})
}

func TestMonthlyTop1(t *testing.T) {
	rows := []reportstore.Row{
		{Etiqueta: "Bogotá", Mes: 3, Total: 2},
		{Etiqueta: "Medellín", Mes: 3, Total: 1},
		{Etiqueta: "Cali", Mes: 7, Total: 1},
		{Etiqueta: "Armenia", Mes: 7, Total: 1},
	}
	result := monthlyTop1(rows)
	// los meses sin datos no se emiten; empate resuelto por etiqueta
	require.Equal(t, []reportapimodels.MonthlyTop{
		{Mes: 3, Etiqueta: "Bogotá", Total: 2},
		{Mes: 7, Etiqueta: "Armenia", Total: 1},
	}, result)
}

func TestMonthlyTop1YesNo(t *testing.T) {
	rows := []reportstore.Row{
		{Etiqueta: "no", Mes: 2, Total: 4},
		{Etiqueta: "si", Mes: 2, Total: 4},
		{Etiqueta: "no", Mes: 5, Total: 6},
		{Etiqueta: "si", Mes: 5, Total: 1},
	}
	result := monthlyTop1YesNo(rows)
	require.Equal(t, []reportapimodels.MonthlyTop{
		{Mes: 2, Etiqueta: "si", Total: 4}, // en empate gana "si"
		{Mes: 5, Etiqueta: "no", Total: 6},
	}, result)
}

func TestAgeBand(t *testing.T) {
	on := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		birth string
		want  string
	}{
		{"2005-01-01", "<25"},
		{"2000-06-15", "25-34"}, // cumple 25 ese día
		{"2000-06-16", "<25"},
		{"1991-01-01", "25-34"},
		{"1985-03-10", "35-44"},
		{"1975-12-31", "45+"},
	}
	for _, c := range cases {
		birth, err := time.Parse("2006-01-02", c.birth)
		require.NoError(t, err)
		require.Equal(t, c.want, ageBand(birth, on), c.birth)
	}
}

func TestDurationBucket(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	end := func(value string) *time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return &parsed
	}
	start := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return parsed
	}

	require.Equal(t, "<1 año", durationBucket(start("2024-01-01"), end("2024-06-01"), today))
	require.Equal(t, "1-3 años", durationBucket(start("2022-01-01"), end("2024-01-01"), today))
	require.Equal(t, "3-5 años", durationBucket(start("2020-01-01"), end("2024-01-01"), today))
	require.Equal(t, ">5 años", durationBucket(start("2015-01-01"), end("2024-01-01"), today))
	// fin nulo cuenta hasta hoy
	require.Equal(t, "1-3 años", durationBucket(start("2024-01-01"), nil, today))
}

func TestOrderedCounts(t *testing.T) {
	rows := []reportstore.Row{
		{Etiqueta: "45+", Mes: 1, Total: 1},
		{Etiqueta: "<25", Mes: 2, Total: 3},
		{Etiqueta: "<25", Mes: 4, Total: 2},
	}
	result := orderedCounts(rows, ageBandOrderKey)
	// respeta el orden de las bandas y omite las vacías
	require.Equal(t, []reportapimodels.LabelCount{
		{Etiqueta: "<25", Total: 5},
		{Etiqueta: "45+", Total: 1},
	}, result)
}
