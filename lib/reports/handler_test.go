package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	reportstore "talento-backend/lib/reports/store"
	"talento-backend/models"
	reportapimodels "talento-backend/models/api/report"
)

// stubStore devuelve el mismo juego de filas para cada familia; alcanza para
// fijar cuántas etiquetas recorta cada sección.
type stubStore struct {
	rows []reportstore.Row
}

func (s stubStore) CityRows(int) ([]reportstore.Row, error)     { return s.rows, nil }
func (s stubStore) JobRows(int) ([]reportstore.Row, error)      { return s.rows, nil }
func (s stubStore) ReferrerRows(int) ([]reportstore.Row, error) { return s.rows, nil }
func (s stubStore) StatusRows(int) ([]reportstore.Row, error)   { return s.rows, nil }
func (s stubStore) BirthDateRows(int) ([]reportstore.DateRow, error) {
	return nil, nil
}
func (s stubStore) Counters(int) (reportapimodels.PersonalCounters, error) {
	return reportapimodels.PersonalCounters{}, nil
}
func (s stubStore) RegistrationsPerMonth(int) ([]reportapimodels.MonthCount, error) {
	return nil, nil
}
func (s stubStore) EducationLevelRows(int) ([]reportstore.Row, error) { return s.rows, nil }
func (s stubStore) TitleRows(int) ([]reportstore.Row, error)          { return s.rows, nil }
func (s stubStore) InstitutionRows(int) ([]reportstore.Row, error)    { return s.rows, nil }
func (s stubStore) EnglishLevelRows(int) ([]reportstore.Row, error)   { return s.rows, nil }
func (s stubStore) GraduationYearRows() ([]reportstore.Row, error)    { return s.rows, nil }
func (s stubStore) ExperienceRangeRows(int) ([]reportstore.Row, error) {
	return s.rows, nil
}
func (s stubStore) LastJobRows(int) ([]reportstore.Row, error) { return s.rows, nil }
func (s stubStore) CompanyRows(int) ([]reportstore.Row, error) { return s.rows, nil }
func (s stubStore) ExperienceDateRows(int) ([]reportstore.DateRow, error) {
	return nil, nil
}
func (s stubStore) KnowledgeRows(models.KnowledgeKind, int) ([]reportstore.Row, error) {
	return s.rows, nil
}
func (s stubStore) AvailabilityRows(int) ([]reportstore.Row, error) { return s.rows, nil }
func (s stubStore) SalaryRangeRows(int) ([]reportstore.Row, error)  { return s.rows, nil }
func (s stubStore) ExitMotiveRows(int) ([]reportstore.Row, error)   { return s.rows, nil }
func (s stubStore) BoolPreferenceRows(string, int) ([]reportstore.Row, error) {
	return s.rows, nil
}
func (s stubStore) YearsAvailable() ([]int, error) { return nil, nil }

func sevenLabels() []reportstore.Row {
	return []reportstore.Row{
		{Etiqueta: "a", Mes: 1, Total: 7},
		{Etiqueta: "b", Mes: 1, Total: 6},
		{Etiqueta: "c", Mes: 2, Total: 5},
		{Etiqueta: "d", Mes: 2, Total: 4},
		{Etiqueta: "e", Mes: 3, Total: 3},
		{Etiqueta: "f", Mes: 3, Total: 2},
		{Etiqueta: "g", Mes: 4, Total: 1},
	}
}

// Cada familia recorta su top anual con su propio N: 5 por defecto, 3 para
// referidos, y sin recorte para rangos, motivos, estados y si/no.
func TestSectionTopLimits(t *testing.T) {
	i := impl{store: stubStore{rows: sevenLabels()}}

	t.Run("personal", func(t *testing.T) {
		report, err := i.Personal(0)
		require.NoError(t, err)
		require.Len(t, report.TopCiudadesAnual, 5)
		require.Len(t, report.TopCargosAnual, 5)
		require.Len(t, report.TopReferidosAnual, 3)
		require.Len(t, report.EstadosAnual, 7)
	})

	t.Run("educación", func(t *testing.T) {
		report, err := i.Education(0)
		require.NoError(t, err)
		require.Len(t, report.TopNivelesAnual, 5)
		require.Len(t, report.TopTitulosAnual, 5)
		require.Len(t, report.TopInstitucionesAnual, 5)
		require.Len(t, report.NivelesIngles, 7)
		require.Len(t, report.AniosGraduacion, 7)
	})

	t.Run("experiencia", func(t *testing.T) {
		report, err := i.Experience(0)
		require.NoError(t, err)
		require.Len(t, report.TopRangosAnual, 7)
		require.Len(t, report.TopCargosAnual, 5)
		require.Len(t, report.TopEmpresasAnual, 5)
	})

	t.Run("conocimientos", func(t *testing.T) {
		report, err := i.Knowledge(0)
		require.NoError(t, err)
		require.Len(t, report.TopBlandasAnual, 5)
		require.Len(t, report.TopTecnicasAnual, 5)
		require.Len(t, report.TopHerramientasAnual, 5)
	})

	t.Run("preferencias", func(t *testing.T) {
		report, err := i.Preferences(0)
		require.NoError(t, err)
		require.Len(t, report.TopDisponibilidadesAnual, 5)
		require.Len(t, report.TopRangosSalarialesAnual, 7)
		require.Len(t, report.TopMotivosSalidaAnual, 7)
		require.Len(t, report.DispuestoViajar, 7)
		require.Len(t, report.TrabajaActualmente, 7)
	})

	t.Run("proceso", func(t *testing.T) {
		report, err := i.Process(0)
		require.NoError(t, err)
		require.Len(t, report.TopEstadosAnual, 7)
	})
}

// Los años de graduación son históricos: la sección de educación con un año
// elegido igual entrega la distribución completa.
func TestGraduationYearsUnscoped(t *testing.T) {
	i := impl{store: stubStore{rows: sevenLabels()}}
	report, err := i.Education(2024)
	require.NoError(t, err)
	require.Len(t, report.AniosGraduacion, 7)
}
