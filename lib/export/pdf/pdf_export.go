package pdfexport

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pkg/errors"

	reportapimodels "talento-backend/models/api/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StatisticsDocument agrupa todas las secciones del tablero para un año.
type StatisticsDocument struct {
	Year        int
	Personal    reportapimodels.PersonalReport
	Education   reportapimodels.EducationReport
	Experience  reportapimodels.ExperienceReport
	Knowledge   reportapimodels.KnowledgeReport
	Preferences reportapimodels.PreferencesReport
	Process     reportapimodels.ProcessReport
}

type Provider interface {
	ExportStatistics(doc StatisticsDocument) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportStatistics(doc StatisticsDocument) ([]byte, error) {
	cfg := marotoconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estadísticas de candidatos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Year))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRows("Información personal", [][2]interface{}{
		{"Top ciudades", doc.Personal.TopCiudadesAnual},
		{"Top cargos ofrecidos", doc.Personal.TopCargosAnual},
		{"Top referidos", doc.Personal.TopReferidosAnual},
		{"Rangos de edad", doc.Personal.RangosEdad},
		{"Estados", doc.Personal.EstadosAnual},
	})...)
	m.AddRows(countersRows(doc.Personal.Contadores)...)

	m.AddRows(sectionRows("Educación", [][2]interface{}{
		{"Niveles educativos", doc.Education.TopNivelesAnual},
		{"Top títulos", doc.Education.TopTitulosAnual},
		{"Top instituciones", doc.Education.TopInstitucionesAnual},
		{"Niveles de inglés", doc.Education.NivelesIngles},
		{"Años de graduación", doc.Education.AniosGraduacion},
	})...)

	m.AddRows(sectionRows("Experiencia laboral", [][2]interface{}{
		{"Rangos de experiencia", doc.Experience.TopRangosAnual},
		{"Top últimos cargos", doc.Experience.TopCargosAnual},
		{"Top empresas", doc.Experience.TopEmpresasAnual},
		{"Duración de empleos", doc.Experience.Duraciones},
	})...)

	m.AddRows(sectionRows("Conocimientos", [][2]interface{}{
		{"Top habilidades blandas", doc.Knowledge.TopBlandasAnual},
		{"Top habilidades técnicas", doc.Knowledge.TopTecnicasAnual},
		{"Top herramientas", doc.Knowledge.TopHerramientasAnual},
	})...)

	m.AddRows(sectionRows("Preferencias", [][2]interface{}{
		{"Disponibilidades", doc.Preferences.TopDisponibilidadesAnual},
		{"Rangos salariales", doc.Preferences.TopRangosSalarialesAnual},
		{"Motivos de salida", doc.Preferences.TopMotivosSalidaAnual},
		{"Dispuesto a viajar", doc.Preferences.DispuestoViajar},
		{"Trabaja actualmente", doc.Preferences.TrabajaActualmente},
	})...)

	m.AddRows(processRows(doc.Process)...)

	result, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "error generando el pdf de estadísticas")
	}
	return result.GetBytes(), nil
}

func titleRow(year int) core.Row {
	scope := "Histórico"
	if year > 0 {
		scope = fmt.Sprintf("Año %d", year)
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Estadísticas de candidatos", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(scope, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorGray, Top: 4,
			}),
		),
	)
}

// sectionRows arma el encabezado de sección y una tabla etiqueta/total por
// cada bloque no vacío.
func sectionRows(title string, blocks [][2]interface{}) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		)),
	}
	for _, block := range blocks {
		label := block[0].(string)
		counts := block[1].([]reportapimodels.LabelCount)
		if len(counts) == 0 {
			continue
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
		for _, count := range counts {
			rows = append(rows, labelCountRow(count.Etiqueta, count.Total))
		}
	}
	return rows
}

func labelCountRow(label string, total int64) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(label, props.Text{
			Size: 8, Align: align.Left, Top: 0.5, Left: 3,
		})),
		col.New(4).Add(text.New(strconv.FormatInt(total, 10), props.Text{
			Size: 8, Align: align.Right, Top: 0.5, Right: 3,
		})),
	)
}

func countersRows(counters reportapimodels.PersonalCounters) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Contadores", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)),
	}
	pairs := []struct {
		label string
		total int64
	}{
		{"Con referido", counters.ConReferido},
		{"Sin referido", counters.SinReferido},
		{"Formulario completo", counters.FormularioCompleto},
		{"Formulario incompleto", counters.FormularioIncompleto},
		{"Trabaja actualmente aquí", counters.TrabajaActualmenteAqui},
		{"Ha trabajado aquí", counters.HaTrabajadoAqui},
	}
	for _, pair := range pairs {
		rows = append(rows, labelCountRow(pair.label, pair.total))
	}
	return rows
}

func processRows(report reportapimodels.ProcessReport) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Proceso de selección", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		)),
	}
	if len(report.CandidatosPorMes) != 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Candidatos por mes", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
		for _, month := range report.CandidatosPorMes {
			rows = append(rows, labelCountRow(fmt.Sprintf("Mes %d", month.Mes), month.Total))
		}
	}
	if len(report.TopEstadosAnual) != 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Estados del proceso", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
		for _, count := range report.TopEstadosAnual {
			rows = append(rows, labelCountRow(count.Etiqueta, count.Total))
		}
	}
	return rows
}
