package reports

import (
	"time"

	"talento-backend/db"
	reportstore "talento-backend/lib/reports/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	reportapimodels "talento-backend/models/api/report"
)

const (
	defaultTopN  = 5
	referrerTopN = 3

	durationOrderKey = "<1 año,1-3 años,3-5 años,>5 años"
)

type Provider interface {
	Personal(year int) (reportapimodels.PersonalReport, error)
	Education(year int) (reportapimodels.EducationReport, error)
	Experience(year int) (reportapimodels.ExperienceReport, error)
	Knowledge(year int) (reportapimodels.KnowledgeReport, error)
	Preferences(year int) (reportapimodels.PreferencesReport, error)
	Process(year int) (reportapimodels.ProcessReport, error)
	Years() ([]int, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: reportstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store reportstore.Provider
}

func (i impl) Personal(year int) (reportapimodels.PersonalReport, error) {
	report := reportapimodels.PersonalReport{}

	cities, err := i.store.CityRows(year)
	if err != nil {
		return report, err
	}
	report.TopCiudadesAnual = annualTop(cities, defaultTopN)
	report.TopCiudadesMensual = monthlyTop1(cities)

	jobs, err := i.store.JobRows(year)
	if err != nil {
		return report, err
	}
	report.TopCargosAnual = annualTop(jobs, defaultTopN)
	report.TopCargosMensual = monthlyTop1(jobs)

	referrers, err := i.store.ReferrerRows(year)
	if err != nil {
		return report, err
	}
	report.TopReferidosAnual = annualTop(referrers, referrerTopN)
	report.TopReferidosMensual = monthlyTop1(referrers)

	births, err := i.store.BirthDateRows(year)
	if err != nil {
		return report, err
	}
	today := time.Now().UTC()
	ages := make([]reportstore.Row, 0, len(births))
	for _, row := range births {
		ages = append(ages, reportstore.Row{
			Etiqueta: ageBand(row.Fecha, today),
			Mes:      row.Mes,
			Total:    1,
		})
	}
	report.RangosEdad = orderedCounts(ages, ageBandOrderKey)
	report.RangosEdadMensual = monthlyTop1(ages)

	statuses, err := i.store.StatusRows(year)
	if err != nil {
		return report, err
	}
	report.EstadosAnual = annualTop(statuses, 0)

	counters, err := i.store.Counters(year)
	if err != nil {
		return report, err
	}
	report.Contadores = counters
	return report, nil
}

func (i impl) Education(year int) (reportapimodels.EducationReport, error) {
	report := reportapimodels.EducationReport{}

	levels, err := i.store.EducationLevelRows(year)
	if err != nil {
		return report, err
	}
	report.TopNivelesAnual = annualTop(levels, defaultTopN)
	report.TopNivelesMensual = monthlyTop1(levels)

	titles, err := i.store.TitleRows(year)
	if err != nil {
		return report, err
	}
	report.TopTitulosAnual = annualTop(titles, defaultTopN)
	report.TopTitulosMensual = monthlyTop1(titles)

	institutions, err := i.store.InstitutionRows(year)
	if err != nil {
		return report, err
	}
	report.TopInstitucionesAnual = annualTop(institutions, defaultTopN)
	report.TopInstitucionesMensual = monthlyTop1(institutions)

	english, err := i.store.EnglishLevelRows(year)
	if err != nil {
		return report, err
	}
	report.NivelesIngles = annualTop(english, 0)
	report.NivelesInglesMensual = monthlyTop1(english)

	graduations, err := i.store.GraduationYearRows()
	if err != nil {
		return report, err
	}
	report.AniosGraduacion = annualTop(graduations, 0)
	return report, nil
}

func (i impl) Experience(year int) (reportapimodels.ExperienceReport, error) {
	report := reportapimodels.ExperienceReport{}

	ranges, err := i.store.ExperienceRangeRows(year)
	if err != nil {
		return report, err
	}
	report.TopRangosAnual = annualTop(ranges, 0)
	report.TopRangosMensual = monthlyTop1(ranges)

	jobs, err := i.store.LastJobRows(year)
	if err != nil {
		return report, err
	}
	report.TopCargosAnual = annualTop(jobs, defaultTopN)
	report.TopCargosMensual = monthlyTop1(jobs)

	companies, err := i.store.CompanyRows(year)
	if err != nil {
		return report, err
	}
	report.TopEmpresasAnual = annualTop(companies, defaultTopN)
	report.TopEmpresasMensual = monthlyTop1(companies)

	dates, err := i.store.ExperienceDateRows(year)
	if err != nil {
		return report, err
	}
	today := time.Now().UTC()
	durations := make([]reportstore.Row, 0, len(dates))
	for _, row := range dates {
		durations = append(durations, reportstore.Row{
			Etiqueta: durationBucket(row.Fecha, row.Fin, today),
			Mes:      row.Mes,
			Total:    1,
		})
	}
	report.Duraciones = orderedCounts(durations, durationOrderKey)
	report.DuracionesMensual = monthlyTop1(durations)
	return report, nil
}

func (i impl) Knowledge(year int) (reportapimodels.KnowledgeReport, error) {
	report := reportapimodels.KnowledgeReport{}

	soft, err := i.store.KnowledgeRows(models.KnowledgeKindSoft, year)
	if err != nil {
		return report, err
	}
	report.TopBlandasAnual = annualTop(soft, defaultTopN)
	report.TopBlandasMensual = monthlyTop1(soft)

	tech, err := i.store.KnowledgeRows(models.KnowledgeKindTechnical, year)
	if err != nil {
		return report, err
	}
	report.TopTecnicasAnual = annualTop(tech, defaultTopN)
	report.TopTecnicasMensual = monthlyTop1(tech)

	tools, err := i.store.KnowledgeRows(models.KnowledgeKindTool, year)
	if err != nil {
		return report, err
	}
	report.TopHerramientasAnual = annualTop(tools, defaultTopN)
	report.TopHerramientasMensual = monthlyTop1(tools)
	return report, nil
}

func (i impl) Preferences(year int) (reportapimodels.PreferencesReport, error) {
	report := reportapimodels.PreferencesReport{}

	availabilities, err := i.store.AvailabilityRows(year)
	if err != nil {
		return report, err
	}
	report.TopDisponibilidadesAnual = annualTop(availabilities, defaultTopN)
	report.TopDisponibilidadesMensual = monthlyTop1(availabilities)

	salaries, err := i.store.SalaryRangeRows(year)
	if err != nil {
		return report, err
	}
	report.TopRangosSalarialesAnual = annualTop(salaries, 0)
	report.TopRangosSalarialesMensual = monthlyTop1(salaries)

	motives, err := i.store.ExitMotiveRows(year)
	if err != nil {
		return report, err
	}
	// los motivos de salida se devuelven completos, como los rangos y los
	// booleanos
	report.TopMotivosSalidaAnual = annualTop(motives, 0)
	report.TopMotivosSalidaMensual = monthlyTop1(motives)

	travel, err := i.store.BoolPreferenceRows("dispuesto_viajar", year)
	if err != nil {
		return report, err
	}
	report.DispuestoViajar = annualTop(travel, 0)
	report.DispuestoViajarMensual = monthlyTop1YesNo(travel)

	working, err := i.store.BoolPreferenceRows("trabaja_actualmente", year)
	if err != nil {
		return report, err
	}
	report.TrabajaActualmente = annualTop(working, 0)
	report.TrabajaActualmenteMensual = monthlyTop1YesNo(working)
	return report, nil
}

func (i impl) Process(year int) (reportapimodels.ProcessReport, error) {
	report := reportapimodels.ProcessReport{}

	perMonth, err := i.store.RegistrationsPerMonth(year)
	if err != nil {
		return report, err
	}
	report.CandidatosPorMes = perMonth

	statuses, err := i.store.StatusRows(year)
	if err != nil {
		return report, err
	}
	report.TopEstadosAnual = annualTop(statuses, 0)
	report.TopEstadosMensual = monthlyTop1(statuses)
	return report, nil
}

func (i impl) Years() ([]int, error) {
	return i.store.YearsAvailable()
}
