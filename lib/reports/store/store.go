package reportstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	reportapimodels "talento-backend/models/api/report"
)

// Row es el agregado crudo (etiqueta, mes, total) que las consultas GROUP BY
// devuelven; los pliegues anual/mensual viven en el handler.
type Row struct {
	Etiqueta string
	Mes      int
	Total    int64
}

// DateRow expone fechas crudas por mes de registro para los agregados que se
// calculan en memoria (edades, duraciones).
type DateRow struct {
	Fecha time.Time
	Fin   *time.Time
	Mes   int
}

type Provider interface {
	CityRows(year int) ([]Row, error)
	JobRows(year int) ([]Row, error)
	ReferrerRows(year int) ([]Row, error)
	StatusRows(year int) ([]Row, error)
	BirthDateRows(year int) ([]DateRow, error)
	Counters(year int) (reportapimodels.PersonalCounters, error)
	RegistrationsPerMonth(year int) ([]reportapimodels.MonthCount, error)

	EducationLevelRows(year int) ([]Row, error)
	TitleRows(year int) ([]Row, error)
	InstitutionRows(year int) ([]Row, error)
	EnglishLevelRows(year int) ([]Row, error)
	// GraduationYearRows no recibe año: la distribución de años de
	// graduación es histórica siempre.
	GraduationYearRows() ([]Row, error)

	ExperienceRangeRows(year int) ([]Row, error)
	LastJobRows(year int) ([]Row, error)
	CompanyRows(year int) ([]Row, error)
	ExperienceDateRows(year int) ([]DateRow, error)

	KnowledgeRows(kind models.KnowledgeKind, year int) ([]Row, error)

	AvailabilityRows(year int) ([]Row, error)
	SalaryRangeRows(year int) ([]Row, error)
	ExitMotiveRows(year int) ([]Row, error)
	BoolPreferenceRows(column string, year int) ([]Row, error)

	YearsAvailable() ([]int, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const monthExpr = "EXTRACT(MONTH FROM c.fecha_registro)::int"

func (i impl) scanRows(query *gorm.DB, year int) ([]Row, error) {
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM c.fecha_registro) = ?", year)
	}
	var rows []Row
	err := query.
		Group("etiqueta, mes").
		Scan(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando el agregado")
	}
	return rows, nil
}

func (i impl) CityRows(year int) ([]Row, error) {
	query := i.db.
		Table("candidatos c").
		Select("ci.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN ciudades ci ON ci.id = c.ciudad_id")
	return i.scanRows(query, year)
}

func (i impl) JobRows(year int) ([]Row, error) {
	query := i.db.
		Table("candidatos c").
		Select("ca.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN cargos_ofrecidos ca ON ca.id = c.cargo_ofrecido_id")
	return i.scanRows(query, year)
}

func (i impl) ReferrerRows(year int) ([]Row, error) {
	query := i.db.
		Table("candidatos c").
		Select("c.nombre_referido AS etiqueta, " + monthExpr + " AS mes, COUNT(*) AS total").
		Where("c.tiene_referido AND c.nombre_referido <> ''")
	return i.scanRows(query, year)
}

func (i impl) StatusRows(year int) ([]Row, error) {
	query := i.db.
		Table("candidatos c").
		Select("c.estado AS etiqueta, " + monthExpr + " AS mes, COUNT(*) AS total")
	return i.scanRows(query, year)
}

func (i impl) BirthDateRows(year int) ([]DateRow, error) {
	query := i.db.
		Table("candidatos c").
		Select("c.fecha_nacimiento AS fecha, " + monthExpr + " AS mes")
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM c.fecha_registro) = ?", year)
	}
	var rows []DateRow
	err := query.Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las fechas de nacimiento")
	}
	return rows, nil
}

func (i impl) Counters(year int) (reportapimodels.PersonalCounters, error) {
	query := i.db.
		Table("candidatos c").
		Select(`COUNT(*) FILTER (WHERE c.tiene_referido) AS con_referido,
			COUNT(*) FILTER (WHERE NOT c.tiene_referido) AS sin_referido,
			COUNT(*) FILTER (WHERE c.formulario_completo) AS formulario_completo,
			COUNT(*) FILTER (WHERE NOT c.formulario_completo) AS formulario_incompleto,
			COUNT(*) FILTER (WHERE c.trabaja_actualmente_aqui) AS trabaja_actualmente_aqui,
			COUNT(*) FILTER (WHERE c.ha_trabajado_aqui) AS ha_trabajado_aqui`)
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM c.fecha_registro) = ?", year)
	}
	result := reportapimodels.PersonalCounters{}
	err := query.Scan(&result).Error
	if err != nil {
		return reportapimodels.PersonalCounters{}, errors.Wrap(err, "error consultando los contadores")
	}
	return result, nil
}

func (i impl) RegistrationsPerMonth(year int) ([]reportapimodels.MonthCount, error) {
	query := i.db.
		Table("candidatos c").
		Select(monthExpr + " AS mes, COUNT(*) AS total")
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM c.fecha_registro) = ?", year)
	}
	var rows []reportapimodels.MonthCount
	err := query.
		Group("mes").
		Order("mes asc").
		Scan(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los registros por mes")
	}
	return rows, nil
}

func (i impl) EducationLevelRows(year int) ([]Row, error) {
	query := i.db.
		Table("educaciones e").
		Select("n.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Joins("JOIN niveles_educativos n ON n.id = e.nivel_educativo_id")
	return i.scanRows(query, year)
}

func (i impl) TitleRows(year int) ([]Row, error) {
	query := i.db.
		Table("educaciones e").
		Select("COALESCE(t.nombre, e.otro_titulo) AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Joins("LEFT JOIN titulos t ON t.id = e.titulo_id").
		Where("COALESCE(t.nombre, e.otro_titulo) IS NOT NULL")
	return i.scanRows(query, year)
}

func (i impl) InstitutionRows(year int) ([]Row, error) {
	query := i.db.
		Table("educaciones e").
		Select("COALESCE(inst.nombre, e.otra_institucion) AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Joins("LEFT JOIN instituciones inst ON inst.id = e.institucion_id").
		Where("COALESCE(inst.nombre, e.otra_institucion) IS NOT NULL")
	return i.scanRows(query, year)
}

func (i impl) EnglishLevelRows(year int) ([]Row, error) {
	query := i.db.
		Table("educaciones e").
		Select("n.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Joins("JOIN niveles_ingles n ON n.id = e.nivel_ingles_id")
	return i.scanRows(query, year)
}

func (i impl) GraduationYearRows() ([]Row, error) {
	query := i.db.
		Table("educaciones e").
		Select("e.anio_graduacion::text AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Where("e.anio_graduacion IS NOT NULL")
	return i.scanRows(query, 0)
}

func (i impl) ExperienceRangeRows(year int) ([]Row, error) {
	query := i.db.
		Table("experiencias_laborales e").
		Select("r.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Joins("JOIN rangos_experiencia r ON r.id = e.rango_experiencia_id")
	return i.scanRows(query, year)
}

func (i impl) LastJobRows(year int) ([]Row, error) {
	query := i.db.
		Table("experiencias_laborales e").
		Select("e.ultimo_cargo AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Where("e.ultimo_cargo <> ''")
	return i.scanRows(query, year)
}

func (i impl) CompanyRows(year int) ([]Row, error) {
	query := i.db.
		Table("experiencias_laborales e").
		Select("e.ultima_empresa AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = e.candidato_id").
		Where("e.ultima_empresa <> ''")
	return i.scanRows(query, year)
}

func (i impl) ExperienceDateRows(year int) ([]DateRow, error) {
	query := i.db.
		Table("experiencias_laborales e").
		Select("e.fecha_inicio AS fecha, e.fecha_fin AS fin, "+monthExpr+" AS mes").
		Joins("JOIN candidatos c ON c.id = e.candidato_id")
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM c.fecha_registro) = ?", year)
	}
	var rows []DateRow
	err := query.Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las duraciones")
	}
	return rows, nil
}

func (i impl) KnowledgeRows(kind models.KnowledgeKind, year int) ([]Row, error) {
	var join, label string
	switch kind {
	case models.KnowledgeKindSoft:
		join = "JOIN habilidades_blandas h ON h.id = k.habilidad_blanda_id"
		label = "h.nombre"
	case models.KnowledgeKindTechnical:
		join = "JOIN habilidades_tecnicas h ON h.id = k.habilidad_tecnica_id"
		label = "h.nombre"
	case models.KnowledgeKindTool:
		join = "JOIN herramientas h ON h.id = k.herramienta_id"
		label = "h.nombre"
	default:
		return nil, errors.Wrapf(models.ErrValidation, "tipo de conocimiento desconocido: %q", kind)
	}
	query := i.db.
		Table("conocimientos k").
		Select(label+" AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = k.candidato_id").
		Joins(join)
	return i.scanRows(query, year)
}

func (i impl) AvailabilityRows(year int) ([]Row, error) {
	query := i.db.
		Table("preferencias p").
		Select("d.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = p.candidato_id").
		Joins("JOIN disponibilidades d ON d.id = p.disponibilidad_id")
	return i.scanRows(query, year)
}

func (i impl) SalaryRangeRows(year int) ([]Row, error) {
	query := i.db.
		Table("preferencias p").
		Select("r.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = p.candidato_id").
		Joins("JOIN rangos_salariales r ON r.id = p.rango_salarial_id")
	return i.scanRows(query, year)
}

func (i impl) ExitMotiveRows(year int) ([]Row, error) {
	query := i.db.
		Table("preferencias p").
		Select("m.nombre AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = p.candidato_id").
		Joins("JOIN motivos_salida m ON m.id = p.motivo_salida_id")
	return i.scanRows(query, year)
}

// BoolPreferenceRows agrega una columna booleana de preferencias como
// etiquetas si/no. La columna viene de una lista cerrada interna, nunca de
// entrada del usuario.
func (i impl) BoolPreferenceRows(column string, year int) ([]Row, error) {
	query := i.db.
		Table("preferencias p").
		Select("CASE WHEN p."+column+" THEN 'si' ELSE 'no' END AS etiqueta, "+monthExpr+" AS mes, COUNT(*) AS total").
		Joins("JOIN candidatos c ON c.id = p.candidato_id")
	return i.scanRows(query, year)
}

func (i impl) YearsAvailable() ([]int, error) {
	var years []int
	err := i.db.
		Table("candidatos").
		Select("DISTINCT EXTRACT(YEAR FROM fecha_registro)::int AS anio").
		Order("anio asc").
		Pluck("anio", &years).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los años disponibles")
	}
	return years, nil
}
