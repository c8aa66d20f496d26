package candidateapimodels

import (
	"time"

	"talento-backend/models"
	apimodels "talento-backend/models/api"
	dbmodels "talento-backend/models/db"
)

const DateLayout = "2006-01-02"

type CandidateData struct {
	NombreCompleto         string `json:"nombre_completo"`
	Email                  string `json:"email"`
	Cedula                 string `json:"cedula"`
	FechaNacimiento        string `json:"fecha_nacimiento"` // yyyy-mm-dd
	Telefono               string `json:"telefono"`
	CiudadID               uint   `json:"ciudad_id"`
	Perfil                 string `json:"perfil"`
	CargoOfrecidoID        uint   `json:"cargo_ofrecido_id"`
	TrabajaActualmenteAqui bool   `json:"trabaja_actualmente_aqui"`
	HaTrabajadoAqui        bool   `json:"ha_trabajado_aqui"`
	MotivoSalidaID         *uint  `json:"motivo_salida_id"`
	TieneReferido          bool   `json:"tiene_referido"`
	NombreReferido         string `json:"nombre_referido"`
}

// CandidateUpdateData muta sólo los campos presentes.
type CandidateUpdateData struct {
	NombreCompleto         *string `json:"nombre_completo"`
	Email                  *string `json:"email"`
	Cedula                 *string `json:"cedula"`
	FechaNacimiento        *string `json:"fecha_nacimiento"`
	Telefono               *string `json:"telefono"`
	CiudadID               *uint   `json:"ciudad_id"`
	Perfil                 *string `json:"perfil"`
	CargoOfrecidoID        *uint   `json:"cargo_ofrecido_id"`
	TrabajaActualmenteAqui *bool   `json:"trabaja_actualmente_aqui"`
	HaTrabajadoAqui        *bool   `json:"ha_trabajado_aqui"`
	MotivoSalidaID         *uint   `json:"motivo_salida_id"`
	TieneReferido          *bool   `json:"tiene_referido"`
	NombreReferido         *string `json:"nombre_referido"`
	Estado                 *string `json:"estado"`
}

type CandidateView struct {
	CandidateData
	ID                 uint                 `json:"id"`
	FechaRegistro      time.Time            `json:"fecha_registro"`
	Estado             models.ProcessStatus `json:"estado"`
	FormularioCompleto bool                 `json:"formulario_completo"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			NombreCompleto:         rec.NombreCompleto,
			Email:                  rec.Email,
			Cedula:                 rec.Cedula,
			FechaNacimiento:        rec.FechaNacimiento.Format(DateLayout),
			Telefono:               rec.Telefono,
			CiudadID:               rec.CiudadID,
			Perfil:                 rec.Perfil,
			CargoOfrecidoID:        rec.CargoOfrecidoID,
			TrabajaActualmenteAqui: rec.TrabajaActualmenteAqui,
			HaTrabajadoAqui:        rec.HaTrabajadoAqui,
			MotivoSalidaID:         rec.MotivoSalidaID,
			TieneReferido:          rec.TieneReferido,
			NombreReferido:         rec.NombreReferido,
		},
		ID:                 rec.ID,
		FechaRegistro:      rec.FechaRegistro,
		Estado:             rec.Estado,
		FormularioCompleto: rec.FormularioCompleto,
	}
}

// SummaryFilter son las opciones reconocidas por la grilla administrativa;
// todas se combinan con AND.
type SummaryFilter struct {
	apimodels.Pagination
	Search             string `json:"search" query:"search"`
	Status             string `json:"status" query:"status"`
	AvailabilityID     uint   `json:"availability_id" query:"availability_id"`
	JobID              uint   `json:"job_id" query:"job_id"`
	CityID             uint   `json:"city_id" query:"city_id"`
	ToolID             uint   `json:"tool_id" query:"tool_id"`
	TechSkillID        uint   `json:"tech_skill_id" query:"tech_skill_id"`
	EnglishLevelID     uint   `json:"english_level_id" query:"english_level_id"`
	TitleID            uint   `json:"title_id" query:"title_id"`
	ExperienceRangeID  uint   `json:"experience_range_id" query:"experience_range_id"`
	WorksHere          *bool  `json:"works_here" query:"works_here"`
	SortByDate         string `json:"sort_by_date" query:"sort_by_date"` // recent | old
	Year               int    `json:"year" query:"year"`                 // usado por la exportación
}

type SummaryView struct {
	ID                     uint                 `json:"id"`
	NombreCompleto         string               `json:"nombre_completo"`
	Email                  string               `json:"email"`
	Telefono               string               `json:"telefono"`
	Ciudad                 string               `json:"ciudad"`
	CargoOfrecido          string               `json:"cargo_ofrecido"`
	NivelEducativo         string               `json:"nivel_educativo,omitempty"`
	Titulo                 string               `json:"titulo,omitempty"`
	RangoExperiencia       string               `json:"rango_experiencia,omitempty"`
	HabilidadesBlandas     []string             `json:"habilidades_blandas"`
	HabilidadesTecnicas    []string             `json:"habilidades_tecnicas"`
	Herramientas           []string             `json:"herramientas"`
	Disponibilidad         string               `json:"disponibilidad,omitempty"`
	TrabajaActualmenteAqui bool                 `json:"trabaja_actualmente_aqui"`
	FechaRegistro          time.Time            `json:"fecha_registro"`
	Estado                 models.ProcessStatus `json:"estado"`
}

type EducationDetail struct {
	NivelEducativo string `json:"nivel_educativo"`
	Titulo         string `json:"titulo"`
	Institucion    string `json:"institucion"`
	AnioGraduacion *int   `json:"anio_graduacion"`
	NivelIngles    string `json:"nivel_ingles"`
}

type ExperienceDetail struct {
	RangoExperiencia  string  `json:"rango_experiencia"`
	UltimaEmpresa     string  `json:"ultima_empresa"`
	UltimoCargo       string  `json:"ultimo_cargo"`
	Responsabilidades string  `json:"responsabilidades"`
	FechaInicio       string  `json:"fecha_inicio"`
	FechaFin          *string `json:"fecha_fin"`
}

type PreferencesDetail struct {
	DispuestoViajar    bool   `json:"dispuesto_viajar"`
	Disponibilidad     string `json:"disponibilidad"`
	RangoSalarial      string `json:"rango_salarial"`
	TrabajaActualmente bool   `json:"trabaja_actualmente"`
	MotivoSalida       string `json:"motivo_salida,omitempty"`
	Razon              string `json:"razon"`
}

// DetailView es la proyección totalmente dereferenciada de un candidato;
// los sub-registros ausentes quedan en null.
type DetailView struct {
	CandidateView
	Ciudad              string             `json:"ciudad"`
	CargoOfrecidoNombre string             `json:"cargo_ofrecido"`
	MotivoSalida        string             `json:"motivo_salida,omitempty"`
	Educacion           *EducationDetail   `json:"educacion"`
	Experiencia         *ExperienceDetail  `json:"experiencia"`
	HabilidadesBlandas  []string           `json:"habilidades_blandas"`
	HabilidadesTecnicas []string           `json:"habilidades_tecnicas"`
	Herramientas        []string           `json:"herramientas"`
	Preferencias        *PreferencesDetail `json:"preferencias"`
}
