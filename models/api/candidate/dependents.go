package candidateapimodels

import (
	"time"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type EducationData struct {
	CandidatoID      uint    `json:"candidato_id"`
	NivelEducativoID uint    `json:"nivel_educativo_id"`
	TituloID         *uint   `json:"titulo_id"`
	OtroTitulo       *string `json:"otro_titulo"`
	InstitucionID    *uint   `json:"institucion_id"`
	OtraInstitucion  *string `json:"otra_institucion"`
	AnioGraduacion   *int    `json:"anio_graduacion"`
	NivelInglesID    uint    `json:"nivel_ingles_id"`
}

type EducationView struct {
	EducationData
	ID uint `json:"id"`
}

func EducationConvert(rec dbmodels.Education) EducationView {
	return EducationView{
		EducationData: EducationData{
			CandidatoID:      rec.CandidatoID,
			NivelEducativoID: rec.NivelEducativoID,
			TituloID:         rec.TituloID,
			OtroTitulo:       rec.OtroTitulo,
			InstitucionID:    rec.InstitucionID,
			OtraInstitucion:  rec.OtraInstitucion,
			AnioGraduacion:   rec.AnioGraduacion,
			NivelInglesID:    rec.NivelInglesID,
		},
		ID: rec.ID,
	}
}

type ExperienceData struct {
	CandidatoID        uint    `json:"candidato_id"`
	RangoExperienciaID uint    `json:"rango_experiencia_id"`
	UltimaEmpresa      string  `json:"ultima_empresa"`
	UltimoCargo        string  `json:"ultimo_cargo"`
	Responsabilidades  string  `json:"responsabilidades"`
	FechaInicio        string  `json:"fecha_inicio"` // yyyy-mm-dd
	FechaFin           *string `json:"fecha_fin"`    // null = empleo actual
}

type ExperienceView struct {
	ExperienceData
	ID uint `json:"id"`
}

func ExperienceConvert(rec dbmodels.WorkExperience) ExperienceView {
	var fin *string
	if rec.FechaFin != nil {
		v := rec.FechaFin.Format(DateLayout)
		fin = &v
	}
	return ExperienceView{
		ExperienceData: ExperienceData{
			CandidatoID:        rec.CandidatoID,
			RangoExperienciaID: rec.RangoExperienciaID,
			UltimaEmpresa:      rec.UltimaEmpresa,
			UltimoCargo:        rec.UltimoCargo,
			Responsabilidades:  rec.Responsabilidades,
			FechaInicio:        rec.FechaInicio.Format(DateLayout),
			FechaFin:           fin,
		},
		ID: rec.ID,
	}
}

type KnowledgeData struct {
	CandidatoID        uint                 `json:"candidato_id"`
	Tipo               models.KnowledgeKind `json:"tipo"`
	HabilidadBlandaID  *uint                `json:"habilidad_blanda_id"`
	HabilidadTecnicaID *uint                `json:"habilidad_tecnica_id"`
	HerramientaID      *uint                `json:"herramienta_id"`
}

type KnowledgeBatchData struct {
	Conocimientos []KnowledgeData `json:"conocimientos"`
}

type KnowledgeView struct {
	KnowledgeData
	ID uint `json:"id"`
}

func KnowledgeConvert(rec dbmodels.Knowledge) KnowledgeView {
	return KnowledgeView{
		KnowledgeData: KnowledgeData{
			CandidatoID:        rec.CandidatoID,
			Tipo:               rec.Tipo,
			HabilidadBlandaID:  rec.HabilidadBlandaID,
			HabilidadTecnicaID: rec.HabilidadTecnicaID,
			HerramientaID:      rec.HerramientaID,
		},
		ID: rec.ID,
	}
}

type PreferencesData struct {
	CandidatoID        uint   `json:"candidato_id"`
	DispuestoViajar    bool   `json:"dispuesto_viajar"`
	DisponibilidadID   uint   `json:"disponibilidad_id"`
	RangoSalarialID    uint   `json:"rango_salarial_id"`
	TrabajaActualmente bool   `json:"trabaja_actualmente"`
	MotivoSalidaID     *uint  `json:"motivo_salida_id"`
	Razon              string `json:"razon"`
}

type PreferencesView struct {
	PreferencesData
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func PreferencesConvert(rec dbmodels.Preferences) PreferencesView {
	return PreferencesView{
		PreferencesData: PreferencesData{
			CandidatoID:        rec.CandidatoID,
			DispuestoViajar:    rec.DispuestoViajar,
			DisponibilidadID:   rec.DisponibilidadID,
			RangoSalarialID:    rec.RangoSalarialID,
			TrabajaActualmente: rec.TrabajaActualmente,
			MotivoSalidaID:     rec.MotivoSalidaID,
			Razon:              rec.Razon,
		},
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	}
}
