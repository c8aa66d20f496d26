package dbmodels

import (
	"github.com/pkg/errors"

	"talento-backend/models"
)

// Knowledge persiste el discriminador más tres FKs anulables; en memoria el
// dominio trabaja con KnowledgeRef (suma etiquetada). NewKnowledge y Ref son
// el único punto de mapeo entre ambas representaciones.
type Knowledge struct {
	BaseModel
	CandidatoID        uint                 `gorm:"index;not null"`
	Tipo               models.KnowledgeKind `gorm:"type:varchar(10);not null"`
	HabilidadBlandaID  *uint
	HabilidadBlanda    *HabilidadBlanda `gorm:"foreignKey:HabilidadBlandaID"`
	HabilidadTecnicaID *uint
	HabilidadTecnica   *HabilidadTecnica `gorm:"foreignKey:HabilidadTecnicaID"`
	HerramientaID      *uint
	Herramienta        *Herramienta `gorm:"foreignKey:HerramientaID"`
}

func (Knowledge) TableName() string { return "conocimientos" }

// KnowledgeRef es la representación en memoria: el tipo más su única FK.
type KnowledgeRef struct {
	Kind  models.KnowledgeKind
	RefID uint
}

// NewKnowledge construye la fila con exactamente una FK acorde al tipo.
func NewKnowledge(candidatoID uint, ref KnowledgeRef) (Knowledge, error) {
	if !ref.Kind.IsValid() {
		return Knowledge{}, errors.Wrapf(models.ErrValidation, "tipo de conocimiento desconocido: %q", ref.Kind)
	}
	if ref.RefID == 0 {
		return Knowledge{}, errors.Wrap(models.ErrValidation, "falta la referencia de la habilidad")
	}
	rec := Knowledge{
		CandidatoID: candidatoID,
		Tipo:        ref.Kind,
	}
	id := ref.RefID
	switch ref.Kind {
	case models.KnowledgeKindSoft:
		rec.HabilidadBlandaID = &id
	case models.KnowledgeKindTechnical:
		rec.HabilidadTecnicaID = &id
	case models.KnowledgeKindTool:
		rec.HerramientaID = &id
	}
	return rec, nil
}

// Ref valida la exclusividad (una sola FK presente y acorde al tipo) y
// devuelve la suma en memoria.
func (k Knowledge) Ref() (KnowledgeRef, error) {
	set := 0
	var refID *uint
	for _, fk := range []*uint{k.HabilidadBlandaID, k.HabilidadTecnicaID, k.HerramientaID} {
		if fk != nil {
			set++
			refID = fk
		}
	}
	if set != 1 {
		return KnowledgeRef{}, errors.Wrap(models.ErrValidation, "el conocimiento debe tener exactamente una habilidad")
	}
	var expected *uint
	switch k.Tipo {
	case models.KnowledgeKindSoft:
		expected = k.HabilidadBlandaID
	case models.KnowledgeKindTechnical:
		expected = k.HabilidadTecnicaID
	case models.KnowledgeKindTool:
		expected = k.HerramientaID
	default:
		return KnowledgeRef{}, errors.Wrapf(models.ErrValidation, "tipo de conocimiento desconocido: %q", k.Tipo)
	}
	if expected == nil {
		return KnowledgeRef{}, errors.Wrapf(models.ErrValidation, "la habilidad no corresponde al tipo %q", k.Tipo)
	}
	return KnowledgeRef{Kind: k.Tipo, RefID: *refID}, nil
}
