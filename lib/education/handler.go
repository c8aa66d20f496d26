package education

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"talento-backend/db"
	candidatestore "talento-backend/lib/candidate/store"
	educationstore "talento-backend/lib/education/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.EducationData) (candidateapimodels.EducationView, error)
	ListByCandidate(candidatoID uint) ([]candidateapimodels.EducationView, error)
	Delete(id uint) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          educationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          educationstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(data candidateapimodels.EducationData) (candidateapimodels.EducationView, error) {
	if err := validate(data); err != nil {
		return candidateapimodels.EducationView{}, err
	}
	candidate, err := i.candidateStore.GetByID(data.CandidatoID)
	if err != nil {
		return candidateapimodels.EducationView{}, err
	}
	if candidate == nil {
		return candidateapimodels.EducationView{}, errors.Wrap(models.ErrNotFound, "candidato")
	}
	rec := dbmodels.Education{
		CandidatoID:      data.CandidatoID,
		NivelEducativoID: data.NivelEducativoID,
		TituloID:         data.TituloID,
		OtroTitulo:       normalizeOther(data.OtroTitulo),
		InstitucionID:    data.InstitucionID,
		OtraInstitucion:  normalizeOther(data.OtraInstitucion),
		AnioGraduacion:   data.AnioGraduacion,
		NivelInglesID:    data.NivelInglesID,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		return candidateapimodels.EducationView{}, err
	}
	return candidateapimodels.EducationConvert(created), nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]candidateapimodels.EducationView, error) {
	rows, err := i.store.ListByCandidate(candidatoID)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.EducationView, 0, len(rows))
	for _, row := range rows {
		result = append(result, candidateapimodels.EducationConvert(row))
	}
	return result, nil
}

func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}

func validate(data candidateapimodels.EducationData) error {
	if data.CandidatoID == 0 {
		return errors.Wrap(models.ErrValidation, "falta el candidato")
	}
	if data.NivelEducativoID == 0 {
		return errors.Wrap(models.ErrValidation, "falta el nivel educativo")
	}
	if data.NivelInglesID == 0 {
		return errors.Wrap(models.ErrValidation, "falta el nivel de inglés")
	}
	// Exactamente una de las dos formas: referencia de catálogo o texto libre.
	if err := validateEither("el título", data.TituloID, data.OtroTitulo); err != nil {
		return err
	}
	if err := validateEither("la institución", data.InstitucionID, data.OtraInstitucion); err != nil {
		return err
	}
	if data.AnioGraduacion != nil {
		year := *data.AnioGraduacion
		if year < 1950 || year > time.Now().UTC().Year() {
			return errors.Wrapf(models.ErrValidation, "año de graduación fuera de rango: %d", year)
		}
	}
	return nil
}

func validateEither(label string, refID *uint, other *string) error {
	hasRef := refID != nil && *refID != 0
	hasOther := normalizeOther(other) != nil
	if hasRef == hasOther {
		return errors.Wrapf(models.ErrValidation, "%s debe venir del catálogo o como texto libre, no ambos", label)
	}
	return nil
}

func normalizeOther(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
