package experience

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"talento-backend/db"
	candidatestore "talento-backend/lib/candidate/store"
	experiencestore "talento-backend/lib/experience/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.ExperienceData) (candidateapimodels.ExperienceView, error)
	ListByCandidate(candidatoID uint) ([]candidateapimodels.ExperienceView, error)
	Delete(id uint) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          experiencestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          experiencestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(data candidateapimodels.ExperienceData) (candidateapimodels.ExperienceView, error) {
	rec, err := i.buildRecord(data)
	if err != nil {
		return candidateapimodels.ExperienceView{}, err
	}
	candidate, err := i.candidateStore.GetByID(data.CandidatoID)
	if err != nil {
		return candidateapimodels.ExperienceView{}, err
	}
	if candidate == nil {
		return candidateapimodels.ExperienceView{}, errors.Wrap(models.ErrNotFound, "candidato")
	}
	created, err := i.store.Create(rec)
	if err != nil {
		return candidateapimodels.ExperienceView{}, err
	}
	return candidateapimodels.ExperienceConvert(created), nil
}

func (i impl) buildRecord(data candidateapimodels.ExperienceData) (dbmodels.WorkExperience, error) {
	if data.CandidatoID == 0 {
		return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "falta el candidato")
	}
	if data.RangoExperienciaID == 0 {
		return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "falta el rango de experiencia")
	}
	if strings.TrimSpace(data.UltimaEmpresa) == "" {
		return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "falta la última empresa")
	}
	if strings.TrimSpace(data.UltimoCargo) == "" {
		return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "falta el último cargo")
	}
	inicio, err := time.Parse(candidateapimodels.DateLayout, data.FechaInicio)
	if err != nil {
		return dbmodels.WorkExperience{}, errors.Wrapf(models.ErrValidation, "fecha de inicio inválida: %q", data.FechaInicio)
	}
	rec := dbmodels.WorkExperience{
		CandidatoID:        data.CandidatoID,
		RangoExperienciaID: data.RangoExperienciaID,
		UltimaEmpresa:      data.UltimaEmpresa,
		UltimoCargo:        data.UltimoCargo,
		Responsabilidades:  data.Responsabilidades,
		FechaInicio:        inicio,
	}
	if data.FechaFin != nil && *data.FechaFin != "" {
		fin, err := time.Parse(candidateapimodels.DateLayout, *data.FechaFin)
		if err != nil {
			return dbmodels.WorkExperience{}, errors.Wrapf(models.ErrValidation, "fecha de fin inválida: %q", *data.FechaFin)
		}
		if fin.Before(inicio) {
			return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "la fecha de fin no puede ser anterior a la de inicio")
		}
		rec.FechaFin = &fin
	}
	return rec, nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]candidateapimodels.ExperienceView, error) {
	rows, err := i.store.ListByCandidate(candidatoID)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.ExperienceView, 0, len(rows))
	for _, row := range rows {
		result = append(result, candidateapimodels.ExperienceConvert(row))
	}
	return result, nil
}

func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}
