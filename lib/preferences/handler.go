package preferences

import (
	"github.com/pkg/errors"

	"talento-backend/db"
	candidatestore "talento-backend/lib/candidate/store"
	preferencesstore "talento-backend/lib/preferences/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Upsert(data candidateapimodels.PreferencesData) (candidateapimodels.PreferencesView, error)
	GetByCandidate(candidatoID uint) (candidateapimodels.PreferencesView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          preferencesstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          preferencesstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Upsert(data candidateapimodels.PreferencesData) (candidateapimodels.PreferencesView, error) {
	if data.CandidatoID == 0 {
		return candidateapimodels.PreferencesView{}, errors.Wrap(models.ErrValidation, "falta el candidato")
	}
	if data.DisponibilidadID == 0 {
		return candidateapimodels.PreferencesView{}, errors.Wrap(models.ErrValidation, "falta la disponibilidad")
	}
	if data.RangoSalarialID == 0 {
		return candidateapimodels.PreferencesView{}, errors.Wrap(models.ErrValidation, "falta el rango salarial")
	}
	candidate, err := i.candidateStore.GetByID(data.CandidatoID)
	if err != nil {
		return candidateapimodels.PreferencesView{}, err
	}
	if candidate == nil {
		return candidateapimodels.PreferencesView{}, errors.Wrap(models.ErrNotFound, "candidato")
	}
	rec := dbmodels.Preferences{
		CandidatoID:        data.CandidatoID,
		DispuestoViajar:    data.DispuestoViajar,
		DisponibilidadID:   data.DisponibilidadID,
		RangoSalarialID:    data.RangoSalarialID,
		TrabajaActualmente: data.TrabajaActualmente,
		MotivoSalidaID:     data.MotivoSalidaID,
		Razon:              data.Razon,
	}
	saved, err := i.store.Upsert(rec)
	if err != nil {
		return candidateapimodels.PreferencesView{}, err
	}
	return candidateapimodels.PreferencesConvert(saved), nil
}

func (i impl) GetByCandidate(candidatoID uint) (candidateapimodels.PreferencesView, error) {
	rec, err := i.store.GetByCandidate(candidatoID)
	if err != nil {
		return candidateapimodels.PreferencesView{}, err
	}
	if rec == nil {
		return candidateapimodels.PreferencesView{}, models.ErrNotFound
	}
	return candidateapimodels.PreferencesConvert(*rec), nil
}
