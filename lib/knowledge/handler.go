package knowledge

import (
	"github.com/pkg/errors"

	"talento-backend/db"
	candidatestore "talento-backend/lib/candidate/store"
	knowledgestore "talento-backend/lib/knowledge/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	CreateBatch(candidatoID uint, data candidateapimodels.KnowledgeBatchData) ([]candidateapimodels.KnowledgeView, error)
	ListByCandidate(candidatoID uint) ([]candidateapimodels.KnowledgeView, error)
	Delete(id uint) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          knowledgestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          knowledgestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) CreateBatch(candidatoID uint, data candidateapimodels.KnowledgeBatchData) ([]candidateapimodels.KnowledgeView, error) {
	if len(data.Conocimientos) == 0 {
		return nil, errors.Wrap(models.ErrValidation, "el lote de conocimientos está vacío")
	}
	candidate, err := i.candidateStore.GetByID(candidatoID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.Wrap(models.ErrNotFound, "candidato")
	}
	recs := make([]dbmodels.Knowledge, 0, len(data.Conocimientos))
	for _, item := range data.Conocimientos {
		rec := dbmodels.Knowledge{
			CandidatoID:        candidatoID,
			Tipo:               item.Tipo,
			HabilidadBlandaID:  item.HabilidadBlandaID,
			HabilidadTecnicaID: item.HabilidadTecnicaID,
			HerramientaID:      item.HerramientaID,
		}
		// Ref valida la exclusividad antes de tocar la base.
		if _, err := rec.Ref(); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	created, err := i.store.CreateBatch(recs)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.KnowledgeView, 0, len(created))
	for _, rec := range created {
		result = append(result, candidateapimodels.KnowledgeConvert(rec))
	}
	return result, nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]candidateapimodels.KnowledgeView, error) {
	rows, err := i.store.ListByCandidate(candidatoID)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.KnowledgeView, 0, len(rows))
	for _, row := range rows {
		result = append(result, candidateapimodels.KnowledgeConvert(row))
	}
	return result, nil
}

func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}
