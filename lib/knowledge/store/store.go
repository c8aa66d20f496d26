package knowledgestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.Knowledge) ([]dbmodels.Knowledge, error)
	ListByCandidate(candidatoID uint) ([]dbmodels.Knowledge, error)
	Delete(id uint) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CreateBatch inserta el lote en una transacción: o entran todas las filas
// o ninguna.
func (i impl) CreateBatch(recs []dbmodels.Knowledge) ([]dbmodels.Knowledge, error) {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		for idx := range recs {
			if err := tx.Create(&recs[idx]).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return errors.Wrap(models.ErrValidation, "referencia de habilidad inexistente")
				}
				return errors.Wrap(err, "error guardando el conocimiento")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]dbmodels.Knowledge, error) {
	var rows []dbmodels.Knowledge
	err := i.db.
		Where("candidato_id = ?", candidatoID).
		Order("id asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los conocimientos")
	}
	return rows, nil
}

func (i impl) Delete(id uint) error {
	tx := i.db.Delete(&dbmodels.Knowledge{}, id)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "error eliminando el conocimiento")
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
