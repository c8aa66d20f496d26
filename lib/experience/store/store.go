package experiencestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkExperience) (dbmodels.WorkExperience, error)
	ListByCandidate(candidatoID uint) ([]dbmodels.WorkExperience, error)
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

func (i impl) Create(rec dbmodels.WorkExperience) (dbmodels.WorkExperience, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dbmodels.WorkExperience{}, errors.Wrap(models.ErrValidation, "referencia de catálogo inexistente")
		}
		return dbmodels.WorkExperience{}, errors.Wrap(err, "error guardando la experiencia")
	}
	return rec, nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]dbmodels.WorkExperience, error) {
	var rows []dbmodels.WorkExperience
	err := i.db.
		Where("candidato_id = ?", candidatoID).
		Order("id asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las experiencias")
	}
	return rows, nil
}

func (i impl) Delete(id uint) error {
	tx := i.db.Delete(&dbmodels.WorkExperience{}, id)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "error eliminando la experiencia")
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
