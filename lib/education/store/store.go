package educationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Education) (dbmodels.Education, error)
	ListByCandidate(candidatoID uint) ([]dbmodels.Education, error)
	GetByID(id uint) (*dbmodels.Education, error)
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

func (i impl) Create(rec dbmodels.Education) (dbmodels.Education, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dbmodels.Education{}, errors.Wrap(models.ErrValidation, "referencia de catálogo inexistente")
		}
		return dbmodels.Education{}, errors.Wrap(err, "error guardando la educación")
	}
	return rec, nil
}

func (i impl) ListByCandidate(candidatoID uint) ([]dbmodels.Education, error) {
	var rows []dbmodels.Education
	err := i.db.
		Where("candidato_id = ?", candidatoID).
		Order("id asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las educaciones")
	}
	return rows, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Education, error) {
	rec := dbmodels.Education{}
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error consultando la educación")
	}
	return &rec, nil
}

func (i impl) Delete(id uint) error {
	tx := i.db.Delete(&dbmodels.Education{}, id)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "error eliminando la educación")
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
