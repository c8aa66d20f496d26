package dictstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type Provider[T dbmodels.CatalogEntry] interface {
	List(search string) ([]T, error)
	Create(rec T) (uint, error)
	GetByID(id uint) (*T, error)
	Update(id uint, updMap map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
	IsUnique(selfID uint, nombre string) (bool, error)
}

func NewInstance[T dbmodels.CatalogEntry](DB *gorm.DB) Provider[T] {
	return &impl[T]{
		db: DB,
	}
}

type impl[T dbmodels.CatalogEntry] struct {
	db *gorm.DB
}

func (i impl[T]) List(search string) ([]T, error) {
	var result []T
	var model T
	tx := i.db.Model(&model)
	if search != "" {
		tx.Where("LOWER(nombre) like ?", "%"+strings.ToLower(search)+"%")
	}
	err := tx.Find(&result).Error
	if err != nil {
		return nil, errors.Wrapf(err, "error consultando el catálogo %s", model.TableName())
	}
	return result, nil
}

func (i impl[T]) Create(rec T) (uint, error) {
	var model T
	err := i.db.Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.Wrap(models.ErrConflict, "nombre")
		}
		return 0, errors.Wrapf(err, "error creando la entrada en %s", model.TableName())
	}
	return rec.EntryID(), nil
}

func (i impl[T]) GetByID(id uint) (*T, error) {
	var rec T
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl[T]) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	var model T
	tx := i.db.
		Model(&model).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return errors.Wrapf(tx.Error, "error actualizando la entrada en %s", model.TableName())
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl[T]) Delete(id uint) error {
	var model T
	tx := i.db.Delete(&model, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
			return errors.Wrap(models.ErrConflict, "la entrada está referenciada por candidatos")
		}
		return errors.Wrapf(tx.Error, "error eliminando la entrada en %s", model.TableName())
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl[T]) Count() (int64, error) {
	var model T
	var rowCount int64
	err := i.db.Model(&model).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrapf(err, "error contando el catálogo %s", model.TableName())
	}
	return rowCount, nil
}

func (i impl[T]) IsUnique(selfID uint, nombre string) (bool, error) {
	var model T
	var rowCount int64
	tx := i.db.Model(&model)
	tx.Where("LOWER(nombre) = ?", strings.ToLower(nombre))
	if selfID != 0 {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrapf(err, "error verificando unicidad en %s", model.TableName())
	}
	return rowCount == 0, nil
}
