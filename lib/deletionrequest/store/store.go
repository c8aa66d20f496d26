package drstore

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	drapimodels "talento-backend/models/api/deletionrequest"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DeletionRequest) (dbmodels.DeletionRequest, error)
	GetByID(id uint) (*dbmodels.DeletionRequest, error)
	List(filter drapimodels.Filter) ([]dbmodels.DeletionRequest, int64, error)
	Update(id uint, updMap map[string]interface{}) error
	CountByColumn(column string) (map[string]int64, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DeletionRequest) (dbmodels.DeletionRequest, error) {
	rec.Estado = models.RequestStatePending
	rec.FechaSolicitud = time.Now().UTC()
	err := i.db.Create(&rec).Error
	if err != nil {
		return dbmodels.DeletionRequest{}, errors.Wrap(err, "error guardando la solicitud")
	}
	return rec, nil
}

func (i impl) GetByID(id uint) (*dbmodels.DeletionRequest, error) {
	rec := dbmodels.DeletionRequest{}
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error consultando la solicitud")
	}
	return &rec, nil
}

func (i impl) List(filter drapimodels.Filter) ([]dbmodels.DeletionRequest, int64, error) {
	query := i.db.Model(&dbmodels.DeletionRequest{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("nombre_completo ILIKE ? OR cedula LIKE ? OR email ILIKE ?", like, like, like)
	}
	if filter.State != "" {
		query = query.Where("estado = ?", filter.State)
	}
	if filter.Year > 0 {
		query = query.Where("EXTRACT(YEAR FROM fecha_solicitud) = ?", filter.Year)
	}
	if filter.Month > 0 {
		query = query.Where("EXTRACT(MONTH FROM fecha_solicitud) = ?", filter.Month)
	}
	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "error contando las solicitudes")
	}
	var rows []dbmodels.DeletionRequest
	err = query.
		Order("fecha_solicitud desc").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "error consultando las solicitudes")
	}
	return rows, total, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.DeletionRequest{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "error actualizando la solicitud")
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CountByColumn agrupa por estado o motivo; la columna viene de una lista
// cerrada interna.
func (i impl) CountByColumn(column string) (map[string]int64, error) {
	type row struct {
		Clave string
		Total int64
	}
	var rows []row
	err := i.db.
		Model(&dbmodels.DeletionRequest{}).
		Select(fmt.Sprintf("%s AS clave, COUNT(*) AS total", column)).
		Group("clave").
		Scan(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error agrupando las solicitudes")
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Clave] = r.Total
	}
	return result, nil
}

func (i impl) Count() (int64, error) {
	var total int64
	err := i.db.Model(&dbmodels.DeletionRequest{}).Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "error contando las solicitudes")
	}
	return total, nil
}
