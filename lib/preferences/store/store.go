package preferencesstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.Preferences) (dbmodels.Preferences, error)
	GetByCandidate(candidatoID uint) (*dbmodels.Preferences, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert mantiene a lo sumo una fila de preferencias por candidato.
func (i impl) Upsert(rec dbmodels.Preferences) (dbmodels.Preferences, error) {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "candidato_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"dispuesto_viajar",
				"disponibilidad_id",
				"rango_salarial_id",
				"trabaja_actualmente",
				"motivo_salida_id",
				"razon",
				"updated_at",
			}),
		}).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return dbmodels.Preferences{}, errors.Wrap(err, "error guardando las preferencias")
	}
	saved, err := i.GetByCandidate(rec.CandidatoID)
	if err != nil {
		return dbmodels.Preferences{}, err
	}
	if saved == nil {
		return dbmodels.Preferences{}, errors.New("las preferencias no quedaron persistidas")
	}
	return *saved, nil
}

func (i impl) GetByCandidate(candidatoID uint) (*dbmodels.Preferences, error) {
	rec := dbmodels.Preferences{}
	err := i.db.
		Where("candidato_id = ?", candidatoID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error consultando las preferencias")
	}
	return &rec, nil
}
