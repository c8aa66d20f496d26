package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "talento-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("ejecutando migraciones")
	// primero los catálogos: el agregado los referencia por FK
	catalogs := []interface{}{
		&dbmodels.Departamento{},
		&dbmodels.Ciudad{},
		&dbmodels.CargoOfrecido{},
		&dbmodels.NivelEducativo{},
		&dbmodels.Titulo{},
		&dbmodels.Institucion{},
		&dbmodels.NivelIngles{},
		&dbmodels.RangoExperiencia{},
		&dbmodels.HabilidadBlanda{},
		&dbmodels.HabilidadTecnica{},
		&dbmodels.Herramienta{},
		&dbmodels.RangoSalarial{},
		&dbmodels.Disponibilidad{},
		&dbmodels.MotivoSalida{},
		&dbmodels.CentroCostos{},
	}
	for _, model := range catalogs {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrap(err, "error migrando catálogos")
		}
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Education{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura Education")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkExperience{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura WorkExperience")
	}
	if err := DB.AutoMigrate(&dbmodels.Knowledge{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura Knowledge")
	}
	if err := DB.AutoMigrate(&dbmodels.Preferences{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura Preferences")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura User")
	}
	if err := DB.AutoMigrate(&dbmodels.DeletionRequest{}); err != nil {
		return errors.Wrap(err, "error migrando la estructura DeletionRequest")
	}
	log.Info("migración completada")
	return nil
}
