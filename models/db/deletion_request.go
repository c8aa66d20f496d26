package dbmodels

import (
	"time"

	"talento-backend/models"
)

type DeletionRequest struct {
	BaseModel
	NombreCompleto string               `gorm:"type:varchar(255);not null"`
	Cedula         string               `gorm:"type:varchar(10);not null"`
	Email          string               `gorm:"type:varchar(255);not null"`
	Motivo         models.RequestMotive `gorm:"type:varchar(30);not null"`
	Estado         models.RequestState  `gorm:"type:varchar(10);not null;default:'pending'"`
	Nota           string               `gorm:"type:text"`
	// FechaSolicitud se estampa al crear y no cambia con la moderación.
	FechaSolicitud time.Time `gorm:"index;not null"`
}

func (DeletionRequest) TableName() string { return "solicitudes_eliminacion" }
