package dbmodels

import (
	"time"

	"talento-backend/models"
)

type Candidate struct {
	BaseModel
	NombreCompleto         string               `gorm:"type:varchar(255);not null"`
	Email                  string               `gorm:"type:varchar(255);uniqueIndex;not null"`
	Cedula                 string               `gorm:"type:varchar(10);uniqueIndex;not null"`
	FechaNacimiento        time.Time            `gorm:"type:date;not null"`
	Telefono               string               `gorm:"type:varchar(10);not null"`
	CiudadID               uint                 `gorm:"not null"`
	Ciudad                 *Ciudad              `gorm:"foreignKey:CiudadID"`
	Perfil                 string               `gorm:"type:varchar(300)"`
	CargoOfrecidoID        uint                 `gorm:"not null"`
	CargoOfrecido          *CargoOfrecido       `gorm:"foreignKey:CargoOfrecidoID"`
	TrabajaActualmenteAqui bool
	HaTrabajadoAqui        bool
	MotivoSalidaID         *uint
	MotivoSalida           *MotivoSalida `gorm:"foreignKey:MotivoSalidaID"`
	TieneReferido          bool
	NombreReferido         string `gorm:"type:varchar(255)"`
	// FechaRegistro la asigna el servidor al crear y nunca se actualiza.
	FechaRegistro      time.Time            `gorm:"index;not null"`
	Estado             models.ProcessStatus `gorm:"type:varchar(20);not null;default:'EN_PROCESO'"`
	FormularioCompleto bool                 `gorm:"not null;default:false"`
}

func (Candidate) TableName() string { return "candidatos" }
