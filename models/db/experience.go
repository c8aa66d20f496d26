package dbmodels

import "time"

type WorkExperience struct {
	BaseModel
	CandidatoID        uint              `gorm:"index;not null"`
	RangoExperienciaID uint              `gorm:"not null"`
	RangoExperiencia   *RangoExperiencia `gorm:"foreignKey:RangoExperienciaID"`
	UltimaEmpresa      string            `gorm:"type:varchar(255);not null"`
	UltimoCargo        string            `gorm:"type:varchar(255);not null"`
	Responsabilidades  string            `gorm:"type:text"`
	FechaInicio        time.Time         `gorm:"type:date;not null"`
	// FechaFin nula significa empleo actual.
	FechaFin *time.Time `gorm:"type:date"`
}

func (WorkExperience) TableName() string { return "experiencias_laborales" }
