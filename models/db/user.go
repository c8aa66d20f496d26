package dbmodels

import "talento-backend/models"

type User struct {
	BaseModel
	// Email se guarda en minúsculas; la comparación es siempre exacta.
	Email  string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Nombre string          `gorm:"type:varchar(255);not null"`
	Rol    models.UserRole `gorm:"type:varchar(10);not null"`
	Activo bool            `gorm:"not null;default:true"`
}

func (User) TableName() string { return "usuarios" }
