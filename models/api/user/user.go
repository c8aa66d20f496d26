package userapimodels

import (
	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type UserData struct {
	Email  string          `json:"email"`
	Nombre string          `json:"nombre"`
	Rol    models.UserRole `json:"rol"`
	Activo *bool           `json:"activo"`
}

type UserView struct {
	ID     uint            `json:"id"`
	Email  string          `json:"email"`
	Nombre string          `json:"nombre"`
	Rol    models.UserRole `json:"rol"`
	Activo bool            `json:"activo"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:     rec.ID,
		Email:  rec.Email,
		Nombre: rec.Nombre,
		Rol:    rec.Rol,
		Activo: rec.Activo,
	}
}
