package drapimodels

import (
	"time"

	"talento-backend/models"
	apimodels "talento-backend/models/api"
	dbmodels "talento-backend/models/db"
)

type DeletionRequestData struct {
	NombreCompleto string               `json:"nombre_completo"`
	Cedula         string               `json:"cedula"`
	Email          string               `json:"email"`
	Motivo         models.RequestMotive `json:"motivo"`
}

// UpdateData transiciona el estado; state y note siguen la forma que consume
// el panel de administración.
type UpdateData struct {
	State models.RequestState `json:"state"`
	Note  string              `json:"note"`
}

type DeletionRequestView struct {
	DeletionRequestData
	ID             uint                `json:"id"`
	State          models.RequestState `json:"state"`
	Note           string              `json:"note,omitempty"`
	FechaSolicitud time.Time           `json:"fecha_solicitud"`
}

func DeletionRequestConvert(rec dbmodels.DeletionRequest) DeletionRequestView {
	return DeletionRequestView{
		DeletionRequestData: DeletionRequestData{
			NombreCompleto: rec.NombreCompleto,
			Cedula:         rec.Cedula,
			Email:          rec.Email,
			Motivo:         rec.Motivo,
		},
		ID:             rec.ID,
		State:          rec.Estado,
		Note:           rec.Nota,
		FechaSolicitud: rec.FechaSolicitud,
	}
}

type Filter struct {
	apimodels.Pagination
	Search string `json:"search" query:"search"`
	State  string `json:"state" query:"state"`
	Year   int    `json:"year" query:"year"`
	Month  int    `json:"month" query:"month"`
}
