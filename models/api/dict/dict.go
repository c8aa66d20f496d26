package dictapimodels

import dbmodels "talento-backend/models/db"

type CatalogData struct {
	Nombre string `json:"nombre"`
	// RefID es la FK secundaria de los catálogos que la tienen
	// (ciudad → departamento, título → nivel educativo).
	RefID *uint `json:"ref_id,omitempty"`
}

type CatalogView struct {
	CatalogData
	ID uint `json:"id"`
}

func CatalogConvert(rec dbmodels.CatalogEntry) CatalogView {
	view := CatalogView{
		CatalogData: CatalogData{
			Nombre: rec.EntryName(),
		},
		ID: rec.EntryID(),
	}
	if ref, ok := rec.(dbmodels.SecondaryRef); ok {
		view.RefID = ref.RefID()
	}
	return view
}
