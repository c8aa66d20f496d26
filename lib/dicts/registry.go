package dicts

import (
	"gorm.io/gorm"

	dictapimodels "talento-backend/models/api/dict"
	dbmodels "talento-backend/models/db"
)

// Registry expone un proveedor por catálogo, indexado por el segmento de
// ruta HTTP que lo sirve.
var Registry map[string]Provider

func NewHandlers(DB *gorm.DB) {
	Registry = map[string]Provider{
		"departments": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Departamento {
			return dbmodels.Departamento{CatalogBase: base(d)}
		}, ""),
		"cities": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Ciudad {
			return dbmodels.Ciudad{CatalogBase: base(d), DepartamentoID: d.RefID}
		}, "departamento_id"),
		"jobs-offered": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.CargoOfrecido {
			return dbmodels.CargoOfrecido{CatalogBase: base(d)}
		}, ""),
		"education-levels": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.NivelEducativo {
			return dbmodels.NivelEducativo{CatalogBase: base(d)}
		}, ""),
		"titles": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Titulo {
			return dbmodels.Titulo{CatalogBase: base(d), NivelEducativoID: d.RefID}
		}, "nivel_educativo_id"),
		"institutions": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Institucion {
			return dbmodels.Institucion{CatalogBase: base(d)}
		}, ""),
		"english-levels": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.NivelIngles {
			return dbmodels.NivelIngles{CatalogBase: base(d)}
		}, ""),
		"experience-ranges": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.RangoExperiencia {
			return dbmodels.RangoExperiencia{CatalogBase: base(d)}
		}, ""),
		"soft-skills": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.HabilidadBlanda {
			return dbmodels.HabilidadBlanda{CatalogBase: base(d)}
		}, ""),
		"technical-skills": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.HabilidadTecnica {
			return dbmodels.HabilidadTecnica{CatalogBase: base(d)}
		}, ""),
		"tools": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Herramienta {
			return dbmodels.Herramienta{CatalogBase: base(d)}
		}, ""),
		"salary-ranges": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.RangoSalarial {
			return dbmodels.RangoSalarial{CatalogBase: base(d)}
		}, ""),
		"availabilities": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.Disponibilidad {
			return dbmodels.Disponibilidad{CatalogBase: base(d)}
		}, ""),
		"exit-motives": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.MotivoSalida {
			return dbmodels.MotivoSalida{CatalogBase: base(d)}
		}, ""),
		"cost-centers": NewHandler(DB, func(d dictapimodels.CatalogData) dbmodels.CentroCostos {
			return dbmodels.CentroCostos{CatalogBase: base(d)}
		}, ""),
	}
}

func base(d dictapimodels.CatalogData) dbmodels.CatalogBase {
	return dbmodels.CatalogBase{Nombre: d.Nombre}
}
