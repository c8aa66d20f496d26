package dbmodels

// CatalogBase es la forma común de todos los catálogos: id sustituto y
// nombre único (sin distinción de mayúsculas) dentro del catálogo.
type CatalogBase struct {
	BaseModel
	Nombre string `gorm:"type:varchar(255);not null" json:"nombre"`
}

func (c CatalogBase) EntryID() uint {
	return c.ID
}

func (c CatalogBase) EntryName() string {
	return c.Nombre
}

// CatalogEntry lo implementa cada modelo de catálogo.
type CatalogEntry interface {
	EntryID() uint
	EntryName() string
	TableName() string
}

// SecondaryRef lo implementan los catálogos con FK secundaria
// (ciudad → departamento, título → nivel educativo).
type SecondaryRef interface {
	RefID() *uint
}

type Departamento struct {
	CatalogBase
}

func (Departamento) TableName() string { return "departamentos" }

type Ciudad struct {
	CatalogBase
	DepartamentoID *uint         `json:"departamento_id"`
	Departamento   *Departamento `gorm:"foreignKey:DepartamentoID" json:"-"`
}

func (Ciudad) TableName() string { return "ciudades" }

func (c Ciudad) RefID() *uint { return c.DepartamentoID }

type CargoOfrecido struct {
	CatalogBase
}

func (CargoOfrecido) TableName() string { return "cargos_ofrecidos" }

type NivelEducativo struct {
	CatalogBase
}

func (NivelEducativo) TableName() string { return "niveles_educativos" }

type Titulo struct {
	CatalogBase
	NivelEducativoID *uint           `json:"nivel_educativo_id"`
	NivelEducativo   *NivelEducativo `gorm:"foreignKey:NivelEducativoID" json:"-"`
}

func (Titulo) TableName() string { return "titulos" }

func (t Titulo) RefID() *uint { return t.NivelEducativoID }

type Institucion struct {
	CatalogBase
}

func (Institucion) TableName() string { return "instituciones" }

type NivelIngles struct {
	CatalogBase
}

func (NivelIngles) TableName() string { return "niveles_ingles" }

type RangoExperiencia struct {
	CatalogBase
}

func (RangoExperiencia) TableName() string { return "rangos_experiencia" }

type HabilidadBlanda struct {
	CatalogBase
}

func (HabilidadBlanda) TableName() string { return "habilidades_blandas" }

type HabilidadTecnica struct {
	CatalogBase
}

func (HabilidadTecnica) TableName() string { return "habilidades_tecnicas" }

type Herramienta struct {
	CatalogBase
}

func (Herramienta) TableName() string { return "herramientas" }

type RangoSalarial struct {
	CatalogBase
}

func (RangoSalarial) TableName() string { return "rangos_salariales" }

type Disponibilidad struct {
	CatalogBase
}

func (Disponibilidad) TableName() string { return "disponibilidades" }

type MotivoSalida struct {
	CatalogBase
}

func (MotivoSalida) TableName() string { return "motivos_salida" }

type CentroCostos struct {
	CatalogBase
}

func (CentroCostos) TableName() string { return "centros_costos" }
