package dbmodels

type Education struct {
	BaseModel
	CandidatoID      uint            `gorm:"index;not null"`
	NivelEducativoID uint            `gorm:"not null"`
	NivelEducativo   *NivelEducativo `gorm:"foreignKey:NivelEducativoID"`
	// Título e institución admiten un valor libre cuando no están en el
	// catálogo: exactamente uno de (FK, texto) debe estar presente.
	TituloID        *uint
	Titulo          *Titulo `gorm:"foreignKey:TituloID"`
	OtroTitulo      *string `gorm:"type:varchar(255)"`
	InstitucionID   *uint
	Institucion     *Institucion `gorm:"foreignKey:InstitucionID"`
	OtraInstitucion *string      `gorm:"type:varchar(255)"`
	AnioGraduacion  *int
	NivelInglesID   uint         `gorm:"not null"`
	NivelIngles     *NivelIngles `gorm:"foreignKey:NivelInglesID"`
}

func (Education) TableName() string { return "educaciones" }

// TituloNombre resuelve el título del catálogo o el texto libre.
func (e Education) TituloNombre() string {
	if e.Titulo != nil {
		return e.Titulo.Nombre
	}
	if e.OtroTitulo != nil {
		return *e.OtroTitulo
	}
	return ""
}

func (e Education) InstitucionNombre() string {
	if e.Institucion != nil {
		return e.Institucion.Nombre
	}
	if e.OtraInstitucion != nil {
		return *e.OtraInstitucion
	}
	return ""
}
