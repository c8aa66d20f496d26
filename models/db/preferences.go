package dbmodels

type Preferences struct {
	BaseModel
	CandidatoID        uint            `gorm:"uniqueIndex;not null"`
	DispuestoViajar    bool
	DisponibilidadID   uint            `gorm:"not null"`
	Disponibilidad     *Disponibilidad `gorm:"foreignKey:DisponibilidadID"`
	RangoSalarialID    uint            `gorm:"not null"`
	RangoSalarial      *RangoSalarial  `gorm:"foreignKey:RangoSalarialID"`
	TrabajaActualmente bool
	MotivoSalidaID     *uint
	MotivoSalida       *MotivoSalida `gorm:"foreignKey:MotivoSalidaID"`
	Razon              string        `gorm:"type:text"`
}

func (Preferences) TableName() string { return "preferencias" }
