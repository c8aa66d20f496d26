package dbmodels

import (
	"time"
)

// BaseModel usa claves enteras autoincrementales; los catálogos se
// referencian por estos ids estables.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
