package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"talento-backend/models"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (uint, error)
	List() ([]dbmodels.User, error)
	FindByEmail(email string) (*dbmodels.User, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (uint, error) {
	rec.Email = strings.ToLower(rec.Email)
	err := i.db.Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.Wrap(models.ErrConflict, "email")
		}
		return 0, errors.Wrap(err, "error creando el usuario")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.User, error) {
	var result []dbmodels.User
	err := i.db.Model(dbmodels.User{}).Order("email").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los usuarios")
	}
	return result, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	var rec dbmodels.User
	err := i.db.Model(dbmodels.User{}).
		Where("email = ?", strings.ToLower(email)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
