package users

import (
	"strings"

	"github.com/pkg/errors"

	"talento-backend/db"
	usersstore "talento-backend/lib/users/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	userapimodels "talento-backend/models/api/user"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(request userapimodels.UserData) (userapimodels.UserView, error)
	List() ([]userapimodels.UserView, error)
	Authorize(email string) (userapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(request userapimodels.UserData) (userapimodels.UserView, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" || !strings.Contains(email, "@") {
		return userapimodels.UserView{}, errors.Wrap(models.ErrValidation, "email inválido")
	}
	if strings.TrimSpace(request.Nombre) == "" {
		return userapimodels.UserView{}, errors.Wrap(models.ErrValidation, "el nombre es obligatorio")
	}
	if request.Rol != models.UserRoleTH && request.Rol != models.UserRoleAdmin {
		return userapimodels.UserView{}, errors.Wrapf(models.ErrValidation, "rol desconocido: %q", request.Rol)
	}
	activo := true
	if request.Activo != nil {
		activo = *request.Activo
	}
	rec := dbmodels.User{
		Email:  email,
		Nombre: request.Nombre,
		Rol:    request.Rol,
		Activo: activo,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	rec.ID = id
	return userapimodels.UserConvert(rec), nil
}

func (i impl) List() ([]userapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) Authorize(email string) (userapimodels.UserView, error) {
	rec, err := i.store.FindByEmail(email)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, models.ErrNotFound
	}
	return userapimodels.UserConvert(*rec), nil
}
