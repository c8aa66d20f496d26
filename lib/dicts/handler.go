package dicts

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	store "talento-backend/lib/dicts/store"
	"talento-backend/lib/utils/helpers"
	"talento-backend/models"
	dictapimodels "talento-backend/models/api/dict"
	dbmodels "talento-backend/models/db"
)

// Provider es la interfaz común de los quince catálogos.
type Provider interface {
	List(search string) ([]dictapimodels.CatalogView, error)
	Create(data dictapimodels.CatalogData) (dictapimodels.CatalogView, error)
	Get(id uint) (dictapimodels.CatalogView, error)
	Update(id uint, data dictapimodels.CatalogData) error
	Delete(id uint) error
	IsEmpty() (bool, error)
}

// NewHandler instancia el proveedor de un catálogo: build construye el modelo
// a partir del payload y refColumn es la columna de la FK secundaria
// ("" para los catálogos simples).
func NewHandler[T dbmodels.CatalogEntry](DB *gorm.DB, build func(data dictapimodels.CatalogData) T, refColumn string) Provider {
	return impl[T]{
		store:     store.NewInstance[T](DB),
		build:     build,
		refColumn: refColumn,
	}
}

type impl[T dbmodels.CatalogEntry] struct {
	store     store.Provider[T]
	build     func(data dictapimodels.CatalogData) T
	refColumn string
}

func (i impl[T]) List(search string) ([]dictapimodels.CatalogView, error) {
	recList, err := i.store.List(search)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CatalogView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CatalogConvert(rec))
	}
	// alfabético, con "otro"/"otros" siempre al final
	sort.SliceStable(result, func(a, b int) bool {
		return helpers.LabelLess(result[a].Nombre, result[b].Nombre)
	})
	return result, nil
}

func (i impl[T]) Create(data dictapimodels.CatalogData) (dictapimodels.CatalogView, error) {
	if err := validateName(data.Nombre); err != nil {
		return dictapimodels.CatalogView{}, err
	}
	unique, err := i.store.IsUnique(0, data.Nombre)
	if err != nil {
		return dictapimodels.CatalogView{}, err
	}
	if !unique {
		return dictapimodels.CatalogView{}, errors.Wrap(models.ErrConflict, "nombre")
	}
	id, err := i.store.Create(i.build(data))
	if err != nil {
		return dictapimodels.CatalogView{}, err
	}
	return i.Get(id)
}

func (i impl[T]) Get(id uint) (dictapimodels.CatalogView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CatalogView{}, err
	}
	if rec == nil {
		return dictapimodels.CatalogView{}, models.ErrNotFound
	}
	return dictapimodels.CatalogConvert(*rec), nil
}

func (i impl[T]) Update(id uint, data dictapimodels.CatalogData) error {
	if err := validateName(data.Nombre); err != nil {
		return err
	}
	unique, err := i.store.IsUnique(id, data.Nombre)
	if err != nil {
		return err
	}
	if !unique {
		return errors.Wrap(models.ErrConflict, "nombre")
	}
	updMap := map[string]interface{}{
		"nombre": data.Nombre,
	}
	if i.refColumn != "" && data.RefID != nil {
		updMap[i.refColumn] = *data.RefID
	}
	return i.store.Update(id, updMap)
}

func (i impl[T]) Delete(id uint) error {
	return i.store.Delete(id)
}

func (i impl[T]) IsEmpty() (bool, error) {
	rowCount, err := i.store.Count()
	if err != nil {
		return false, err
	}
	return rowCount == 0, nil
}

func validateName(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return errors.Wrap(models.ErrValidation, "el nombre es obligatorio")
	}
	return nil
}
