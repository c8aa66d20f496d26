package db

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	"talento-backend/lib/dicts"
	usersstore "talento-backend/lib/users/store"
	"talento-backend/models"
	dictapimodels "talento-backend/models/api/dict"
	dbmodels "talento-backend/models/db"
)

// InitPreload corre antes de aceptar tráfico: cada catálogo queda insertado
// u observado, y se garantiza el usuario administrador semilla.
func InitPreload() {
	fillCatalogs()
	addAdminUser()
}

// csvFiles mapea cada catálogo a su archivo dentro del directorio de
// precarga. Formato: nombre[;nombre_de_la_referencia] separado por ';'.
var csvFiles = []struct {
	key     string
	file    string
	refKey  string // catálogo donde se resuelve la segunda columna
}{
	{key: "departments", file: "departamentos.csv"},
	{key: "cities", file: "ciudades.csv", refKey: "departments"},
	{key: "jobs-offered", file: "cargos_ofrecidos.csv"},
	{key: "education-levels", file: "niveles_educativos.csv"},
	{key: "titles", file: "titulos.csv", refKey: "education-levels"},
	{key: "institutions", file: "instituciones.csv"},
	{key: "english-levels", file: "niveles_ingles.csv"},
	{key: "experience-ranges", file: "rangos_experiencia.csv"},
	{key: "soft-skills", file: "habilidades_blandas.csv"},
	{key: "technical-skills", file: "habilidades_tecnicas.csv"},
	{key: "tools", file: "herramientas.csv"},
	{key: "salary-ranges", file: "rangos_salariales.csv"},
	{key: "availabilities", file: "disponibilidades.csv"},
	{key: "exit-motives", file: "motivos_salida.csv"},
	{key: "cost-centers", file: "centros_costos.csv"},
}

func fillCatalogs() {
	log.Info("precarga de catálogos")
	for _, entry := range csvFiles {
		provider := dicts.Registry[entry.key]
		logger := log.WithField("catalogo", entry.key)
		empty, err := provider.IsEmpty()
		if err != nil {
			logger.WithError(err).Error("error de precarga del catálogo")
			continue
		}
		if !empty {
			continue
		}
		lines, err := readCsvFile(filepath.Join(config.Conf.Preload.Dir, entry.file), ';')
		if err != nil {
			logger.WithError(err).Error("error leyendo el archivo del catálogo")
			continue
		}
		var refByName map[string]uint
		if entry.refKey != "" {
			refByName, err = namesToIDs(entry.refKey)
			if err != nil {
				logger.WithError(err).Error("error resolviendo la referencia del catálogo")
				continue
			}
		}
		for k, line := range lines {
			if len(line) == 0 || strings.TrimSpace(line[0]) == "" {
				continue
			}
			data := dictapimodels.CatalogData{Nombre: strings.TrimSpace(line[0])}
			if refByName != nil && len(line) > 1 {
				if refID, ok := refByName[strings.ToLower(strings.TrimSpace(line[1]))]; ok {
					data.RefID = &refID
				}
			}
			if _, err := provider.Create(data); err != nil {
				if errors.Is(err, models.ErrConflict) {
					continue
				}
				logger.WithError(err).Errorf("error insertando la línea %v del catálogo", k)
				break
			}
		}
		logger.Info("catálogo precargado")
	}
}

func namesToIDs(catalogKey string) (map[string]uint, error) {
	list, err := dicts.Registry[catalogKey].List("")
	if err != nil {
		return nil, err
	}
	result := make(map[string]uint, len(list))
	for _, item := range list {
		result[strings.ToLower(item.Nombre)] = item.ID
	}
	return result, nil
}

func addAdminUser() {
	if config.Conf.Admin.Email == "" {
		log.Warn("usuario administrador no agregado, falta la variable ADMIN_EMAIL")
		return
	}
	userStore := usersstore.NewInstance(DB)
	email := strings.ToLower(config.Conf.Admin.Email)
	existedRec, err := userStore.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("error agregando el usuario administrador")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:  email,
		Nombre: config.Conf.Admin.Nombre,
		Rol:    models.UserRoleAdmin,
		Activo: true,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("error agregando el usuario administrador")
	}
}

func readCsvFile(filePath string, comma rune) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "error abriendo el archivo")
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = comma
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "error procesando el archivo")
	}

	return records, nil
}
