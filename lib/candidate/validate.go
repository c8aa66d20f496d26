package candidate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
)

var (
	// letras (incluye acentos y ñ) y espacios
	nameRegex   = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ ]+$`)
	cedulaRegex = regexp.MustCompile(`^[0-9]{6,10}$`)
	phoneRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	perfilRegex = regexp.MustCompile(`^[0-9A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s.,;:()¡!¿?"'%&/_-]*$`)
)

const (
	perfilMaxLen = 300
	minAge       = 18
)

var minBirthDate = time.Date(1930, 1, 1, 0, 0, 0, 0, time.UTC)

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Wrapf(models.ErrValidation, "%s es obligatorio", field)
	}
	if !nameRegex.MatchString(value) {
		return errors.Wrapf(models.ErrValidation, "%s sólo admite letras y espacios", field)
	}
	return nil
}

func validateCedula(value string) error {
	if !cedulaRegex.MatchString(value) {
		return errors.Wrap(models.ErrValidation, "la cédula debe tener entre 6 y 10 dígitos")
	}
	return nil
}

func validatePhone(value string) error {
	if !phoneRegex.MatchString(value) {
		return errors.Wrap(models.ErrValidation, "el teléfono debe tener 10 dígitos")
	}
	return nil
}

func validateEmail(value string) error {
	if strings.TrimSpace(value) == "" || !strings.Contains(value, "@") {
		return errors.Wrap(models.ErrValidation, "email inválido")
	}
	return nil
}

func validatePerfil(value string) error {
	if len([]rune(value)) > perfilMaxLen {
		return errors.Wrapf(models.ErrValidation, "el perfil no puede superar %d caracteres", perfilMaxLen)
	}
	if !perfilRegex.MatchString(value) {
		return errors.Wrap(models.ErrValidation, "el perfil contiene caracteres no permitidos")
	}
	return nil
}

// validateBirthDate exige fecha entre 1930-01-01 y hoy, con edad mínima de
// 18 años evaluada el día de la validación.
func validateBirthDate(value string, today time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.Wrap(models.ErrValidation, "la fecha de nacimiento es obligatoria")
	}
	birth, err := time.ParseInLocation(candidateapimodels.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(models.ErrValidation, "fecha de nacimiento inválida: %s", value)
	}
	if birth.Before(minBirthDate) {
		return time.Time{}, errors.Wrap(models.ErrValidation, "la fecha de nacimiento no puede ser anterior a 1930-01-01")
	}
	if birth.After(today) {
		return time.Time{}, errors.Wrap(models.ErrValidation, "la fecha de nacimiento no puede estar en el futuro")
	}
	if ageAt(birth, today) < minAge {
		return time.Time{}, errors.Wrap(models.ErrValidation, fmt.Sprintf("el candidato debe ser mayor de %d años", minAge))
	}
	return birth, nil
}

func ageAt(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() ||
		(on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	return years
}

func validateCreate(data candidateapimodels.CandidateData, today time.Time) (time.Time, error) {
	if err := validateName("el nombre completo", data.NombreCompleto); err != nil {
		return time.Time{}, err
	}
	if err := validateEmail(data.Email); err != nil {
		return time.Time{}, err
	}
	if err := validateCedula(data.Cedula); err != nil {
		return time.Time{}, err
	}
	if err := validatePhone(data.Telefono); err != nil {
		return time.Time{}, err
	}
	if err := validatePerfil(data.Perfil); err != nil {
		return time.Time{}, err
	}
	if data.CiudadID == 0 {
		return time.Time{}, errors.Wrap(models.ErrValidation, "la ciudad es obligatoria")
	}
	if data.CargoOfrecidoID == 0 {
		return time.Time{}, errors.Wrap(models.ErrValidation, "el cargo ofrecido es obligatorio")
	}
	if !data.HaTrabajadoAqui && data.MotivoSalidaID != nil {
		return time.Time{}, errors.Wrap(models.ErrValidation, "el motivo de salida sólo aplica si trabajó en la organización")
	}
	if data.TieneReferido {
		if err := validateName("el nombre del referido", data.NombreReferido); err != nil {
			return time.Time{}, err
		}
	}
	return validateBirthDate(data.FechaNacimiento, today)
}
