package candidate

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
)

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func validData() candidateapimodels.CandidateData {
	return candidateapimodels.CandidateData{
		NombreCompleto:  "Ana María Pérez",
		Email:           "ana@example.com",
		Cedula:          "1003632723",
		FechaNacimiento: "2002-08-27",
		Telefono:        "3208221476",
		CiudadID:        1,
		Perfil:          "Desarrolladora backend con 3 años de experiencia.",
		CargoOfrecidoID: 2,
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("datos válidos", func(t *testing.T) {
		birth, err := validateCreate(validData(), testToday)
		require.NoError(t, err)
		require.Equal(t, time.Date(2002, 8, 27, 0, 0, 0, 0, time.UTC), birth)
	})
	t.Run("menor de 18", func(t *testing.T) {
		data := validData()
		data.FechaNacimiento = "2010-01-01"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("cumple 18 justo hoy", func(t *testing.T) {
		data := validData()
		data.FechaNacimiento = "2007-06-15"
		_, err := validateCreate(data, testToday)
		require.NoError(t, err)
	})
	t.Run("cumple 18 mañana", func(t *testing.T) {
		data := validData()
		data.FechaNacimiento = "2007-06-16"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("anterior a 1930", func(t *testing.T) {
		data := validData()
		data.FechaNacimiento = "1929-12-31"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("nombre con números", func(t *testing.T) {
		data := validData()
		data.NombreCompleto = "Ana123"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("cédula corta", func(t *testing.T) {
		data := validData()
		data.Cedula = "12345"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("teléfono de 7 dígitos", func(t *testing.T) {
		data := validData()
		data.Telefono = "3208221"
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("perfil demasiado largo", func(t *testing.T) {
		data := validData()
		perfil := make([]rune, 0, 301)
		for i := 0; i < 301; i++ {
			perfil = append(perfil, 'a')
		}
		data.Perfil = string(perfil)
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("motivo de salida sin haber trabajado", func(t *testing.T) {
		data := validData()
		motivo := uint(3)
		data.HaTrabajadoAqui = false
		data.MotivoSalidaID = &motivo
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("motivo de salida habiendo trabajado", func(t *testing.T) {
		data := validData()
		motivo := uint(3)
		data.HaTrabajadoAqui = true
		data.MotivoSalidaID = &motivo
		_, err := validateCreate(data, testToday)
		require.NoError(t, err)
	})
	t.Run("referido sin nombre", func(t *testing.T) {
		data := validData()
		data.TieneReferido = true
		data.NombreReferido = ""
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("ciudad obligatoria", func(t *testing.T) {
		data := validData()
		data.CiudadID = 0
		_, err := validateCreate(data, testToday)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 25, ageAt(birth, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 24, ageAt(birth, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 25, ageAt(birth, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}
