package azuread

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"talento-backend/models"
)

func TestExtractBearer(t *testing.T) {
	t.Run("encabezado bien formado", func(t *testing.T) {
		token, err := extractBearer("Bearer abc.def.ghi")
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", token)
	})
	t.Run("esquema sin distinguir mayúsculas", func(t *testing.T) {
		token, err := extractBearer("bearer abc.def.ghi")
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", token)
	})
	t.Run("encabezado vacío", func(t *testing.T) {
		_, err := extractBearer("")
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
	t.Run("esquema distinto", func(t *testing.T) {
		_, err := extractBearer("Basic abc")
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
	t.Run("sin token", func(t *testing.T) {
		_, err := extractBearer("Bearer ")
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
}

func TestExtractEmail(t *testing.T) {
	t.Run("prefiere el claim email", func(t *testing.T) {
		email, err := extractEmail(jwt.MapClaims{
			"email":              "Ana.Gomez@empresa.com",
			"preferred_username": "otro@empresa.com",
		})
		require.NoError(t, err)
		require.Equal(t, "ana.gomez@empresa.com", email)
	})
	t.Run("cae a preferred_username", func(t *testing.T) {
		email, err := extractEmail(jwt.MapClaims{
			"preferred_username": "ana@empresa.com",
			"upn":                "otro@empresa.com",
		})
		require.NoError(t, err)
		require.Equal(t, "ana@empresa.com", email)
	})
	t.Run("ignora claims sin arroba", func(t *testing.T) {
		email, err := extractEmail(jwt.MapClaims{
			"preferred_username": "ana.gomez",
			"upn":                "ana@empresa.com",
		})
		require.NoError(t, err)
		require.Equal(t, "ana@empresa.com", email)
	})
	t.Run("unique_name como último recurso", func(t *testing.T) {
		email, err := extractEmail(jwt.MapClaims{
			"unique_name": "ana@empresa.com",
		})
		require.NoError(t, err)
		require.Equal(t, "ana@empresa.com", email)
	})
	t.Run("sin correo identificable", func(t *testing.T) {
		_, err := extractEmail(jwt.MapClaims{"sub": "abc123"})
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
}

func TestAudienceMatches(t *testing.T) {
	accepted := []string{"client-id", "api://client-id"}
	t.Run("coincide el client id", func(t *testing.T) {
		require.True(t, audienceMatches(jwt.ClaimStrings{"client-id"}, accepted))
	})
	t.Run("coincide el URI de aplicación", func(t *testing.T) {
		require.True(t, audienceMatches(jwt.ClaimStrings{"otro", "api://client-id"}, accepted))
	})
	t.Run("sin coincidencia", func(t *testing.T) {
		require.False(t, audienceMatches(jwt.ClaimStrings{"otro"}, accepted))
	})
	t.Run("audiencia vacía", func(t *testing.T) {
		require.False(t, audienceMatches(jwt.ClaimStrings{}, accepted))
	})
}
