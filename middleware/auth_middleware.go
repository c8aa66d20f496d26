package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"talento-backend/lib/azuread"
	"talento-backend/models"
	apimodels "talento-backend/models/api"
	userapimodels "talento-backend/models/api/user"
)

const userLocalKey = "auth_user"

// Authenticated valida el token de Azure AD y deja el usuario interno en el
// contexto de la petición.
func Authenticated() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := azuread.Instance.Authenticate(ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, models.ErrForbidden) {
				return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		ctx.Locals(userLocalKey, user)
		return ctx.Next()
	}
}

// AdminRole exige el rol ADMIN sobre una petición ya autenticada.
func AdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := ctx.Locals(userLocalKey).(userapimodels.UserView)
		if !ok || !user.Rol.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible para el rol"))
		}
		return ctx.Next()
	}
}

// AuthUser recupera el usuario dejado por Authenticated.
func AuthUser(ctx *fiber.Ctx) (userapimodels.UserView, bool) {
	user, ok := ctx.Locals(userLocalKey).(userapimodels.UserView)
	return user, ok
}
