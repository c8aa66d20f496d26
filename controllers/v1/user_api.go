package v1

import (
	"github.com/gofiber/fiber/v2"

	"talento-backend/controllers"
	"talento-backend/lib/users"
	"talento-backend/middleware"
	apimodels "talento-backend/models/api"
	userapimodels "talento-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(router fiber.Router) {
	controller := userApiController{}
	router.Route("users", func(router fiber.Router) {
		router.Post("", middleware.AdminRole(), controller.create)
		router.Get("", controller.list)
		router.Get("authorize/:email", controller.authorize)
	})
}

// @Summary Alta de un usuario del panel
// @Tags Usuarios
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	userapimodels.UserData	true	"request body"
// @Success 201 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := users.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando el usuario")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista de usuarios del panel
// @Tags Usuarios
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	resp, err := users.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los usuarios")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Consulta de autorización por correo
// @Tags Usuarios
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   email	path	string	true	"correo del usuario"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/authorize/{email} [get]
func (c *userApiController) authorize(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	resp, err := users.Instance.Authorize(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando la autorización")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
