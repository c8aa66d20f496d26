package v1

import (
	"github.com/gofiber/fiber/v2"

	"talento-backend/controllers"
	"talento-backend/lib/dicts"
	apimodels "talento-backend/models/api"
	dictapimodels "talento-backend/models/api/dict"
)

type dictApiController struct {
	controllers.BaseAPIController
}

// InitDictApiRouters monta el CRUD de cada catálogo en su propia ruta
// (/cities, /departments, ...), una por entrada del registro.
func InitDictApiRouters(router fiber.Router) {
	controller := dictApiController{}
	for name, provider := range dicts.Registry {
		provider := provider
		router.Route(name, func(router fiber.Router) {
			router.Get("", controller.list(provider))
			router.Post("", controller.create(provider))
			router.Get(":id", controller.get(provider))
			router.Put(":id", controller.update(provider))
			router.Delete(":id", controller.delete(provider))
		})
	}
}

// @Summary Listado del catálogo
// @Tags Catálogos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   search	query	string	false	"búsqueda por nombre"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CatalogView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/{catalog} [get]
func (c *dictApiController) list(provider dicts.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		resp, err := provider.List(ctx.Query("search"))
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando el catálogo")
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
	}
}

// @Summary Alta en el catálogo
// @Tags Catálogos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.CatalogData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dictapimodels.CatalogView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/{catalog} [post]
func (c *dictApiController) create(provider dicts.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var payload dictapimodels.CatalogData
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		resp, err := provider.Create(payload)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando la entrada del catálogo")
		}
		return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
	}
}

// @Summary Entrada del catálogo por ID
// @Tags Catálogos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.CatalogView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/{catalog}/{id} [get]
func (c *dictApiController) get(provider dicts.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := c.GetID(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		resp, err := provider.Get(id)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando la entrada del catálogo")
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
	}
}

// @Summary Actualización de la entrada del catálogo
// @Tags Catálogos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Param	body	body	dictapimodels.CatalogData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/{catalog}/{id} [put]
func (c *dictApiController) update(provider dicts.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := c.GetID(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		var payload dictapimodels.CatalogData
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		err = provider.Update(id, payload)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando la entrada del catálogo")
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	}
}

// @Summary Eliminación de la entrada del catálogo
// @Tags Catálogos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/{catalog}/{id} [delete]
func (c *dictApiController) delete(provider dicts.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := c.GetID(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		err = provider.Delete(id)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la entrada del catálogo")
		}
		return ctx.SendStatus(fiber.StatusNoContent)
	}
}
