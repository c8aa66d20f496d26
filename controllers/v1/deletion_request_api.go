package v1

import (
	"github.com/gofiber/fiber/v2"

	"talento-backend/controllers"
	"talento-backend/lib/deletionrequest"
	"talento-backend/middleware"
	apimodels "talento-backend/models/api"
	drapimodels "talento-backend/models/api/deletionrequest"
)

type deletionRequestApiController struct {
	controllers.BaseAPIController
}

// InitPublicDeletionRequestRouters registra el alta pública: cualquier
// titular de datos puede radicar una solicitud sin autenticarse.
func InitPublicDeletionRequestRouters(router fiber.Router) {
	controller := deletionRequestApiController{}
	router.Post("deletion-requests", controller.create)
}

func InitDeletionRequestApiRouters(router fiber.Router) {
	controller := deletionRequestApiController{}
	router.Route("deletion-requests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("stats", controller.stats)
		router.Put(":id", middleware.AdminRole(), controller.update)
	})
}

// @Summary Radicación de una solicitud de eliminación de datos
// @Tags Solicitudes de eliminación
// @Param	body	body	drapimodels.DeletionRequestData	true	"request body"
// @Success 201 {object} apimodels.Response{data=drapimodels.DeletionRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/deletion-requests [post]
func (c *deletionRequestApiController) create(ctx *fiber.Ctx) error {
	var payload drapimodels.DeletionRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := deletionrequest.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error radicando la solicitud")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Bandeja de solicitudes con filtros y paginación
// @Tags Solicitudes de eliminación
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   search	query	string	false	"nombre, cédula o correo"
// @Param   state	query	string	false	"pending | accepted | rejected"
// @Param   year	query	int	false	"año de radicación"
// @Param   month	query	int	false	"mes de radicación"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]drapimodels.DeletionRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/deletion-requests [get]
func (c *deletionRequestApiController) list(ctx *fiber.Ctx) error {
	var filter drapimodels.Filter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("filtros inválidos"))
	}
	list, rowCount, err := deletionrequest.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando las solicitudes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Moderación de una solicitud
// @Tags Solicitudes de eliminación
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Param	body	body	drapimodels.UpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=drapimodels.DeletionRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/deletion-requests/{id} [put]
func (c *deletionRequestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload drapimodels.UpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := deletionrequest.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error moderando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Totales de solicitudes por estado y motivo
// @Tags Solicitudes de eliminación
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=reportapimodels.DeletionRequestStats}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/deletion-requests/stats [get]
func (c *deletionRequestApiController) stats(ctx *fiber.Ctx) error {
	resp, err := deletionrequest.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los totales de solicitudes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
