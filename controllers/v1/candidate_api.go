package v1

import (
	"github.com/gofiber/fiber/v2"

	"talento-backend/controllers"
	"talento-backend/lib/candidate"
	"talento-backend/lib/education"
	"talento-backend/lib/experience"
	"talento-backend/lib/knowledge"
	"talento-backend/lib/preferences"
	"talento-backend/middleware"
	apimodels "talento-backend/models/api"
	candidateapimodels "talento-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(router fiber.Router) {
	controller := candidateApiController{}
	router.Route("candidates", func(router fiber.Router) {
		// las rutas literales van antes del comodín :id
		router.Get("summary", controller.summary)
		router.Delete("cleanup-incomplete", middleware.AdminRole(), controller.cleanupIncomplete)
		router.Delete("educations/:id", controller.deleteEducation)
		router.Delete("experiences/:id", controller.deleteExperience)
		router.Delete("knowledge/:id", controller.deleteKnowledge)

		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Get(":id/detail", controller.detail)
		router.Put(":id", controller.update)
		router.Put(":id/complete", controller.complete)
		router.Delete(":id", middleware.AdminRole(), controller.delete)

		router.Post(":id/educations", controller.createEducation)
		router.Get(":id/educations", controller.listEducations)
		router.Post(":id/experiences", controller.createExperience)
		router.Get(":id/experiences", controller.listExperiences)
		router.Post(":id/knowledge", controller.createKnowledge)
		router.Get(":id/knowledge", controller.listKnowledge)
		router.Put(":id/preferences", controller.upsertPreferences)
		router.Get(":id/preferences", controller.getPreferences)
	})
}

// @Summary Registro de un candidato
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	candidateapimodels.CandidateData	true	"request body"
// @Success 201 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error registrando el candidato")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista completa de candidatos
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	resp, err := candidate.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los candidatos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Grilla administrativa con filtros y paginación
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   search	query	string	false	"nombre, cédula o correo"
// @Param   status	query	string	false	"estado del proceso"
// @Param   skip	query	int	false	"registros a omitir"
// @Param   limit	query	int	false	"registros por página"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/summary [get]
func (c *candidateApiController) summary(ctx *fiber.Ctx) error {
	var filter candidateapimodels.SummaryFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("filtros inválidos"))
	}
	list, rowCount, err := candidate.Instance.ListSummary(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando la grilla de candidatos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Candidato por ID
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando el candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Hoja de vida completa del candidato
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.DetailView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/detail [get]
func (c *candidateApiController) detail(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.GetDetail(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando la hoja de vida")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualización parcial del candidato
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Param	body	body	candidateapimodels.CandidateUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidate.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando el candidato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Marcar el formulario como completo
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/complete [put]
func (c *candidateApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.MarkFormComplete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error completando el formulario")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación del candidato y sus registros dependientes
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidate.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el candidato")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Limpieza de formularios incompletos vencidos
// @Tags Candidatos
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/cleanup-incomplete [delete]
func (c *candidateApiController) cleanupIncomplete(ctx *fiber.Ctx) error {
	deleted, err := candidate.Instance.CleanupIncomplete()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error en la limpieza de candidatos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(deleted))
}

// @Summary Registro de educación del candidato
// @Tags Candidatos. Educación
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Param	body	body	candidateapimodels.EducationData	true	"request body"
// @Success 201 {object} apimodels.Response{data=candidateapimodels.EducationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/educations [post]
func (c *candidateApiController) createEducation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.EducationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.CandidatoID = id
	resp, err := education.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error guardando la educación")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Educaciones del candidato
// @Tags Candidatos. Educación
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.EducationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/educations [get]
func (c *candidateApiController) listEducations(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := education.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando las educaciones")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación de una educación
// @Tags Candidatos. Educación
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/educations/{id} [delete]
func (c *candidateApiController) deleteEducation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = education.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la educación")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Registro de experiencia laboral
// @Tags Candidatos. Experiencia
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Param	body	body	candidateapimodels.ExperienceData	true	"request body"
// @Success 201 {object} apimodels.Response{data=candidateapimodels.ExperienceView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/experiences [post]
func (c *candidateApiController) createExperience(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.ExperienceData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.CandidatoID = id
	resp, err := experience.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error guardando la experiencia")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Experiencias del candidato
// @Tags Candidatos. Experiencia
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.ExperienceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/experiences [get]
func (c *candidateApiController) listExperiences(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := experience.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando las experiencias")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación de una experiencia
// @Tags Candidatos. Experiencia
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/experiences/{id} [delete]
func (c *candidateApiController) deleteExperience(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = experience.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la experiencia")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Registro de conocimientos en lote
// @Tags Candidatos. Conocimientos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Param	body	body	candidateapimodels.KnowledgeBatchData	true	"request body"
// @Success 201 {object} apimodels.Response{data=[]candidateapimodels.KnowledgeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/knowledge [post]
func (c *candidateApiController) createKnowledge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.KnowledgeBatchData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := knowledge.Instance.CreateBatch(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error guardando los conocimientos")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Conocimientos del candidato
// @Tags Candidatos. Conocimientos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.KnowledgeView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/knowledge [get]
func (c *candidateApiController) listKnowledge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := knowledge.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los conocimientos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación de un conocimiento
// @Tags Candidatos. Conocimientos
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/knowledge/{id} [delete]
func (c *candidateApiController) deleteKnowledge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = knowledge.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el conocimiento")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Guardado de preferencias (a lo sumo una por candidato)
// @Tags Candidatos. Preferencias
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Param	body	body	candidateapimodels.PreferencesData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.PreferencesView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/preferences [put]
func (c *candidateApiController) upsertPreferences(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.PreferencesData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.CandidatoID = id
	resp, err := preferences.Instance.Upsert(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error guardando las preferencias")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preferencias del candidato
// @Tags Candidatos. Preferencias
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"candidato ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.PreferencesView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/preferences [get]
func (c *candidateApiController) getPreferences(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := preferences.Instance.GetByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando las preferencias")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
