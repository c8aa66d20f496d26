package v1

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"talento-backend/controllers"
	"talento-backend/lib/candidate"
	pdfexport "talento-backend/lib/export/pdf"
	xlsexport "talento-backend/lib/export/xls"
	"talento-backend/lib/filestorage"
	"talento-backend/lib/reports"
	apimodels "talento-backend/models/api"
	reportapimodels "talento-backend/models/api/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(router fiber.Router) {
	controller := reportApiController{}
	router.Route("reports", func(router fiber.Router) {
		router.Get("personal", controller.personal)
		router.Get("education", controller.education)
		router.Get("experience", controller.experience)
		router.Get("knowledge", controller.knowledge)
		router.Get("preferences", controller.preferences)
		router.Get("process", controller.process)
		router.Get("years-available", controller.yearsAvailable)
		router.Post("export-candidates", controller.exportCandidates)
		router.Post("export-statistics-pdf", controller.exportStatisticsPdf)
	})
}

// @Summary Tablero de información personal
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.PersonalReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/personal [get]
func (c *reportApiController) personal(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Personal(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte personal")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tablero de educación
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.EducationReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/education [get]
func (c *reportApiController) education(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Education(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte de educación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tablero de experiencia laboral
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ExperienceReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/experience [get]
func (c *reportApiController) experience(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Experience(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte de experiencia")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tablero de conocimientos
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.KnowledgeReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/knowledge [get]
func (c *reportApiController) knowledge(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Knowledge(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte de conocimientos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tablero de preferencias
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.PreferencesReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/preferences [get]
func (c *reportApiController) preferences(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Preferences(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte de preferencias")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tablero del proceso de selección
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   year	query	int	false	"año de registro"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ProcessReport}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/process [get]
func (c *reportApiController) process(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Process(ctx.QueryInt("year"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el reporte del proceso")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Años con registros
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]int}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/years-available [get]
func (c *reportApiController) yearsAvailable(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.Years()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los años disponibles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exportación de candidatos a xlsx
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	reportapimodels.ExportRequest	true	"request body"
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/export-candidates [post]
func (c *reportApiController) exportCandidates(ctx *fiber.Ctx) error {
	var payload reportapimodels.ExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidate.Instance.ListSummaryAll(payload.Year)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error consultando los candidatos para exportar")
	}
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el xlsx de candidatos")
	}
	fileName := fmt.Sprintf("candidatos-%s.xlsx", uuid.NewString())
	archive(fileName, buf.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Exportación de estadísticas a PDF
// @Tags Reportes
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	reportapimodels.ExportRequest	true	"request body"
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/export-statistics-pdf [post]
func (c *reportApiController) exportStatisticsPdf(ctx *fiber.Ctx) error {
	var payload reportapimodels.ExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	doc, err := c.buildStatistics(payload.Year)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando las estadísticas")
	}
	content, err := pdfexport.Instance.ExportStatistics(doc)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el pdf de estadísticas")
	}
	fileName := fmt.Sprintf("estadisticas-%s.pdf", uuid.NewString())
	archive(fileName, content, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(content)
}

func (c *reportApiController) buildStatistics(year int) (pdfexport.StatisticsDocument, error) {
	doc := pdfexport.StatisticsDocument{Year: year}
	var err error
	if doc.Personal, err = reports.Instance.Personal(year); err != nil {
		return doc, err
	}
	if doc.Education, err = reports.Instance.Education(year); err != nil {
		return doc, err
	}
	if doc.Experience, err = reports.Instance.Experience(year); err != nil {
		return doc, err
	}
	if doc.Knowledge, err = reports.Instance.Knowledge(year); err != nil {
		return doc, err
	}
	if doc.Preferences, err = reports.Instance.Preferences(year); err != nil {
		return doc, err
	}
	if doc.Process, err = reports.Instance.Process(year); err != nil {
		return doc, err
	}
	return doc, nil
}

// archive guarda una copia del artefacto en S3 cuando el cliente está
// configurado; el fallo sólo se registra.
func archive(objectName string, content []byte, contentType string) {
	if filestorage.Instance == nil {
		return
	}
	err := filestorage.Instance.Archive(context.Background(), objectName, content, contentType)
	if err != nil {
		log.WithError(err).WithField("object", objectName).Error("error archivando la exportación")
	}
}
