package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	candidateapimodels "talento-backend/models/api/candidate"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.SummaryView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{
	"Nombre completo", "Correo", "Teléfono", "Ciudad", "Cargo ofrecido",
	"Nivel educativo", "Título", "Rango de experiencia", "Habilidades blandas",
	"Habilidades técnicas", "Herramientas", "Disponibilidad",
	"Trabaja actualmente aquí", "Fecha de registro", "Estado",
}

func (i impl) ExportCandidateList(list []candidateapimodels.SummaryView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error cerrando el archivo")
		}
	}()
	writer := sheetWriter{file: f, sheet: "Sheet1"}
	if err := writer.writeHeaderRow(1, candidateHeaders); err != nil {
		return nil, errors.Wrap(err, "error escribiendo el encabezado del xlsx")
	}
	if len(list) != 0 {
		if err := writeCandidateData(writer, list); err != nil {
			return nil, errors.Wrap(err, "error escribiendo los datos del xlsx")
		}
	}
	f.SetSheetName(writer.sheet, "Candidatos")
	return f.WriteToBuffer()
}

func writeCandidateData(writer sheetWriter, list []candidateapimodels.SummaryView) error {
	if err := writer.styleDataRange(1, 2, len(candidateHeaders), len(list)+1); err != nil {
		return err
	}
	for idx, item := range list {
		siNo := "No"
		if item.TrabajaActualmenteAqui {
			siNo = "Sí"
		}
		values := []interface{}{
			item.NombreCompleto,
			item.Email,
			item.Telefono,
			item.Ciudad,
			item.CargoOfrecido,
			item.NivelEducativo,
			item.Titulo,
			item.RangoExperiencia,
			strings.Join(item.HabilidadesBlandas, ", "),
			strings.Join(item.HabilidadesTecnicas, ", "),
			strings.Join(item.Herramientas, ", "),
			item.Disponibilidad,
			siNo,
			item.FechaRegistro.Format("02/01/2006"),
			string(item.Estado),
		}
		if err := writer.writeRow(idx+2, values); err != nil {
			return err
		}
	}
	return nil
}
