package deletionrequest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	"talento-backend/db"
	drstore "talento-backend/lib/deletionrequest/store"
	smtpclient "talento-backend/lib/smtp"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	drapimodels "talento-backend/models/api/deletionrequest"
	reportapimodels "talento-backend/models/api/report"
	dbmodels "talento-backend/models/db"
)

var cedulaRegex = regexp.MustCompile(`^[0-9]{6,10}$`)

type Provider interface {
	Create(data drapimodels.DeletionRequestData) (drapimodels.DeletionRequestView, error)
	List(filter drapimodels.Filter) ([]drapimodels.DeletionRequestView, int64, error)
	Update(id uint, data drapimodels.UpdateData) (drapimodels.DeletionRequestView, error)
	Stats() (reportapimodels.DeletionRequestStats, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       drstore.NewInstance(db.DB),
		notifyEmail: config.Conf.Smtp.NotifyEmail,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store       drstore.Provider
	notifyEmail string
}

func (i impl) Create(data drapimodels.DeletionRequestData) (drapimodels.DeletionRequestView, error) {
	if strings.TrimSpace(data.NombreCompleto) == "" {
		return drapimodels.DeletionRequestView{}, errors.Wrap(models.ErrValidation, "falta el nombre completo")
	}
	if !cedulaRegex.MatchString(data.Cedula) {
		return drapimodels.DeletionRequestView{}, errors.Wrapf(models.ErrValidation, "cédula inválida: %q", data.Cedula)
	}
	if !strings.Contains(data.Email, "@") {
		return drapimodels.DeletionRequestView{}, errors.Wrapf(models.ErrValidation, "correo inválido: %q", data.Email)
	}
	if !data.Motivo.IsValid() {
		return drapimodels.DeletionRequestView{}, errors.Wrapf(models.ErrValidation, "motivo desconocido: %q", data.Motivo)
	}
	rec := dbmodels.DeletionRequest{
		NombreCompleto: data.NombreCompleto,
		Cedula:         data.Cedula,
		Email:          strings.ToLower(data.Email),
		Motivo:         data.Motivo,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		return drapimodels.DeletionRequestView{}, err
	}
	i.notify(created)
	return drapimodels.DeletionRequestConvert(created), nil
}

// notify avisa al equipo de talento humano; el fallo del correo no tumba la
// creación de la solicitud.
func (i impl) notify(rec dbmodels.DeletionRequest) {
	if i.notifyEmail == "" || smtpclient.Instance == nil {
		return
	}
	message := fmt.Sprintf("Nueva solicitud de %s (cédula %s, motivo: %s)", rec.NombreCompleto, rec.Cedula, rec.Motivo)
	err := smtpclient.Instance.SendEMail(rec.Email, i.notifyEmail, message, "Solicitud de eliminación de datos")
	if err != nil {
		log.WithError(err).WithField("solicitud_id", rec.ID).Error("error notificando la solicitud")
	}
}

func (i impl) List(filter drapimodels.Filter) ([]drapimodels.DeletionRequestView, int64, error) {
	if filter.State != "" && !models.RequestState(filter.State).IsValid() {
		return nil, 0, errors.Wrapf(models.ErrValidation, "estado desconocido: %q", filter.State)
	}
	filter.Skip, filter.Limit = filter.GetPage()
	rows, total, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]drapimodels.DeletionRequestView, 0, len(rows))
	for _, row := range rows {
		result = append(result, drapimodels.DeletionRequestConvert(row))
	}
	return result, total, nil
}

func (i impl) Update(id uint, data drapimodels.UpdateData) (drapimodels.DeletionRequestView, error) {
	if !data.State.IsValid() {
		return drapimodels.DeletionRequestView{}, errors.Wrapf(models.ErrValidation, "estado desconocido: %q", data.State)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return drapimodels.DeletionRequestView{}, err
	}
	if rec == nil {
		return drapimodels.DeletionRequestView{}, models.ErrNotFound
	}
	if rec.Estado != models.RequestStatePending && rec.Estado != data.State {
		return drapimodels.DeletionRequestView{}, errors.Wrap(models.ErrConflict, "la solicitud ya fue moderada")
	}
	updMap := map[string]interface{}{
		"estado": data.State,
		"nota":   data.Note,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return drapimodels.DeletionRequestView{}, err
	}
	rec.Estado = data.State
	rec.Nota = data.Note
	return drapimodels.DeletionRequestConvert(*rec), nil
}

func (i impl) Stats() (reportapimodels.DeletionRequestStats, error) {
	total, err := i.store.Count()
	if err != nil {
		return reportapimodels.DeletionRequestStats{}, err
	}
	byState, err := i.store.CountByColumn("estado")
	if err != nil {
		return reportapimodels.DeletionRequestStats{}, err
	}
	byMotive, err := i.store.CountByColumn("motivo")
	if err != nil {
		return reportapimodels.DeletionRequestStats{}, err
	}
	return reportapimodels.DeletionRequestStats{
		Total:     total,
		PorEstado: byState,
		PorMotivo: byMotive,
	}, nil
}
