package candidate

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	"talento-backend/db"
	candidatestore "talento-backend/lib/candidate/store"
	"talento-backend/lib/utils/helpers"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (candidateapimodels.CandidateView, error)
	Get(id uint) (candidateapimodels.CandidateView, error)
	List() ([]candidateapimodels.CandidateView, error)
	Update(id uint, data candidateapimodels.CandidateUpdateData) error
	Delete(id uint) error
	MarkFormComplete(id uint) (candidateapimodels.CandidateView, error)
	CleanupIncomplete() (int64, error)
	ListSummary(filter candidateapimodels.SummaryFilter) ([]candidateapimodels.SummaryView, int64, error)
	ListSummaryAll(year int) ([]candidateapimodels.SummaryView, error)
	GetDetail(id uint) (candidateapimodels.DetailView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       candidatestore.NewInstance(db.DB),
		gracePeriod: time.Duration(config.Conf.Cleanup.GraceHours) * time.Hour,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store       candidatestore.Provider
	gracePeriod time.Duration
}

func (i impl) Create(data candidateapimodels.CandidateData) (candidateapimodels.CandidateView, error) {
	birth, err := validateCreate(data, time.Now().UTC())
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	exists, err := i.store.ExistsByEmail(data.Email, 0)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if exists {
		return candidateapimodels.CandidateView{}, errors.Wrap(models.ErrConflict, "email")
	}
	exists, err = i.store.ExistsByCedula(data.Cedula, 0)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if exists {
		return candidateapimodels.CandidateView{}, errors.Wrap(models.ErrConflict, "cedula")
	}
	rec := dbmodels.Candidate{
		NombreCompleto:         data.NombreCompleto,
		Email:                  strings.ToLower(data.Email),
		Cedula:                 data.Cedula,
		FechaNacimiento:        birth,
		Telefono:               data.Telefono,
		CiudadID:               data.CiudadID,
		Perfil:                 data.Perfil,
		CargoOfrecidoID:        data.CargoOfrecidoID,
		TrabajaActualmenteAqui: data.TrabajaActualmenteAqui,
		HaTrabajadoAqui:        data.HaTrabajadoAqui,
		MotivoSalidaID:         data.MotivoSalidaID,
		TieneReferido:          data.TieneReferido,
		NombreReferido:         data.NombreReferido,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("email", data.Email).Error("error creando el candidato")
		return candidateapimodels.CandidateView{}, err
	}
	return candidateapimodels.CandidateConvert(created), nil
}

func (i impl) Get(id uint) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, models.ErrNotFound
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List() ([]candidateapimodels.CandidateView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) Update(id uint, data candidateapimodels.CandidateUpdateData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	updMap, err := i.buildUpdate(id, *rec, data)
	if err != nil {
		return err
	}
	return i.store.Update(id, updMap)
}

// buildUpdate valida y acumula sólo los campos presentes en el payload.
func (i impl) buildUpdate(id uint, current dbmodels.Candidate, data candidateapimodels.CandidateUpdateData) (map[string]interface{}, error) {
	updMap := map[string]interface{}{}
	if data.NombreCompleto != nil {
		if err := validateName("el nombre completo", *data.NombreCompleto); err != nil {
			return nil, err
		}
		updMap["nombre_completo"] = *data.NombreCompleto
	}
	if data.Email != nil {
		if err := validateEmail(*data.Email); err != nil {
			return nil, err
		}
		exists, err := i.store.ExistsByEmail(*data.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.Wrap(models.ErrConflict, "email")
		}
		updMap["email"] = strings.ToLower(*data.Email)
	}
	if data.Cedula != nil {
		if err := validateCedula(*data.Cedula); err != nil {
			return nil, err
		}
		exists, err := i.store.ExistsByCedula(*data.Cedula, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.Wrap(models.ErrConflict, "cedula")
		}
		updMap["cedula"] = *data.Cedula
	}
	if data.FechaNacimiento != nil {
		birth, err := validateBirthDate(*data.FechaNacimiento, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		updMap["fecha_nacimiento"] = birth
	}
	if data.Telefono != nil {
		if err := validatePhone(*data.Telefono); err != nil {
			return nil, err
		}
		updMap["telefono"] = *data.Telefono
	}
	if data.CiudadID != nil {
		updMap["ciudad_id"] = *data.CiudadID
	}
	if data.Perfil != nil {
		if err := validatePerfil(*data.Perfil); err != nil {
			return nil, err
		}
		updMap["perfil"] = *data.Perfil
	}
	if data.CargoOfrecidoID != nil {
		updMap["cargo_ofrecido_id"] = *data.CargoOfrecidoID
	}
	if data.TrabajaActualmenteAqui != nil {
		updMap["trabaja_actualmente_aqui"] = *data.TrabajaActualmenteAqui
	}
	if data.HaTrabajadoAqui != nil {
		updMap["ha_trabajado_aqui"] = *data.HaTrabajadoAqui
		if !*data.HaTrabajadoAqui {
			updMap["motivo_salida_id"] = nil
		}
	}
	if data.MotivoSalidaID != nil {
		haTrabajado := current.HaTrabajadoAqui
		if data.HaTrabajadoAqui != nil {
			haTrabajado = *data.HaTrabajadoAqui
		}
		if !haTrabajado {
			return nil, errors.Wrap(models.ErrValidation, "el motivo de salida sólo aplica si trabajó en la organización")
		}
		updMap["motivo_salida_id"] = *data.MotivoSalidaID
	}
	if data.TieneReferido != nil {
		updMap["tiene_referido"] = *data.TieneReferido
	}
	if data.NombreReferido != nil {
		if *data.NombreReferido != "" {
			if err := validateName("el nombre del referido", *data.NombreReferido); err != nil {
				return nil, err
			}
		}
		updMap["nombre_referido"] = *data.NombreReferido
	}
	if data.Estado != nil {
		estado := models.ProcessStatus(*data.Estado)
		if !estado.IsValid() {
			return nil, errors.Wrapf(models.ErrValidation, "estado desconocido: %q", *data.Estado)
		}
		updMap["estado"] = estado
	}
	return updMap, nil
}

func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}

// MarkFormComplete es idempotente; exige al menos una fila en cada tabla
// dependiente antes de la primera transición.
func (i impl) MarkFormComplete(id uint) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, models.ErrNotFound
	}
	if rec.FormularioCompleto {
		return candidateapimodels.CandidateConvert(*rec), nil
	}
	complete, err := i.store.HasAllDependents(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if !complete {
		return candidateapimodels.CandidateView{}, errors.Wrap(models.ErrValidation, "el formulario no tiene todas las secciones diligenciadas")
	}
	err = i.store.Update(id, map[string]interface{}{"formulario_completo": true})
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	rec.FormularioCompleto = true
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) CleanupIncomplete() (int64, error) {
	cutoff := time.Now().UTC().Add(-i.gracePeriod)
	deleted, err := i.store.DeleteIncompleteBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.WithField("eliminados", deleted).Info("limpieza de candidatos incompletos")
	}
	return deleted, nil
}

func (i impl) ListSummary(filter candidateapimodels.SummaryFilter) ([]candidateapimodels.SummaryView, int64, error) {
	filter.Skip, filter.Limit = filter.GetPage()
	recList, total, err := i.store.ListSummary(filter)
	if err != nil {
		return nil, 0, err
	}
	views, err := i.composeSummaries(recList)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// ListSummaryAll devuelve el conjunto completo bajo el filtro de año, sin
// paginar; lo consume la exportación.
func (i impl) ListSummaryAll(year int) ([]candidateapimodels.SummaryView, error) {
	filter := candidateapimodels.SummaryFilter{Year: year}
	filter.Limit = -1
	recList, _, err := i.store.ListSummary(filter)
	if err != nil {
		return nil, err
	}
	return i.composeSummaries(recList)
}

func (i impl) composeSummaries(recList []dbmodels.Candidate) ([]candidateapimodels.SummaryView, error) {
	ids := make([]uint, 0, len(recList))
	for _, rec := range recList {
		ids = append(ids, rec.ID)
	}
	educations, err := i.store.FirstEducations(ids)
	if err != nil {
		return nil, err
	}
	experiences, err := i.store.FirstExperiences(ids)
	if err != nil {
		return nil, err
	}
	preferences, err := i.store.FirstPreferences(ids)
	if err != nil {
		return nil, err
	}
	knowledge, err := i.store.KnowledgeByCandidate(ids)
	if err != nil {
		return nil, err
	}

	result := make([]candidateapimodels.SummaryView, 0, len(recList))
	for _, rec := range recList {
		view := candidateapimodels.SummaryView{
			ID:                     rec.ID,
			NombreCompleto:         rec.NombreCompleto,
			Email:                  rec.Email,
			Telefono:               rec.Telefono,
			TrabajaActualmenteAqui: rec.TrabajaActualmenteAqui,
			FechaRegistro:          rec.FechaRegistro,
			Estado:                 rec.Estado,
			HabilidadesBlandas:     []string{},
			HabilidadesTecnicas:    []string{},
			Herramientas:           []string{},
		}
		if rec.Ciudad != nil {
			view.Ciudad = rec.Ciudad.Nombre
		}
		if rec.CargoOfrecido != nil {
			view.CargoOfrecido = rec.CargoOfrecido.Nombre
		}
		if edu, ok := educations[rec.ID]; ok {
			if edu.NivelEducativo != nil {
				view.NivelEducativo = edu.NivelEducativo.Nombre
			}
			view.Titulo = edu.TituloNombre()
		}
		if exp, ok := experiences[rec.ID]; ok && exp.RangoExperiencia != nil {
			view.RangoExperiencia = exp.RangoExperiencia.Nombre
		}
		if pref, ok := preferences[rec.ID]; ok && pref.Disponibilidad != nil {
			view.Disponibilidad = pref.Disponibilidad.Nombre
		}
		soft, tech, tools := knowledgeNames(knowledge[rec.ID])
		view.HabilidadesBlandas = soft
		view.HabilidadesTecnicas = tech
		view.Herramientas = tools
		result = append(result, view)
	}
	return result, nil
}

func knowledgeNames(rows []dbmodels.Knowledge) (soft, tech, tools []string) {
	soft = []string{}
	tech = []string{}
	tools = []string{}
	for _, row := range rows {
		switch {
		case row.HabilidadBlanda != nil:
			soft = append(soft, row.HabilidadBlanda.Nombre)
		case row.HabilidadTecnica != nil:
			tech = append(tech, row.HabilidadTecnica.Nombre)
		case row.Herramienta != nil:
			tools = append(tools, row.Herramienta.Nombre)
		}
	}
	return helpers.Dedup(soft), helpers.Dedup(tech), helpers.Dedup(tools)
}

func (i impl) GetDetail(id uint) (candidateapimodels.DetailView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.DetailView{}, err
	}
	if rec == nil {
		return candidateapimodels.DetailView{}, models.ErrNotFound
	}
	view := candidateapimodels.DetailView{
		CandidateView:       candidateapimodels.CandidateConvert(*rec),
		HabilidadesBlandas:  []string{},
		HabilidadesTecnicas: []string{},
		Herramientas:        []string{},
	}
	if rec.Ciudad != nil {
		view.Ciudad = rec.Ciudad.Nombre
	}
	if rec.CargoOfrecido != nil {
		view.CargoOfrecidoNombre = rec.CargoOfrecido.Nombre
	}
	if rec.MotivoSalida != nil {
		view.MotivoSalida = rec.MotivoSalida.Nombre
	}

	ids := []uint{id}
	educations, err := i.store.FirstEducations(ids)
	if err != nil {
		return candidateapimodels.DetailView{}, err
	}
	if edu, ok := educations[id]; ok {
		detail := candidateapimodels.EducationDetail{
			Titulo:         edu.TituloNombre(),
			Institucion:    edu.InstitucionNombre(),
			AnioGraduacion: edu.AnioGraduacion,
		}
		if edu.NivelEducativo != nil {
			detail.NivelEducativo = edu.NivelEducativo.Nombre
		}
		if edu.NivelIngles != nil {
			detail.NivelIngles = edu.NivelIngles.Nombre
		}
		view.Educacion = &detail
	}

	experiences, err := i.store.FirstExperiences(ids)
	if err != nil {
		return candidateapimodels.DetailView{}, err
	}
	if exp, ok := experiences[id]; ok {
		detail := candidateapimodels.ExperienceDetail{
			UltimaEmpresa:     exp.UltimaEmpresa,
			UltimoCargo:       exp.UltimoCargo,
			Responsabilidades: exp.Responsabilidades,
			FechaInicio:       exp.FechaInicio.Format(candidateapimodels.DateLayout),
		}
		if exp.RangoExperiencia != nil {
			detail.RangoExperiencia = exp.RangoExperiencia.Nombre
		}
		if exp.FechaFin != nil {
			fin := exp.FechaFin.Format(candidateapimodels.DateLayout)
			detail.FechaFin = &fin
		}
		view.Experiencia = &detail
	}

	knowledge, err := i.store.KnowledgeByCandidate(ids)
	if err != nil {
		return candidateapimodels.DetailView{}, err
	}
	view.HabilidadesBlandas, view.HabilidadesTecnicas, view.Herramientas = knowledgeNames(knowledge[id])

	preferences, err := i.store.FirstPreferences(ids)
	if err != nil {
		return candidateapimodels.DetailView{}, err
	}
	if pref, ok := preferences[id]; ok {
		detail := candidateapimodels.PreferencesDetail{
			DispuestoViajar:    pref.DispuestoViajar,
			TrabajaActualmente: pref.TrabajaActualmente,
			Razon:              pref.Razon,
		}
		if pref.Disponibilidad != nil {
			detail.Disponibilidad = pref.Disponibilidad.Nombre
		}
		if pref.RangoSalarial != nil {
			detail.RangoSalarial = pref.RangoSalarial.Nombre
		}
		if pref.MotivoSalida != nil {
			detail.MotivoSalida = pref.MotivoSalida.Nombre
		}
		view.Preferencias = &detail
	}
	return view, nil
}
