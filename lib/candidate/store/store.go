package candidatestore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talento-backend/models"
	candidateapimodels "talento-backend/models/api/candidate"
	dbmodels "talento-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (dbmodels.Candidate, error)
	GetByID(id uint) (*dbmodels.Candidate, error)
	List() ([]dbmodels.Candidate, error)
	Update(id uint, updMap map[string]interface{}) error
	Delete(id uint) error
	ExistsByEmail(email string, selfID uint) (bool, error)
	ExistsByCedula(cedula string, selfID uint) (bool, error)
	HasAllDependents(id uint) (bool, error)
	DeleteIncompleteBefore(cutoff time.Time) (int64, error)
	ListSummary(filter candidateapimodels.SummaryFilter) ([]dbmodels.Candidate, int64, error)
	FirstEducations(candidateIDs []uint) (map[uint]dbmodels.Education, error)
	FirstExperiences(candidateIDs []uint) (map[uint]dbmodels.WorkExperience, error)
	FirstPreferences(candidateIDs []uint) (map[uint]dbmodels.Preferences, error)
	KnowledgeByCandidate(candidateIDs []uint) (map[uint][]dbmodels.Knowledge, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (dbmodels.Candidate, error) {
	rec.Email = strings.ToLower(rec.Email)
	rec.FechaRegistro = time.Now().UTC()
	rec.Estado = models.StatusEnProceso
	rec.FormularioCompleto = false
	err := i.db.Omit(clause.Associations).Create(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dbmodels.Candidate{}, errors.Wrap(models.ErrConflict, "email o cédula")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dbmodels.Candidate{}, errors.Wrap(models.ErrConflict, "referencia de catálogo inexistente")
		}
		return dbmodels.Candidate{}, errors.Wrap(err, "error creando el candidato")
	}
	return rec, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Candidate, error) {
	var rec dbmodels.Candidate
	err := i.db.
		Preload(clause.Associations).
		First(&rec, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() ([]dbmodels.Candidate, error) {
	var result []dbmodels.Candidate
	err := i.db.Model(dbmodels.Candidate{}).Order("id").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los candidatos")
	}
	return result, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return errors.Wrap(models.ErrConflict, "email o cédula")
		}
		if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
			return errors.Wrap(models.ErrConflict, "referencia de catálogo inexistente")
		}
		return errors.Wrap(tx.Error, "error actualizando el candidato")
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete elimina el agregado completo en una sola transacción.
func (i impl) Delete(id uint) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		return deleteAggregate(tx, []uint{id})
	})
}

func deleteAggregate(tx *gorm.DB, ids []uint) error {
	dependents := []interface{}{
		&dbmodels.Education{},
		&dbmodels.WorkExperience{},
		&dbmodels.Knowledge{},
		&dbmodels.Preferences{},
	}
	for _, model := range dependents {
		if err := tx.Where("candidato_id IN ?", ids).Delete(model).Error; err != nil {
			return errors.Wrap(err, "error eliminando los sub-registros del candidato")
		}
	}
	res := tx.Where("id IN ?", ids).Delete(&dbmodels.Candidate{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "error eliminando el candidato")
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) ExistsByEmail(email string, selfID uint) (bool, error) {
	return i.exists("email = ?", strings.ToLower(email), selfID)
}

func (i impl) ExistsByCedula(cedula string, selfID uint) (bool, error) {
	return i.exists("cedula = ?", cedula, selfID)
}

func (i impl) exists(cond, value string, selfID uint) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Candidate{}).Where(cond, value)
	if selfID != 0 {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "error verificando unicidad del candidato")
	}
	return rowCount > 0, nil
}

// HasAllDependents verifica la precondición de formulario completo: al menos
// una fila en cada tabla dependiente.
func (i impl) HasAllDependents(id uint) (bool, error) {
	dependents := []interface{}{
		&dbmodels.Education{},
		&dbmodels.WorkExperience{},
		&dbmodels.Knowledge{},
		&dbmodels.Preferences{},
	}
	for _, model := range dependents {
		var rowCount int64
		err := i.db.Model(model).Where("candidato_id = ?", id).Count(&rowCount).Error
		if err != nil {
			return false, errors.Wrap(err, "error verificando las secciones del formulario")
		}
		if rowCount == 0 {
			return false, nil
		}
	}
	return true, nil
}

// DeleteIncompleteBefore borra los candidatos con formulario incompleto
// registrados antes del corte; devuelve cuántos se eliminaron.
func (i impl) DeleteIncompleteBefore(cutoff time.Time) (int64, error) {
	var deleted int64
	err := i.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Model(dbmodels.Candidate{}).
			Where("formulario_completo = ?", false).
			Where("fecha_registro < ?", cutoff).
			Pluck("id", &ids).
			Error
		if err != nil {
			return errors.Wrap(err, "error buscando candidatos incompletos")
		}
		if len(ids) == 0 {
			return nil
		}
		if err := deleteAggregate(tx, ids); err != nil {
			return err
		}
		deleted = int64(len(ids))
		return nil
	})
	return deleted, err
}

func (i impl) ListSummary(filter candidateapimodels.SummaryFilter) ([]dbmodels.Candidate, int64, error) {
	tx := i.db.Model(dbmodels.Candidate{})
	i.addSummaryFilter(tx, filter)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "error contando los candidatos")
	}

	switch filter.SortByDate {
	case "old":
		tx.Order("fecha_registro asc, id asc")
	default:
		// "recent" y el orden por omisión: los registros nuevos primero
		tx.Order("fecha_registro desc, id desc")
	}
	if filter.Limit > 0 {
		tx.Offset(filter.Skip).Limit(filter.Limit)
	}

	var list []dbmodels.Candidate
	err := tx.
		Preload("Ciudad").
		Preload("CargoOfrecido").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "error consultando el resumen de candidatos")
	}
	return list, total, nil
}

// addSummaryFilter aplica las opciones de la grilla; los filtros sobre
// sub-registros usan EXISTS para no duplicar candidatos.
func (i impl) addSummaryFilter(tx *gorm.DB, filter candidateapimodels.SummaryFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(nombre_completo) like ? or LOWER(email) like ? or cedula like ?",
			searchValue, searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("estado = ?", filter.Status)
	}
	if filter.JobID != 0 {
		tx.Where("cargo_ofrecido_id = ?", filter.JobID)
	}
	if filter.CityID != 0 {
		tx.Where("ciudad_id = ?", filter.CityID)
	}
	if filter.WorksHere != nil {
		tx.Where("trabaja_actualmente_aqui = ?", *filter.WorksHere)
	}
	if filter.Year != 0 {
		tx.Where("EXTRACT(YEAR FROM fecha_registro) = ?", filter.Year)
	}
	if filter.AvailabilityID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM preferencias p WHERE p.candidato_id = candidatos.id AND p.disponibilidad_id = ?)", filter.AvailabilityID)
	}
	if filter.ToolID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM conocimientos k WHERE k.candidato_id = candidatos.id AND k.tipo = ? AND k.herramienta_id = ?)", models.KnowledgeKindTool, filter.ToolID)
	}
	if filter.TechSkillID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM conocimientos k WHERE k.candidato_id = candidatos.id AND k.tipo = ? AND k.habilidad_tecnica_id = ?)", models.KnowledgeKindTechnical, filter.TechSkillID)
	}
	if filter.EnglishLevelID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM educaciones e WHERE e.candidato_id = candidatos.id AND e.nivel_ingles_id = ?)", filter.EnglishLevelID)
	}
	if filter.TitleID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM educaciones e WHERE e.candidato_id = candidatos.id AND e.titulo_id = ?)", filter.TitleID)
	}
	if filter.ExperienceRangeID != 0 {
		tx.Where("EXISTS (SELECT 1 FROM experiencias_laborales x WHERE x.candidato_id = candidatos.id AND x.rango_experiencia_id = ?)", filter.ExperienceRangeID)
	}
}

// FirstEducations devuelve la primera educación (id ascendente) por candidato.
func (i impl) FirstEducations(candidateIDs []uint) (map[uint]dbmodels.Education, error) {
	if len(candidateIDs) == 0 {
		return map[uint]dbmodels.Education{}, nil
	}
	var rows []dbmodels.Education
	err := i.db.
		Where("candidato_id IN ?", candidateIDs).
		Order("candidato_id asc, id asc").
		Preload(clause.Associations).
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las educaciones")
	}
	result := make(map[uint]dbmodels.Education, len(candidateIDs))
	for _, row := range rows {
		if _, ok := result[row.CandidatoID]; !ok {
			result[row.CandidatoID] = row
		}
	}
	return result, nil
}

func (i impl) FirstExperiences(candidateIDs []uint) (map[uint]dbmodels.WorkExperience, error) {
	if len(candidateIDs) == 0 {
		return map[uint]dbmodels.WorkExperience{}, nil
	}
	var rows []dbmodels.WorkExperience
	err := i.db.
		Where("candidato_id IN ?", candidateIDs).
		Order("candidato_id asc, id asc").
		Preload(clause.Associations).
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las experiencias")
	}
	result := make(map[uint]dbmodels.WorkExperience, len(candidateIDs))
	for _, row := range rows {
		if _, ok := result[row.CandidatoID]; !ok {
			result[row.CandidatoID] = row
		}
	}
	return result, nil
}

func (i impl) FirstPreferences(candidateIDs []uint) (map[uint]dbmodels.Preferences, error) {
	if len(candidateIDs) == 0 {
		return map[uint]dbmodels.Preferences{}, nil
	}
	var rows []dbmodels.Preferences
	err := i.db.
		Where("candidato_id IN ?", candidateIDs).
		Order("candidato_id asc, id asc").
		Preload(clause.Associations).
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando las preferencias")
	}
	result := make(map[uint]dbmodels.Preferences, len(candidateIDs))
	for _, row := range rows {
		if _, ok := result[row.CandidatoID]; !ok {
			result[row.CandidatoID] = row
		}
	}
	return result, nil
}

func (i impl) KnowledgeByCandidate(candidateIDs []uint) (map[uint][]dbmodels.Knowledge, error) {
	if len(candidateIDs) == 0 {
		return map[uint][]dbmodels.Knowledge{}, nil
	}
	var rows []dbmodels.Knowledge
	err := i.db.
		Where("candidato_id IN ?", candidateIDs).
		Order("candidato_id asc, id asc").
		Preload(clause.Associations).
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error consultando los conocimientos")
	}
	result := make(map[uint][]dbmodels.Knowledge, len(candidateIDs))
	for _, row := range rows {
		result[row.CandidatoID] = append(result[row.CandidatoID], row)
	}
	return result, nil
}
