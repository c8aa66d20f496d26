package reportapimodels

// LabelCount es una etiqueta con su total en el alcance anual.
type LabelCount struct {
	Etiqueta string `json:"etiqueta"`
	Total    int64  `json:"total"`
}

// MonthCount es el total de un mes calendario (1..12).
type MonthCount struct {
	Mes   int   `json:"mes"`
	Total int64 `json:"total"`
}

// MonthlyTop es la etiqueta más frecuente de un mes; los meses sin datos
// no se emiten.
type MonthlyTop struct {
	Mes      int    `json:"mes"`
	Etiqueta string `json:"etiqueta"`
	Total    int64  `json:"total"`
}

type PersonalCounters struct {
	ConReferido            int64 `json:"con_referido"`
	SinReferido            int64 `json:"sin_referido"`
	FormularioCompleto     int64 `json:"formulario_completo"`
	FormularioIncompleto   int64 `json:"formulario_incompleto"`
	TrabajaActualmenteAqui int64 `json:"trabaja_actualmente_aqui"`
	HaTrabajadoAqui        int64 `json:"ha_trabajado_aqui"`
}

type PersonalReport struct {
	TopCiudadesAnual    []LabelCount     `json:"top_ciudades_anual"`
	TopCiudadesMensual  []MonthlyTop     `json:"top_ciudades_mensual"`
	TopCargosAnual      []LabelCount     `json:"top_cargos_anual"`
	TopCargosMensual    []MonthlyTop     `json:"top_cargos_mensual"`
	TopReferidosAnual   []LabelCount     `json:"top_referidos_anual"`
	TopReferidosMensual []MonthlyTop     `json:"top_referidos_mensual"`
	RangosEdad          []LabelCount     `json:"rangos_edad"`
	RangosEdadMensual   []MonthlyTop     `json:"rangos_edad_mensual"`
	EstadosAnual        []LabelCount     `json:"estados_anual"`
	Contadores          PersonalCounters `json:"contadores"`
}

type EducationReport struct {
	TopNivelesAnual          []LabelCount `json:"top_niveles_anual"`
	TopNivelesMensual        []MonthlyTop `json:"top_niveles_mensual"`
	TopTitulosAnual          []LabelCount `json:"top_titulos_anual"`
	TopTitulosMensual        []MonthlyTop `json:"top_titulos_mensual"`
	TopInstitucionesAnual    []LabelCount `json:"top_instituciones_anual"`
	TopInstitucionesMensual  []MonthlyTop `json:"top_instituciones_mensual"`
	NivelesIngles            []LabelCount `json:"niveles_ingles"`
	NivelesInglesMensual     []MonthlyTop `json:"niveles_ingles_mensual"`
	AniosGraduacion          []LabelCount `json:"anios_graduacion"` // todo el histórico, sin corte mensual
}

type ExperienceReport struct {
	TopRangosAnual      []LabelCount `json:"top_rangos_anual"`
	TopRangosMensual    []MonthlyTop `json:"top_rangos_mensual"`
	TopCargosAnual      []LabelCount `json:"top_cargos_anual"`
	TopCargosMensual    []MonthlyTop `json:"top_cargos_mensual"`
	TopEmpresasAnual    []LabelCount `json:"top_empresas_anual"`
	TopEmpresasMensual  []MonthlyTop `json:"top_empresas_mensual"`
	Duraciones          []LabelCount `json:"duraciones"`
	DuracionesMensual   []MonthlyTop `json:"duraciones_mensual"`
}

type KnowledgeReport struct {
	TopBlandasAnual       []LabelCount `json:"top_blandas_anual"`
	TopBlandasMensual     []MonthlyTop `json:"top_blandas_mensual"`
	TopTecnicasAnual      []LabelCount `json:"top_tecnicas_anual"`
	TopTecnicasMensual    []MonthlyTop `json:"top_tecnicas_mensual"`
	TopHerramientasAnual  []LabelCount `json:"top_herramientas_anual"`
	TopHerramientasMensual []MonthlyTop `json:"top_herramientas_mensual"`
}

type PreferencesReport struct {
	TopDisponibilidadesAnual   []LabelCount `json:"top_disponibilidades_anual"`
	TopDisponibilidadesMensual []MonthlyTop `json:"top_disponibilidades_mensual"`
	TopRangosSalarialesAnual   []LabelCount `json:"top_rangos_salariales_anual"`
	TopRangosSalarialesMensual []MonthlyTop `json:"top_rangos_salariales_mensual"`
	TopMotivosSalidaAnual      []LabelCount `json:"top_motivos_salida_anual"`
	TopMotivosSalidaMensual    []MonthlyTop `json:"top_motivos_salida_mensual"`
	DispuestoViajar            []LabelCount `json:"dispuesto_viajar"`
	DispuestoViajarMensual     []MonthlyTop `json:"dispuesto_viajar_mensual"`
	TrabajaActualmente         []LabelCount `json:"trabaja_actualmente"`
	TrabajaActualmenteMensual  []MonthlyTop `json:"trabaja_actualmente_mensual"`
}

type ProcessReport struct {
	CandidatosPorMes  []MonthCount `json:"candidatos_por_mes"`
	TopEstadosAnual   []LabelCount `json:"top_estados_anual"`
	TopEstadosMensual []MonthlyTop `json:"top_estados_mensual"`
}

type DeletionRequestStats struct {
	Total     int64            `json:"total"`
	PorEstado map[string]int64 `json:"por_estado"`
	PorMotivo map[string]int64 `json:"por_motivo"`
}

type ExportRequest struct {
	Year int `json:"year"`
}
