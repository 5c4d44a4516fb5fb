package domain

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type HealthResponse struct {
	Status  string         `json:"status"`
	Ready   bool           `json:"ready"`
	Message string         `json:"message"`
	Data    map[string]int `json:"data"`
}

type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   DataStats `json:"stats"`
}

// MonthTotal is one point of a monthly series.
type MonthTotal struct {
	Month Month   `json:"mes"`
	Tons  float64 `json:"toneladas"`
}

type SpeciesTotal struct {
	Species string  `json:"especie"`
	Tons    float64 `json:"toneladas"`
}

// ExplorerStats are the summary statistics over a filtered dataset.
type ExplorerStats struct {
	TotalRecords       int     `json:"totalRegistros"`
	DistinctYears      int     `json:"añosUnicos"`
	DistinctRegions    int     `json:"regionesUnicas"`
	DistinctSpecies    int     `json:"especiesUnicas"`
	TotalTons          float64 `json:"toneladasTotales"`
	TotalRawTons       float64 `json:"toneladasMPTotales"`
	TotalElaboratedTon float64 `json:"toneladasElaboradasTotales"`
	DistinctPlants     int     `json:"plantasUnicas"`
}

type ExplorerCharts struct {
	ByMonth   []MonthTotal   `json:"porMes"`
	BySpecies []SpeciesTotal `json:"porEspecie"`
}

type ExplorerResult struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message,omitempty"`
	DatasetType string         `json:"tipo_dato"`
	Filters     Filters        `json:"filtros"`
	Stats       ExplorerStats  `json:"estadisticas"`
	Charts      ExplorerCharts `json:"graficos"`
}

type ExplorerOptions struct {
	Years            []Year   `json:"años_disponibles"`
	Species          []string `json:"especies_disponibles"`
	ElaborationTypes []string `json:"tipos_elaboracion"`
}

type ExplorerOptionsResponse struct {
	Success bool            `json:"success"`
	Options ExplorerOptions `json:"opciones"`
}

type LandingKPIs struct {
	TotalTons       float64 `json:"cosechaTotal"`
	MonthsWithData  int     `json:"mesesConDatos"`
	DetectedSpecies int     `json:"especiesDetectadas"`
}

// LandingSummary is the legacy /cosechas payload.
type LandingSummary struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message,omitempty"`
	Filters      Filters        `json:"filters"`
	KPIs         LandingKPIs    `json:"kpis"`
	MonthlyChart []MonthTotal   `json:"grafico_mensual"`
	SpeciesChart []SpeciesTotal `json:"grafico_especies"`
}

// AnalysisMetadata echoes the parameters an analysis ran with.
type AnalysisMetadata struct {
	Year            *Year     `json:"year"`
	Region          *string   `json:"region"`
	TopN            int       `json:"top_n,omitempty"`
	CurrentYear     Year      `json:"current_year,omitempty"`
	StartYear       Year      `json:"start_year,omitempty"`
	EndYear         Year      `json:"end_year,omitempty"`
	MinRawTons      float64   `json:"min_materia_prima,omitempty"`
	SeasonalAverage string    `json:"seasonal_average,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Analysis is the envelope shared by the cosechas and general analyses.
type Analysis[D any, S any] struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message,omitempty"`
	AnalysisType string           `json:"analysis_type"`
	Metadata     AnalysisMetadata `json:"metadata"`
	Data         D                `json:"data"`
	Summary      S                `json:"summary"`
}

type AgentShare struct {
	AgentType string  `json:"tipo_agente"`
	Tons      float64 `json:"toneladas"`
	Percent   float64 `json:"porcentaje"`
}

type AgentSummary struct {
	TotalTons       float64 `json:"total_toneladas"`
	AgentTypes      int     `json:"num_tipos_agente"`
	Dominant        *string `json:"tipo_dominante"`
	DominantPercent float64 `json:"porcentaje_dominante"`
}

type PortRank struct {
	Port string  `json:"puerto"`
	Tons float64 `json:"toneladas"`
	Rank int     `json:"ranking"`
}

type PortSummary struct {
	TopNTons           float64 `json:"total_toneladas_top_n"`
	TotalTons          float64 `json:"total_toneladas_general"`
	ConcentrationShare float64 `json:"porcentaje_concentracion"`
	PortCount          int     `json:"num_puertos_total"`
	Leader             *string `json:"puerto_lider"`
}

// SpeciesAgentRow is one pivot row: tons per agent type plus the row total.
// It marshals flat, one key per agent type, the shape stacked bar charts consume.
type SpeciesAgentRow struct {
	Species string
	ByAgent map[string]float64
	Total   float64
}

func (r SpeciesAgentRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.ByAgent)+2)
	for agent, tons := range r.ByAgent {
		flat[agent] = tons
	}
	flat["especie"] = r.Species
	flat["total"] = r.Total
	return json.Marshal(flat)
}

type SpeciesAgentSummary struct {
	SpeciesCount int                `json:"num_especies"`
	AgentTypes   []string           `json:"tipos_agente"`
	TotalTons    float64            `json:"total_toneladas"`
	Leader       *string            `json:"especie_lider"`
	ShareByAgent map[string]float64 `json:"participacion_por_tipo"`
}

type SeasonalMonth struct {
	Month         Month   `json:"mes"`
	MonthName     string  `json:"mes_nombre"`
	Current       float64 `json:"actual"`
	Historical    float64 `json:"historico"`
	Difference    float64 `json:"diferencia"`
	PercentChange float64 `json:"variacion_porcentual"`
}

type SeasonalSummary struct {
	CurrentYear         Year    `json:"año_actual"`
	HistoricalYears     int     `json:"años_historicos_incluidos"`
	TotalCurrent        float64 `json:"total_actual"`
	TotalHistorical     float64 `json:"total_historico"`
	TotalDifference     float64 `json:"diferencia_total"`
	YearlyChange        float64 `json:"variacion_anual"`
	PeakCurrentMonth    string  `json:"mes_mayor_actual"`
	PeakHistoricalMonth string  `json:"mes_mayor_historico"`
}

type PanoramaKPIs struct {
	TotalLanded    float64 `json:"totalCosechado"`
	TotalProcessed float64 `json:"totalProcesado"`
	PlantCount     int     `json:"numeroPlantas"`
}

type YearPoint struct {
	Year       Year    `json:"año"`
	LandedTons float64 `json:"cosechaTotal"`
	Plants     int     `json:"capacidadPlantas"`
}

type RegionPanorama struct {
	Region string `json:"region"`
	PanoramaKPIs
}

type Panorama struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Region     string           `json:"region"`
	KPIs       PanoramaKPIs     `json:"kpis"`
	YearSeries []YearPoint      `json:"grafico_anual"`
	TopSpecies []SpeciesTotal   `json:"principales_especies"`
	Regions    []RegionPanorama `json:"regiones"`
}

type SupplyDemandRow struct {
	Year        Year    `json:"año"`
	Species     string  `json:"especie"`
	Landed      float64 `json:"capturas"`
	RawMaterial float64 `json:"materia_prima"`
	Delta       float64 `json:"delta"`
	UsedPercent float64 `json:"porcentaje_utilizado"`
}

type SupplyDemandSummary struct {
	TotalLanded        float64 `json:"total_capturas"`
	TotalRawMaterial   float64 `json:"total_materia_prima"`
	TotalDelta         float64 `json:"delta_total"`
	AverageUsedPercent float64 `json:"porcentaje_utilizado_promedio"`
	SpeciesCount       int     `json:"especies_analizadas"`
	YearCount          int     `json:"años_analizados"`
}

type ConversionRow struct {
	Species         string  `json:"especie"`
	ElaborationType string  `json:"linea_elaboracion"`
	RawTons         float64 `json:"materia_prima"`
	ElaboratedTons  float64 `json:"produccion"`
	Yield           float64 `json:"yield"`
}

type ConversionSummary struct {
	AverageYield float64 `json:"yield_promedio"`
	MaxYield     float64 `json:"yield_maximo"`
	MinYield     float64 `json:"yield_minimo"`
	Combinations int     `json:"combinaciones_analizadas"`
	SpeciesCount int     `json:"especies_unicas"`
}

// AgentShareRow is one region of the agent-type pivot. Like SpeciesAgentRow it
// marshals flat: one key per agent type plus "<AGENT>_PCT" with its share of the row.
type AgentShareRow struct {
	Region  string
	ByAgent map[string]float64
	Percent map[string]float64
	Total   float64
}

func (r AgentShareRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, 2*len(r.ByAgent)+2)
	for agent, tons := range r.ByAgent {
		flat[agent] = tons
	}
	for agent, pct := range r.Percent {
		flat[agent+"_PCT"] = pct
	}
	flat["region"] = r.Region
	flat["total"] = r.Total
	return json.Marshal(flat)
}

type AgentShareSummary struct {
	RegionCount  int                `json:"regiones_analizadas"`
	AgentTypes   []string           `json:"tipos_agente"`
	TotalTons    float64            `json:"total_nacional"`
	ShareByAgent map[string]float64 `json:"participacion_por_tipo"`
}

type PlantCapacityRow struct {
	Year       Year    `json:"año"`
	Region     string  `json:"region"`
	Plants     int     `json:"num_plantas"`
	Production float64 `json:"produccion_total"`
	PerPlant   float64 `json:"promedio_por_planta"`
}

type PlantCapacitySummary struct {
	YearCount       int     `json:"años_analizados"`
	RegionCount     int     `json:"regiones_analizadas"`
	MaxPlants       int     `json:"total_plantas_maximas"`
	TotalProduction float64 `json:"produccion_total_periodo"`
	AveragePerPlant float64 `json:"promedio_productividad"`
	MostProductive  *string `json:"region_mas_productiva"`
}

type RegionalDynamicsRow struct {
	Region     string  `json:"region"`
	Landed     float64 `json:"capturas_totales"`
	Production float64 `json:"produccion_total"`
	Ratio      float64 `json:"ratio_prod_captura"`
}

type RegionalDynamicsSummary struct {
	TotalLanded     float64 `json:"total_capturas"`
	TotalProduction float64 `json:"total_produccion"`
	RegionCount     int     `json:"regiones_analizadas"`
	TopLanding      *string `json:"region_mayor_captura"`
	TopProduction   *string `json:"region_mayor_produccion"`
}

// EvolutionPoint is one year of the longitudinal series. The changes are nil for the
// first year and whenever the previous year is zero.
type EvolutionPoint struct {
	Year         Year     `json:"año"`
	Landed       float64  `json:"capturas_totales"`
	Plants       int      `json:"num_plantas"`
	LandedChange *float64 `json:"capturas_variacion_pct"`
	PlantsChange *float64 `json:"plantas_variacion_pct"`
}

type EvolutionSummary struct {
	YearCount           int     `json:"años_totales"`
	FirstYear           Year    `json:"año_minimo"`
	LastYear            Year    `json:"año_maximo"`
	PeakLandingYear     *Year   `json:"capturas_año_pico"`
	PeakLanded          float64 `json:"capturas_maximas"`
	PeakPlantsYear      *Year   `json:"plantas_año_pico"`
	PeakPlants          int     `json:"plantas_maximas"`
	AverageLandedChange float64 `json:"tasa_crecimiento_capturas_promedio"`
}
