package dto

// Query parameters arrive as strings on purpose for the filter fields: an unparsable
// year or month is ignored (normalizes to 0) rather than rejected. Sizes and limits
// are typed so the binder rejects garbage with a 400.

type RegionRequest struct {
	Region string `query:"region"`
}

type ExplorerRequest struct {
	DatasetType     string `query:"tipo_dato"`
	Region          string `query:"region"`
	Year            string `query:"anio"`
	Month           string `query:"mes"`
	Species         string `query:"especie"`
	ElaborationType string `query:"tipo_elaboracion"`
	AgentType       string `query:"tipo_agente"`
	PlantCode       string `query:"cd_planta"`
}

type LandingSummaryRequest struct {
	Year    string `query:"anio"`
	Region  string `query:"region"`
	Species string `query:"especie"`
}

type AgentDistributionRequest struct {
	Year   string `query:"year"`
	Region string `query:"region"`
}

type TopNRequest struct {
	Year   string `query:"year"`
	Region string `query:"region"`
	TopN   int    `query:"top_n" validate:"omitempty,min=1,max=100"`
}

type SeasonalRequest struct {
	CurrentYear int    `query:"current_year" validate:"omitempty,min=1900,max=2100"`
	Region      string `query:"region"`
}

type SupplyDemandRequest struct {
	StartYear int    `query:"start_year" validate:"omitempty,min=1900,max=2100"`
	EndYear   int    `query:"end_year" validate:"omitempty,min=1900,max=2100,gtefield=StartYear"`
	Region    string `query:"region"`
}

type ConversionRequest struct {
	TopN       int     `query:"top_n" validate:"omitempty,min=1,max=100"`
	MinRawTons float64 `query:"min_materia_prima" validate:"omitempty,min=0"`
}
