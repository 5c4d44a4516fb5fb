package constants

// viper keys
const (
	ViperServerAddrKey            = "server.addr"
	ViperServerCORSOriginsKey     = "server.cors_origins"
	ViperServerShutdownTimeoutKey = "server.shutdown_timeout"

	ViperDataBasePathKey       = "data.base_path"
	ViperDataLandingsFileKey   = "data.landings_file"
	ViperDataProductionFileKey = "data.production_file"
	ViperDataPlantsFileKey     = "data.plants_file"
	ViperDataEncodingKey       = "data.encoding"
	ViperDataDelimiterKey      = "data.delimiter"

	ViperAnalyticsSeasonalAverageKey = "analytics.seasonal_average"
	ViperAnalyticsDefaultTopNKey     = "analytics.default_top_n"

	ViperLogLevelKey  = "log.level"
	ViperLogFormatKey = "log.format"
)

const (
	EnvPrefix = "FISHSTATS"

	CtxKeyRequestID = "request_id"

	RegionAll = "TODAS"

	// Macro-region tokens kept in the store.
	RegionLagos      = "LAGOS"
	RegionAysen      = "AYSEN"
	RegionMagallanes = "MAGALLANES"
)

// MacroRegions in the order dashboards list them.
var MacroRegions = []string{RegionLagos, RegionAysen, RegionMagallanes}
