package domain

type Year = int
type Month = int

// Landing is one recorded catch (desembarque).
type Landing struct {
	ID        int     `json:"id"`
	Year      Year    `json:"año"`
	Waters    string  `json:"aguas"`
	Region    string  `json:"region"`
	PortID    int     `json:"cd_puerto"`
	Port      string  `json:"puerto_desembarque"`
	Month     Month   `json:"mes"`
	SpeciesID int     `json:"cd_especie"`
	Species   string  `json:"especie"`
	Tons      float64 `json:"toneladas"`
	AgentType string  `json:"tipo_agente"`
}

// Production is a raw-material to elaborated-product record at a processing plant.
type Production struct {
	ID              int     `json:"id"`
	Year            Year    `json:"año"`
	Region          string  `json:"region"`
	PlantID         int     `json:"cd_planta"`
	Plant           string  `json:"planta"`
	Month           Month   `json:"mes"`
	SpeciesID       int     `json:"cd_especie"`
	Species         string  `json:"especie"`
	ElaborationType string  `json:"tipo_elaboracion"`
	RawTons         float64 `json:"toneladas_mp"`
	ElaboratedTons  float64 `json:"toneladas_elaboradas"`
}

// Plant has the production shape but comes from the plants registry file.
type Plant Production

// DatasetKind selects one of the three store collections.
type DatasetKind string

const (
	DatasetUnknown    DatasetKind = ""
	DatasetLandings   DatasetKind = "COSECHA"
	DatasetProduction DatasetKind = "PRODUCCION"
	DatasetPlants     DatasetKind = "PLANTAS"
)

type DatasetCount struct {
	Count  int  `json:"count"`
	Loaded bool `json:"loaded"`
}

type DataStats struct {
	Landings   DatasetCount `json:"desembarques"`
	Production DatasetCount `json:"materiaPrimaProduccion"`
	Plants     DatasetCount `json:"plantas"`
}

// Filters is the canonical, already-normalized filter set. Zero values mean "no filter".
type Filters struct {
	Year            Year   `json:"año,omitempty"`
	Month           Month  `json:"mes,omitempty"`
	Region          string `json:"region,omitempty"`
	Species         string `json:"especie,omitempty"`
	ElaborationType string `json:"tipo_elaboracion,omitempty"`
	AgentType       string `json:"tipo_agente,omitempty"`
	PlantCode       int    `json:"cd_planta,omitempty"`
}
