package normalize

import "github.com/ougirez/fishstats/internal/domain"

// Column aliases, in precedence order.
var (
	YearAliases   = []string{"año", "ano", "anio", "Ano", "AÑO"}
	RegionAliases = []string{"region", "región", "Region", "REGION"}

	elaborationAliases = []string{"tipo_elaboracion", "tipo_elaboración"}

	plantIDAliases        = []string{"Id", "id"}
	plantCodeAliases      = []string{"Código Planta", "cd_planta"}
	plantNameAliases      = []string{"Nombre_Planta", "planta"}
	plantMonthAliases     = []string{"Mes", "mes"}
	plantSpeciesIDAliases = []string{"Código_Especie", "cd_especie"}
	plantSpeciesAliases   = []string{"Nombre_especie", "especie"}
	plantRawAliases       = []string{"Materia prima", "toneladas_mp"}
	plantElaboratedAlias  = []string{"Producción", "toneladas_elaboradas"}
)

func Landing(r Row) domain.Landing {
	return domain.Landing{
		ID:        Integer(r.Get("id")),
		Year:      Year(r.Get(YearAliases...)),
		Waters:    Text(r.Get("aguas")),
		Region:    Region(r.Get(RegionAliases...)),
		PortID:    Integer(r.Get("cd_puerto")),
		Port:      Text(r.Get("puerto_desembarque")),
		Month:     Month(r.Get("mes")),
		SpeciesID: Integer(r.Get("cd_especie")),
		Species:   Text(r.Get("especie")),
		Tons:      Decimal(r.Get("toneladas")),
		AgentType: Text(r.Get("tipo_agente")),
	}
}

func Production(r Row) domain.Production {
	return domain.Production{
		ID:              Integer(r.Get("id")),
		Year:            Year(r.Get(YearAliases...)),
		Region:          Region(r.Get(RegionAliases...)),
		PlantID:         Integer(r.Get("cd_planta")),
		Plant:           Text(r.Get("planta")),
		Month:           Month(r.Get("mes")),
		SpeciesID:       Integer(r.Get("cd_especie")),
		Species:         Text(r.Get("especie")),
		ElaborationType: Text(r.Get(elaborationAliases...)),
		RawTons:         Decimal(r.Get("toneladas_mp")),
		ElaboratedTons:  Decimal(r.Get("toneladas_elaboradas")),
	}
}

func Plant(r Row) domain.Plant {
	return domain.Plant{
		ID:              Integer(r.Get(plantIDAliases...)),
		Year:            Year(r.Get(YearAliases...)),
		Region:          Region(r.Get(RegionAliases...)),
		PlantID:         Integer(r.Get(plantCodeAliases...)),
		Plant:           Text(r.Get(plantNameAliases...)),
		Month:           Month(r.Get(plantMonthAliases...)),
		SpeciesID:       Integer(r.Get(plantSpeciesIDAliases...)),
		Species:         Text(r.Get(plantSpeciesAliases...)),
		ElaborationType: Text(r.Get(elaborationAliases...)),
		RawTons:         Decimal(r.Get(plantRawAliases...)),
		ElaboratedTons:  Decimal(r.Get(plantElaboratedAlias...)),
	}
}
