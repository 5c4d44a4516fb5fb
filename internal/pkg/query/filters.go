// Package query turns raw request parameters into canonical filters and record predicates.
package query

import (
	"strings"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/normalize"
)

// Raw holds filter values exactly as they arrived on the query string.
type Raw struct {
	Year            string
	Month           string
	Region          string
	Species         string
	ElaborationType string
	AgentType       string
	PlantCode       string
}

// NewFilters normalizes raw values. Anything that does not parse to a usable value
// leaves its filter unset.
func NewFilters(raw Raw) domain.Filters {
	var f domain.Filters

	if y := normalize.Integer(raw.Year); y > 0 {
		f.Year = y
	}
	f.Month = normalize.Month(raw.Month)
	f.Region = Region(raw.Region)
	f.Species = normalize.Text(raw.Species)
	f.ElaborationType = normalize.Text(raw.ElaborationType)
	f.AgentType = normalize.Text(raw.AgentType)
	if code := normalize.Integer(raw.PlantCode); code > 0 {
		f.PlantCode = code
	}

	return f
}

// Region canonicalizes a region filter. "" and TODAS mean no filter.
func Region(v string) string {
	if normalize.Text(v) == constants.RegionAll {
		return ""
	}
	return normalize.Region(v)
}

// ResolveDataset maps user-facing dataset names to a collection.
func ResolveDataset(v string) domain.DatasetKind {
	switch strings.ReplaceAll(normalize.Text(v), "-", "_") {
	case "COSECHA", "COSECHAS", "DESEMBARQUE", "DESEMBARQUES", "LANDING", "LANDINGS":
		return domain.DatasetLandings
	case "PRODUCCION", "PRODUCCIÓN", "MATERIA", "MATERIA_PRIMA", "PRODUCTION":
		return domain.DatasetProduction
	case "PLANTA", "PLANTAS", "INFRAESTRUCTURA", "PLANT", "PLANTS":
		return domain.DatasetPlants
	default:
		return domain.DatasetUnknown
	}
}

func matchCommon(f domain.Filters, year, month int, region, species string) bool {
	if f.Year != 0 && year != f.Year {
		return false
	}
	if f.Month != 0 && month != f.Month {
		return false
	}
	if f.Region != "" && region != f.Region {
		return false
	}
	if f.Species != "" && !strings.Contains(species, f.Species) {
		return false
	}
	return true
}

func MatchLanding(f domain.Filters) func(domain.Landing) bool {
	return func(l domain.Landing) bool {
		if !matchCommon(f, l.Year, l.Month, l.Region, l.Species) {
			return false
		}
		return f.AgentType == "" || l.AgentType == f.AgentType
	}
}

func MatchProduction(f domain.Filters) func(domain.Production) bool {
	return func(p domain.Production) bool {
		if !matchCommon(f, p.Year, p.Month, p.Region, p.Species) {
			return false
		}
		if f.ElaborationType != "" && p.ElaborationType != f.ElaborationType {
			return false
		}
		return f.PlantCode == 0 || p.PlantID == f.PlantCode
	}
}

func MatchPlant(f domain.Filters) func(domain.Plant) bool {
	match := MatchProduction(f)
	return func(p domain.Plant) bool {
		return match(domain.Production(p))
	}
}
