package landings

import (
	"context"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/domain/dto"
	"github.com/ougirez/fishstats/internal/pkg/aggregate"
	"github.com/ougirez/fishstats/internal/pkg/query"
)

// Summary returns the harvest KPIs with the monthly and per-species series.
func (s *Service) Summary(ctx context.Context, req dto.LandingSummaryRequest) *domain.LandingSummary {
	f := query.NewFilters(query.Raw{Year: req.Year, Region: req.Region, Species: req.Species})
	res := &domain.LandingSummary{
		Success:      true,
		Filters:      f,
		MonthlyChart: []domain.MonthTotal{},
		SpeciesChart: []domain.SpeciesTotal{},
	}

	items, ok := s.scoped(f)
	if !ok {
		res.Success, res.Message = false, msgNoLandings
		return res
	}
	if len(items) == 0 {
		res.Message = msgNoMatch
		return res
	}

	byMonth := aggregate.GroupSum(items, aggregate.NonZero(month), tons)
	aggregate.SortAsc(byMonth)
	for _, g := range byMonth {
		res.MonthlyChart = append(res.MonthlyChart, domain.MonthTotal{Month: g.Key, Tons: aggregate.Round2(g.Value)})
	}

	bySpecies := aggregate.GroupSum(items, aggregate.NonEmpty(species), tons)
	aggregate.SortDesc(bySpecies)
	for _, g := range bySpecies {
		res.SpeciesChart = append(res.SpeciesChart, domain.SpeciesTotal{Species: g.Key, Tons: aggregate.Round2(g.Value)})
	}

	res.KPIs = domain.LandingKPIs{
		TotalTons:       aggregate.Round2(aggregate.Sum(items, tons)),
		MonthsWithData:  len(byMonth),
		DetectedSpecies: len(bySpecies),
	}

	return res
}
