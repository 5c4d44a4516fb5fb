package explorer

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/domain/dto"
	"github.com/ougirez/fishstats/internal/pkg/aggregate"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/logger"
	"github.com/ougirez/fishstats/internal/pkg/normalize"
	"github.com/ougirez/fishstats/internal/pkg/query"
	"github.com/ougirez/fishstats/internal/pkg/store"
)

const topSpecies = 10

type Service struct {
	store store.Store
}

func NewExplorerService(store store.Store) *Service {
	return &Service{store: store}
}

// fields adapts one record type to the shared statistics and chart builders.
type fields[T any] struct {
	year    func(T) int
	month   func(T) int
	region  func(T) string
	species func(T) string
	metric  func(T) float64
}

var landingFields = fields[domain.Landing]{
	year:    func(l domain.Landing) int { return l.Year },
	month:   func(l domain.Landing) int { return l.Month },
	region:  func(l domain.Landing) string { return l.Region },
	species: func(l domain.Landing) string { return l.Species },
	metric:  func(l domain.Landing) float64 { return l.Tons },
}

var productionFields = fields[domain.Production]{
	year:    func(p domain.Production) int { return p.Year },
	month:   func(p domain.Production) int { return p.Month },
	region:  func(p domain.Production) string { return p.Region },
	species: func(p domain.Production) string { return p.Species },
	metric:  func(p domain.Production) float64 { return p.RawTons },
}

var plantFields = fields[domain.Plant]{
	year:    func(p domain.Plant) int { return p.Year },
	month:   func(p domain.Plant) int { return p.Month },
	region:  func(p domain.Plant) string { return p.Region },
	species: func(p domain.Plant) string { return p.Species },
	metric:  func(p domain.Plant) float64 { return p.RawTons },
}

func baseStats[T any](items []T, f fields[T]) domain.ExplorerStats {
	return domain.ExplorerStats{
		TotalRecords:    len(items),
		DistinctYears:   aggregate.CountDistinct(items, aggregate.NonZero(f.year)),
		DistinctRegions: aggregate.CountDistinct(items, aggregate.NonEmpty(f.region)),
		DistinctSpecies: aggregate.CountDistinct(items, aggregate.NonEmpty(f.species)),
	}
}

// charts builds the monthly series (ascending month, unknown months dropped) and the
// top species by the dataset's primary metric.
func charts[T any](items []T, f fields[T]) domain.ExplorerCharts {
	byMonth := aggregate.GroupSum(items, aggregate.NonZero(f.month), f.metric)
	aggregate.SortAsc(byMonth)

	months := make([]domain.MonthTotal, 0, len(byMonth))
	for _, g := range byMonth {
		months = append(months, domain.MonthTotal{Month: g.Key, Tons: aggregate.Round2(g.Value)})
	}

	bySpecies := aggregate.GroupSum(items, aggregate.NonEmpty(f.species), f.metric)
	aggregate.SortDesc(bySpecies)

	species := make([]domain.SpeciesTotal, 0, topSpecies)
	for _, g := range aggregate.Top(bySpecies, topSpecies) {
		species = append(species, domain.SpeciesTotal{Species: g.Key, Tons: aggregate.Round2(g.Value)})
	}

	return domain.ExplorerCharts{ByMonth: months, BySpecies: species}
}

func emptyCharts() domain.ExplorerCharts {
	return domain.ExplorerCharts{ByMonth: []domain.MonthTotal{}, BySpecies: []domain.SpeciesTotal{}}
}

// Query filters one dataset and summarizes it. A missing dataset type is a client
// error; an unknown or empty one is reported through Success=false.
func (s *Service) Query(ctx context.Context, req dto.ExplorerRequest) (*domain.ExplorerResult, error) {
	if normalize.Text(req.DatasetType) == "" {
		return nil, constants.ErrMissingDatasetType
	}

	filters := query.NewFilters(query.Raw{
		Year:            req.Year,
		Month:           req.Month,
		Region:          req.Region,
		Species:         req.Species,
		ElaborationType: req.ElaborationType,
		AgentType:       req.AgentType,
		PlantCode:       req.PlantCode,
	})

	res := &domain.ExplorerResult{
		Success:     true,
		DatasetType: req.DatasetType,
		Filters:     filters,
		Charts:      emptyCharts(),
	}

	var available int
	switch query.ResolveDataset(req.DatasetType) {
	case domain.DatasetLandings:
		all := s.store.Landings()
		available = len(all)
		items := aggregate.Filter(all, query.MatchLanding(filters))
		res.Stats = baseStats(items, landingFields)
		res.Stats.TotalTons = aggregate.Round2(aggregate.Sum(items, landingFields.metric))
		res.Charts = charts(items, landingFields)

	case domain.DatasetProduction:
		all := s.store.Production()
		available = len(all)
		items := aggregate.Filter(all, query.MatchProduction(filters))
		res.Stats = baseStats(items, productionFields)
		res.Stats.TotalRawTons = aggregate.Round2(aggregate.Sum(items, productionFields.metric))
		res.Stats.TotalElaboratedTon = aggregate.Round2(aggregate.Sum(items, func(p domain.Production) float64 { return p.ElaboratedTons }))
		res.Charts = charts(items, productionFields)

	case domain.DatasetPlants:
		all := s.store.Plants()
		available = len(all)
		items := aggregate.Filter(all, query.MatchPlant(filters))
		res.Stats = baseStats(items, plantFields)
		res.Stats.DistinctPlants = aggregate.CountDistinct(items, aggregate.NonZero(func(p domain.Plant) int { return p.PlantID }))
		res.Charts = charts(items, plantFields)

	default:
		logger.Debugf(ctx, "explorer: unknown dataset type %q", req.DatasetType)
	}

	if available == 0 {
		return &domain.ExplorerResult{
			Success:     false,
			Message:     fmt.Sprintf("no data available for dataset type %q", req.DatasetType),
			DatasetType: req.DatasetType,
			Filters:     filters,
			Charts:      emptyCharts(),
		}, nil
	}

	if res.Stats.TotalRecords == 0 {
		res.Message = "no records match the given filters"
	}

	return res, nil
}

// Options lists the filter values the explorer UI offers: years newest first,
// species and elaboration types alphabetically.
func (s *Service) Options(ctx context.Context) domain.ExplorerOptions {
	landings := s.store.Landings()
	production := s.store.Production()

	years := append(
		aggregate.Distinct(landings, aggregate.NonZero(landingFields.year)),
		aggregate.Distinct(production, aggregate.NonZero(productionFields.year))...,
	)
	years = dedupe(years)
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })

	species := append(
		aggregate.Distinct(landings, aggregate.NonEmpty(landingFields.species)),
		aggregate.Distinct(production, aggregate.NonEmpty(productionFields.species))...,
	)
	species = dedupe(species)
	slices.Sort(species)

	elaboration := aggregate.Distinct(production, aggregate.NonEmpty(func(p domain.Production) string { return p.ElaborationType }))
	slices.Sort(elaboration)

	logger.Debugf(ctx, "explorer options: %d years, %d species, %d elaboration types", len(years), len(species), len(elaboration))

	return domain.ExplorerOptions{
		Years:            years,
		Species:          species,
		ElaborationTypes: elaboration,
	}
}

func dedupe[K comparable](items []K) []K {
	return aggregate.Distinct(items, func(k K) (K, bool) { return k, true })
}
